package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_FreshTrial(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial, TrialStart: now}

	eval := Evaluate(rec, now)

	assert.False(t, eval.IsPremium)
	assert.True(t, eval.IsTrialActive)
	assert.False(t, eval.IsTrialExpired)
	assert.Equal(t, 30, eval.DaysLeftInTrial)
}

func TestEvaluate_LastSecondOfTrial(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial, TrialStart: start}

	// 29 days, 23 hours, 59 minutes, 59 seconds in.
	now := start.Add(30*24*time.Hour - time.Second)
	eval := Evaluate(rec, now)

	assert.True(t, eval.IsTrialActive)
	assert.False(t, eval.IsTrialExpired)
	assert.Equal(t, 1, eval.DaysLeftInTrial)
}

func TestEvaluate_ExactlyThirtyDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial, TrialStart: start}

	now := start.Add(30 * 24 * time.Hour)
	eval := Evaluate(rec, now)

	assert.False(t, eval.IsTrialActive)
	assert.True(t, eval.IsTrialExpired)
	assert.Equal(t, 0, eval.DaysLeftInTrial)
}

func TestEvaluate_LongExpired(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial, TrialStart: start}

	eval := Evaluate(rec, start.AddDate(1, 0, 0))

	assert.True(t, eval.IsTrialExpired)
	assert.Equal(t, 0, eval.DaysLeftInTrial)
}

func TestEvaluate_ZeroTrialStartGetsFreshTrial(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial}

	eval := Evaluate(rec, now)

	assert.True(t, eval.IsTrialActive)
	assert.False(t, eval.IsTrialExpired)
	assert.Equal(t, 30, eval.DaysLeftInTrial)
}

func TestEvaluate_FutureTrialStartGetsFreshTrial(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial, TrialStart: now.AddDate(0, 0, 7)}

	eval := Evaluate(rec, now)

	assert.True(t, eval.IsTrialActive)
	assert.Equal(t, 30, eval.DaysLeftInTrial)
}

func TestEvaluate_PremiumIgnoresTrialClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanPremium, TrialStart: start}

	eval := Evaluate(rec, start.AddDate(2, 0, 0))

	assert.True(t, eval.IsPremium)
	assert.False(t, eval.IsTrialActive)
	assert.False(t, eval.IsTrialExpired)
}

func TestEvaluate_PremiumWithLapsedExpiryStaysPremium(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)
	rec := Entitlement{
		PlanType:              PlanPremium,
		SubscriptionStatus:    SubscriptionAuthorized,
		SubscriptionExpiresAt: &past,
	}

	// The sweeper downgrades lapsed records; evaluation alone does not.
	eval := Evaluate(rec, now)

	assert.True(t, eval.IsPremium)
}

func TestEvaluate_IsPure(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := Entitlement{PlanType: PlanFreeTrial, TrialStart: now.AddDate(0, 0, -10)}

	first := Evaluate(rec, now)
	second := Evaluate(rec, now)

	assert.Equal(t, first, second)
	assert.Equal(t, 20, first.DaysLeftInTrial)
}
