package entitlement

import "time"

// Evaluation is the result of checking one record at one instant.
type Evaluation struct {
	IsPremium       bool `json:"isPremium"`
	IsTrialActive   bool `json:"isTrialActive"`
	IsTrialExpired  bool `json:"isTrialExpired"`
	DaysLeftInTrial int  `json:"daysLeftInTrial"`
}

// Evaluate derives the entitlement state of a record at the given instant.
// It is pure: same record and clock always yield the same result.
//
// Premium is decided from PlanType alone. A lapsed subscription keeps
// premium access until the expiry sweeper downgrades the record; the brief
// over-permissive window is accepted so a renewal webhook arriving late
// never cuts a paying user off.
func Evaluate(rec Entitlement, now time.Time) Evaluation {
	if rec.PlanType == PlanPremium {
		return Evaluation{IsPremium: true}
	}

	start := rec.TrialStart
	if start.IsZero() || start.After(now) {
		// Records created before TrialStart existed get a fresh trial,
		// never an instant lockout.
		start = now
	}

	daysElapsed := int(now.Sub(start) / (24 * time.Hour))
	expired := daysElapsed >= TrialDays

	daysLeft := TrialDays - daysElapsed
	if daysLeft < 0 {
		daysLeft = 0
	}

	return Evaluation{
		IsTrialActive:   !expired && daysLeft > 0,
		IsTrialExpired:  expired,
		DaysLeftInTrial: daysLeft,
	}
}
