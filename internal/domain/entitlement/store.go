package entitlement

import (
	"time"

	"gorm.io/gorm"
)

// EnsureRecord loads the entitlement record for a user, creating it with a
// fresh trial on first sign-in.
func EnsureRecord(db *gorm.DB, userID string, now time.Time) (Entitlement, error) {
	var rec Entitlement
	err := db.Where(Entitlement{UserID: userID}).
		Attrs(Entitlement{
			PlanType:           PlanFreeTrial,
			TrialStart:         now,
			SubscriptionStatus: SubscriptionNone,
		}).
		FirstOrCreate(&rec).Error
	return rec, err
}

// ExpireLapsed downgrades every premium record whose paid period has ended.
// The transition is monotonic and idempotent, so concurrent runs and races
// with the webhook processor converge on the same state.
func ExpireLapsed(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&Entitlement{}).
		Where("plan_type = ? AND subscription_expires_at < ?", PlanPremium, now).
		Updates(map[string]interface{}{
			"plan_type":           PlanFreeTrial,
			"subscription_status": SubscriptionCancelled,
		})
	return res.RowsAffected, res.Error
}
