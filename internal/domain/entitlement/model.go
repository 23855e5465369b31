package entitlement

import "time"

type PlanType string

const (
	PlanFreeTrial PlanType = "free_trial"
	PlanPremium   PlanType = "premium"
)

type SubscriptionStatus string

const (
	SubscriptionNone       SubscriptionStatus = "none"
	SubscriptionPending    SubscriptionStatus = "pending"
	SubscriptionAuthorized SubscriptionStatus = "authorized"
	SubscriptionCancelled  SubscriptionStatus = "cancelled"
)

// TrialDays is the fixed trial window, always computed from TrialStart.
// The remaining days are never stored, so the record cannot drift.
const TrialDays = 30

// Entitlement is the per-user account record that decides access to paid
// features. It is only written by the checkout handler, the webhook
// processor and the expiry sweeper, always as a whole-row field replace.
type Entitlement struct {
	UserID                string             `json:"userId" gorm:"primaryKey;type:uuid"`
	PlanType              PlanType           `json:"planType" gorm:"type:varchar(20);not null;default:'free_trial'"`
	TrialStart            time.Time          `json:"trialStart"`
	SubscriptionID        *string            `json:"subscriptionId" gorm:"column:subscription_id"`
	SubscriptionStatus    SubscriptionStatus `json:"subscriptionStatus" gorm:"type:varchar(20);not null;default:'none'"`
	SubscriptionExpiresAt *time.Time         `json:"subscriptionExpiresAt"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}
