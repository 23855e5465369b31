package billing

import "time"

type EventType string

const (
	EventPaymentApproved        EventType = "payment_approved"
	EventPaymentCancelled       EventType = "payment_cancelled"
	EventSubscriptionAuthorized EventType = "subscription_authorized"
	EventSubscriptionCancelled  EventType = "subscription_cancelled"
)

// PaymentEvent is the append-only audit trail of processed webhook
// notifications. Rows are never updated or deleted; the webhook processor
// also uses (ExternalID, EventType) to deduplicate redelivered events.
type PaymentEvent struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"userId" gorm:"type:uuid;not null;index"`
	EventType  EventType `json:"eventType" gorm:"type:varchar(40);not null"`
	ExternalID string    `json:"externalId" gorm:"column:external_id;not null;index"`
	Status     string    `json:"status"`
	RawPayload string    `json:"rawPayload" gorm:"type:text"`
	Source     string    `json:"source" gorm:"type:varchar(20)"`
	CreatedAt  time.Time `json:"createdAt"`
}
