package billing

import "time"

// PromoCode discounts the server-side base price. Pricing is resolved only
// from this table; amounts sent by the client are ignored.
type PromoCode struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Code       string     `json:"code" gorm:"not null;uniqueIndex:idx_promo_codes_code"`
	PercentOff int        `json:"percentOff" gorm:"not null"`
	Active     bool       `json:"active" gorm:"not null;default:true"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}
