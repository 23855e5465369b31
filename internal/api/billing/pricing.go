package billing

import (
	"strings"
	"time"

	"growing-backend/internal/domain/billing"

	"gorm.io/gorm"
)

// Server-side price of the premium plan. Clients never set prices; any
// amount they send is ignored.
const (
	BasePrice  = 5999.0
	CurrencyID = "ARS"
)

// ResolvePrice computes the charge amount from the base price and the
// promo-code table. Unknown, inactive or expired codes fall back to the
// base price instead of failing the checkout.
func ResolvePrice(db *gorm.DB, promoCode string) float64 {
	code := strings.ToUpper(strings.TrimSpace(promoCode))
	if code == "" {
		return BasePrice
	}

	var promo billing.PromoCode
	err := db.Where("code = ? AND active = ?", code, true).First(&promo).Error
	if err != nil {
		return BasePrice
	}
	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(time.Now()) {
		return BasePrice
	}
	if promo.PercentOff <= 0 || promo.PercentOff >= 100 {
		return BasePrice
	}

	return BasePrice * float64(100-promo.PercentOff) / 100
}
