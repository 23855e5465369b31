package billing

import (
	"net/http"

	"growing-backend/config"
	"growing-backend/database"
	"growing-backend/internal/domain/entitlement"
	"growing-backend/internal/domain/users"
	"growing-backend/internal/infra/mercadopago"
	"growing-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCheckout starts a premium subscription checkout with the payment
// provider and returns the redirect URL. The entitlement record is only
// touched after the provider accepted the session, so a failed call never
// leaves partial state behind.
func CreateCheckout(c *gin.Context) {
	var body struct {
		PromoCode string `json:"promoCode"`
	}
	// Body is optional; anything beyond the promo code (like a client-sent
	// amount) is ignored.
	_ = c.ShouldBindJSON(&body)

	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if mercadopago.Default == nil {
		utils.LogError(nil, "Payment provider not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider not configured"})
		return
	}

	amount := ResolvePrice(database.DB, body.PromoCode)

	checkout, err := mercadopago.Default.CreatePreference(c.Request.Context(), mercadopago.CheckoutRequest{
		Title:             "Growing Premium",
		Email:             user.Email,
		Amount:            amount,
		CurrencyID:        CurrencyID,
		ExternalReference: user.ID,
		NotificationURL:   config.API_URL + "/webhooks/mercadopago",
		SuccessURL:        config.APP_URL + "/subscription/success",
		FailureURL:        config.APP_URL + "/subscription/failure",
		PendingURL:        config.APP_URL + "/subscription/pending",
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Failed to create checkout preference")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment provider unavailable, please retry"})
		return
	}

	err = database.DB.Model(&entitlement.Entitlement{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"subscription_id":     checkout.PreferenceID,
			"subscription_status": entitlement.SubscriptionPending,
		}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Failed to store pending subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store subscription request"})
		return
	}

	utils.LogSuccessWithUser(userID, "Checkout preference created")
	c.JSON(http.StatusOK, gin.H{
		"init_point":    checkout.InitPoint,
		"preference_id": checkout.PreferenceID,
	})
}
