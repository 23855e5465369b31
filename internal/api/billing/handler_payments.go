package billing

import (
	"net/http"

	"growing-backend/database"
	"growing-backend/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GetPaymentHistory returns the caller's own slice of the webhook audit
// trail, newest first.
func GetPaymentHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var events []billing.PaymentEvent
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, events)
}
