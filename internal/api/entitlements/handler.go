package entitlements

import (
	"net/http"
	"time"

	"growing-backend/database"
	"growing-backend/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

// GetMyEntitlement exposes the per-request evaluation the client paywall
// renders from. The response is computed fresh on every call.
func GetMyEntitlement(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	rec, err := entitlement.EnsureRecord(database.DB, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load entitlement record"})
		return
	}

	eval := entitlement.Evaluate(rec, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"planType":              rec.PlanType,
		"subscriptionStatus":    rec.SubscriptionStatus,
		"subscriptionExpiresAt": rec.SubscriptionExpiresAt,
		"isPremium":             eval.IsPremium,
		"isTrialActive":         eval.IsTrialActive,
		"isTrialExpired":        eval.IsTrialExpired,
		"daysLeftInTrial":       eval.DaysLeftInTrial,
	})
}
