package users

import (
	"net/http"
	"time"

	"growing-backend/database"
	"growing-backend/internal/domain/entitlement"
	"growing-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the signed-in profile together with its current
// entitlement evaluation, so the client can render the paywall state
// without a second round trip.
func GetCurrentUser(c *gin.Context) {
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

	rec, err := entitlement.EnsureRecord(database.DB, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load entitlement record"})
		return
	}
	eval := entitlement.Evaluate(rec, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"role":            user.Role,
		"authProvider":    user.AuthProvider,
		"planType":        rec.PlanType,
		"isPremium":       eval.IsPremium,
		"isTrialActive":   eval.IsTrialActive,
		"isTrialExpired":  eval.IsTrialExpired,
		"daysLeftInTrial": eval.DaysLeftInTrial,
	})
}
