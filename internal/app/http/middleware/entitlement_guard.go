package middleware

import (
	"net/http"
	"time"

	"growing-backend/database"
	"growing-backend/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

// The gate is re-evaluated on every request. Premium status can flip at any
// moment via webhook, so the evaluation is never cached beyond the request.

// RequireEntitlement admits premium users and users inside the trial window.
func RequireEntitlement() gin.HandlerFunc {
	return func(c *gin.Context) {
		eval, ok := evaluate(c)
		if !ok {
			return
		}

		if !eval.IsPremium && eval.IsTrialExpired {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "Your free trial has ended",
				"trial_expired": true,
			})
			return
		}

		c.Set("entitlement", eval)
		c.Next()
	}
}

// RequirePremium admits premium users only; trial users get the paywall.
func RequirePremium() gin.HandlerFunc {
	return func(c *gin.Context) {
		eval, ok := evaluate(c)
		if !ok {
			return
		}

		if !eval.IsPremium {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "This feature requires a premium subscription",
				"trial_expired": eval.IsTrialExpired,
			})
			return
		}

		c.Set("entitlement", eval)
		c.Next()
	}
}

func evaluate(c *gin.Context) (entitlement.Evaluation, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return entitlement.Evaluation{}, false
	}

	rec, err := entitlement.EnsureRecord(database.DB, userID, time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load entitlement record"})
		return entitlement.Evaluation{}, false
	}

	return entitlement.Evaluate(rec, time.Now()), true
}
