package cron

import (
	"crypto/subtle"
	"net/http"
	"time"

	"growing-backend/config"
	"growing-backend/database"
	"growing-backend/internal/domain/entitlement"
	"growing-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExpireSubscriptions is invoked by the scheduler, not by users, so it is
// authenticated with a dedicated shared secret header. Running it twice, or
// concurrently with the webhook processor, is safe: the downgrade is a
// one-way state change and re-downgrading is a no-op.
func ExpireSubscriptions(c *gin.Context) {
	secret := config.CRON_SECRET
	if secret == "" {
		utils.LogError(nil, "CRON_SECRET not configured, refusing sweep")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cron secret not configured"})
		return
	}

	header := c.GetHeader("x-cron-secret")
	if subtle.ConstantTimeCompare([]byte(header), []byte(secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
		return
	}

	count, err := entitlement.ExpireLapsed(database.DB, time.Now())
	if err != nil {
		utils.LogError(err, "Expiry sweep failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}

	if count > 0 {
		utils.LogSuccess("Expiry sweep downgraded lapsed subscriptions")
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "expiredCount": count})
}
