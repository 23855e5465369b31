package admin

import (
	"net/http"
	"time"

	"growing-backend/database"
	"growing-backend/internal/domain/billing"
	"growing-backend/internal/domain/entitlement"
	"growing-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	PremiumUsers   int64 `json:"premium_users"`
	TrialUsers     int64 `json:"trial_users"`
	EventsLast30d  int64 `json:"events_last_30d"`
	PendingUpgrade int64 `json:"pending_upgrades"`
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&entitlement.Entitlement{}).
		Where("plan_type = ?", entitlement.PlanPremium).
		Count(&stats.PremiumUsers)
	database.DB.Model(&entitlement.Entitlement{}).
		Where("plan_type = ?", entitlement.PlanFreeTrial).
		Count(&stats.TrialUsers)
	database.DB.Model(&entitlement.Entitlement{}).
		Where("subscription_status = ?", entitlement.SubscriptionPending).
		Count(&stats.PendingUpgrade)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.PaymentEvent{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Count(&stats.EventsLast30d)

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListPaymentEvents exposes the append-only webhook audit trail for
// forensic reconciliation. It has no write path.
func ListPaymentEvents(c *gin.Context) {
	var events []billing.PaymentEvent
	query := database.DB.Order("created_at DESC").Limit(200)
	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var rec entitlement.Entitlement
	_ = database.DB.First(&rec, "user_id = ?", userID).Error

	var events []billing.PaymentEvent
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"entitlement": rec,
		"events":      events,
	})
}
