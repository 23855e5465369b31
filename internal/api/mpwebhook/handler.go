package mpwebhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"growing-backend/config"
	"growing-backend/database"
	"growing-backend/internal/domain/billing"
	"growing-backend/internal/domain/entitlement"
	"growing-backend/internal/infra/mercadopago"
	"growing-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// testNotificationID is the sentinel payload id Mercado Pago sends from its
// dashboard "test notification" button. Signature checks are skipped for it
// outside production only; any other id is always verified.
const testNotificationID = "123456"

// notification is the tagged union Mercado Pago posts: the payload shape is
// keyed by type/entity and carries only the id of the changed object.
type notification struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	Action string `json:"action"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// Handle is the single attacker-reachable entry point for payment truth.
// Verification runs strictly before any state mutation.
func Handle(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	var note notification
	if err := json.Unmarshal(payload, &note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed notification body"})
		return
	}

	dataID := note.Data.ID.String()
	if dataID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification missing payload id"})
		return
	}

	source := "webhook"
	if config.APP_ENV != "production" && dataID == testNotificationID {
		source = "webhook_test"
	} else {
		secret := config.MP_WEBHOOK_SECRET
		if secret == "" {
			// Fail closed: a missing secret must never degrade into an
			// unverified webhook.
			utils.LogError(nil, "MP_WEBHOOK_SECRET not configured, refusing webhook")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
			return
		}

		err := verifySignature(secret, dataID, c.GetHeader("x-request-id"), c.GetHeader("x-signature"), time.Now())
		if err != nil {
			utils.LogError(err, "Webhook signature verification failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
	}

	switch {
	case note.Type == "payment" || note.Entity == "payment":
		handlePayment(c, dataID, source, payload)
	case note.Type == "subscription_preapproval" || note.Entity == "preapproval":
		handlePreapproval(c, dataID, source, payload)
	default:
		utils.LogInfo(fmt.Sprintf("Ignoring webhook type=%q entity=%q", note.Type, note.Entity))
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// transition describes one verified provider notification to apply.
type transition struct {
	userRef        string
	status         string
	externalID     string
	approvedEvent  billing.EventType
	cancelledEvent billing.EventType
	source         string
	raw            []byte
}

// applyTransition resolves the claimed account, applies the state change and
// appends the audit entry atomically. Replays of an already-applied event
// succeed silently without touching the record again.
func applyTransition(c *gin.Context, t transition) {
	if _, err := uuid.Parse(t.userRef); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid external reference"})
		return
	}

	var rec entitlement.Entitlement
	if err := database.DB.First(&rec, "user_id = ?", t.userRef).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account for external reference"})
		return
	}

	var eventType billing.EventType
	outcome := mercadopago.NormalizeStatus(t.status)
	switch outcome {
	case mercadopago.OutcomeApproved:
		eventType = t.approvedEvent
	case mercadopago.OutcomeCancelled:
		eventType = t.cancelledEvent
	default:
		utils.LogInfo(fmt.Sprintf("Webhook status %q for %s needs no transition", t.status, t.externalID))
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	applied := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing billing.PaymentEvent
		err := tx.Where("external_id = ? AND event_type = ?", t.externalID, eventType).
			First(&existing).Error
		if err == nil {
			// Redelivery of an already-applied event: converge, don't fail.
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var updates map[string]interface{}
		if outcome == mercadopago.OutcomeApproved {
			expires := time.Now().AddDate(0, 1, 0)
			updates = map[string]interface{}{
				"plan_type":               entitlement.PlanPremium,
				"subscription_status":     entitlement.SubscriptionAuthorized,
				"subscription_expires_at": expires,
			}
		} else {
			// Plan type stays as-is: the paid period runs out naturally and
			// the expiry sweeper downgrades at period end.
			updates = map[string]interface{}{
				"subscription_status": entitlement.SubscriptionCancelled,
			}
		}

		if err := tx.Model(&entitlement.Entitlement{}).
			Where("user_id = ?", t.userRef).
			Updates(updates).Error; err != nil {
			return err
		}

		event := billing.PaymentEvent{
			UserID:     t.userRef,
			EventType:  eventType,
			ExternalID: t.externalID,
			Status:     t.status,
			RawPayload: string(t.raw),
			Source:     t.source,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil {
		utils.LogErrorWithUser(t.userRef, err, "Failed to apply webhook transition")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not apply subscription update"})
		return
	}

	if applied {
		utils.LogSuccessWithUser(t.userRef, fmt.Sprintf("Applied %s for %s", eventType, t.externalID))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
