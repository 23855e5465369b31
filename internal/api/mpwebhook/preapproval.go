package mpwebhook

import (
	"net/http"

	"growing-backend/internal/domain/billing"
	"growing-backend/internal/infra/mercadopago"
	"growing-backend/utils"

	"github.com/gin-gonic/gin"
)

// handlePreapproval handles recurring-subscription authorization events.
func handlePreapproval(c *gin.Context, preapprovalID, source string, raw []byte) {
	pre, err := mercadopago.Default.GetPreapproval(c.Request.Context(), preapprovalID)
	if err != nil {
		utils.LogError(err, "Could not fetch preapproval from provider")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch preapproval details"})
		return
	}

	applyTransition(c, transition{
		userRef:        pre.ExternalReference,
		status:         pre.Status,
		externalID:     pre.ID,
		approvedEvent:  billing.EventSubscriptionAuthorized,
		cancelledEvent: billing.EventSubscriptionCancelled,
		source:         source,
		raw:            raw,
	})
}
