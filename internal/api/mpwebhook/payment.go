package mpwebhook

import (
	"net/http"

	"growing-backend/internal/domain/billing"
	"growing-backend/internal/infra/mercadopago"
	"growing-backend/utils"

	"github.com/gin-gonic/gin"
)

// handlePayment resolves a one-off payment notification against the
// provider API and feeds the result into the entitlement state machine.
func handlePayment(c *gin.Context, paymentID, source string, raw []byte) {
	p, err := mercadopago.Default.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		utils.LogError(err, "Could not fetch payment from provider")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch payment details"})
		return
	}

	applyTransition(c, transition{
		userRef:        p.ExternalReference,
		status:         p.Status,
		externalID:     p.ID,
		approvedEvent:  billing.EventPaymentApproved,
		cancelledEvent: billing.EventPaymentCancelled,
		source:         source,
		raw:            raw,
	})
}
