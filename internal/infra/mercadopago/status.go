package mercadopago

import "strings"

// Normalized outcomes for payment and preapproval statuses.
const (
	OutcomeApproved  = "approved"
	OutcomeCancelled = "cancelled"
	OutcomeOther     = "other"
)

// NormalizeStatus collapses Mercado Pago payment and preapproval statuses
// into the three outcomes the entitlement state machine reacts to. Anything
// unrecognized is "other" and is logged but never applied.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "approved", "authorized":
		return OutcomeApproved
	case "rejected", "cancelled", "paused":
		return OutcomeCancelled
	default:
		return OutcomeOther
	}
}
