package listeners

import (
	"github.com/gobuffalo/events"

	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/log"
)

// policyPurchased writes the purchase audit record, including whether the
// request supplied payer details, since their absence is deliberately non-fatal
// and would otherwise go unnoticed.
func policyPurchased(e events.Event) {
	if e.Kind != domain.EventApiPolicyPurchased {
		return
	}

	defer panicRecover(e.Kind)

	fields := map[string]any{
		"policy_id":         e.Payload[domain.EventPayloadID],
		"policy_number":     e.Payload[domain.EventPayloadPolicyNumber],
		"channel":           e.Payload[domain.EventPayloadPurchaseChannel],
		"membership_count":  e.Payload[domain.EventPayloadMembershipCount],
		"has_payer_details": e.Payload[domain.EventPayloadHasPayerDetails],
	}

	if hasPayer, ok := e.Payload[domain.EventPayloadHasPayerDetails].(bool); ok && !hasPayer {
		log.WithFields(fields).Warning("policy purchased without payer details")
		return
	}
	log.WithFields(fields).Info("policy purchased")
}
