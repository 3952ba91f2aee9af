package listeners

import (
	"testing"

	"github.com/gobuffalo/events"
	"github.com/stretchr/testify/require"

	"github.com/sureinsurance/sure-api/domain"
)

func Test_RegisterListeners(t *testing.T) {
	// registering twice must not error or double-register
	RegisterListeners()
	RegisterListeners()
}

func Test_PolicyPurchased(t *testing.T) {
	require.NotPanics(t, func() {
		policyPurchased(events.Event{
			Kind: domain.EventApiPolicyPurchased,
			Payload: events.Payload{
				domain.EventPayloadPolicyNumber:    "ABC_1",
				domain.EventPayloadPurchaseChannel: "retail",
				domain.EventPayloadHasPayerDetails: false,
			},
		})
	})

	// wrong kind is ignored
	require.NotPanics(t, func() {
		policyPurchased(events.Event{Kind: domain.EventApiUserCreated})
	})
}

func Test_UserCreated(t *testing.T) {
	require.NotPanics(t, func() {
		userCreated(events.Event{
			Kind:    domain.EventApiUserCreated,
			Payload: events.Payload{},
		})
	})
}
