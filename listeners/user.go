package listeners

import (
	"github.com/gobuffalo/events"

	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/log"
)

func userCreated(e events.Event) {
	if e.Kind != domain.EventApiUserCreated {
		return
	}

	defer panicRecover(e.Kind)

	log.WithFields(map[string]any{
		"user_id":     e.Payload[domain.EventPayloadID],
		"provisional": e.Payload[domain.EventPayloadProvisionalAccount],
	}).Info(e.Message)
}
