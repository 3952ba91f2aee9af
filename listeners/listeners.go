package listeners

import (
	"github.com/gobuffalo/events"

	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/log"
)

type apiListener struct {
	name     string
	listener func(events.Event)
}

//
// Register new listener functions here.  Remember, though, that these groupings just
// describe what we want.  They don't make it happen this way. The listeners
// themselves still need to verify the event kind
//
var apiListeners = map[string][]apiListener{
	domain.EventApiUserCreated: {
		{
			name:     "user-created-log",
			listener: userCreated,
		},
	},
	domain.EventApiPolicyPurchased: {
		{
			name:     "policy-purchased-audit",
			listener: policyPurchased,
		},
	},
}

// RegisterListeners registers all the listeners to be used by the app
func RegisterListeners() {
	for _, listeners := range apiListeners {
		for _, l := range listeners {
			if _, err := events.NamedListen(l.name, l.listener); err != nil {
				log.Errorf("failed registering listener %s, %s", l.name, err)
			}
		}
	}
}

func panicRecover(name string) {
	if err := recover(); err != nil {
		log.Errorf("panic in event listener %s: %v", name, err)
	}
}
