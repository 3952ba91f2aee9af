package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Context keys
const (
	ContextKeyExtras = "extras"
	ContextKeyTx     = "tx"
)

const DateFormat = "2006-01-02"

// Event Kinds
const (
	EventApiUserCreated     = "api:user:created"
	EventApiPolicyPurchased = "api:policy:purchased"

	EventPayloadID                 = "id"
	EventPayloadPolicyNumber       = "policy_number"
	EventPayloadPurchaseChannel    = "channel"
	EventPayloadHasPayerDetails    = "has_payer_details"
	EventPayloadMembershipCount    = "membership_count"
	EventPayloadProvisionalAccount = "provisional_account"
)

// Env Holds the values of environment variables
var Env struct {
	GoEnv      string `ignored:"true"`
	ApiBaseURL string `default:"http://localhost:3000" split_words:"true"`
	AppName    string `default:"Sure" split_words:"true"`
	ServerPort int    `default:"3000" split_words:"true"`

	SessionSecret string `default:"testing-secret" split_words:"true"`
	SentryDSN     string `default:"" split_words:"true"`
	UIURL         string `default:"http://missing.ui.url"`

	// ProvisionalPassword is the placeholder credential assigned to identities
	// created during enrollment. It is a low-friction bootstrap, not a security
	// boundary: the auth collaborator must force a change on first real login.
	ProvisionalPassword string `default:"1234" split_words:"true"`
}

func init() {
	readEnv()
}

// readEnv loads environment data into `Env`
func readEnv() {
	if err := envconfig.Process("", &Env); err != nil {
		log.Fatal(errors.New("error loading env vars: " + err.Error()))
	}

	// Doing this separately to avoid needing two environment variables for the same thing
	Env.GoEnv = os.Getenv("GO_ENV")
	if Env.GoEnv == "" {
		Env.GoEnv = EnvDevelopment
	}
}

func IsProduction() bool {
	return Env.GoEnv == EnvProduction
}

// GetUUID creates a new, unique version 4 (random) UUID and returns it. Errors are ignored.
func GetUUID() uuid.UUID {
	id, _ := uuid.NewV4()
	return id
}

// IsOtherThanNoRows returns false if the error is nil or is just reporting that there
// were no rows in the result set for a sql query.
func IsOtherThanNoRows(err error) bool {
	if err == nil {
		return false
	}

	if strings.Contains(err.Error(), sql.ErrNoRows.Error()) {
		return false
	}

	return true
}

// GetFunctionName provides the filename, line number, and function name of the caller, skipping the top `skip`
// functions on the stack.
func GetFunctionName(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}

	fn := runtime.FuncForPC(pc)
	return fmt.Sprintf("%s:%d %s", file, line, fn.Name())
}
