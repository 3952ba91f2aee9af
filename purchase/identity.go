package purchase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobuffalo/pop/v6"
	"golang.org/x/crypto/bcrypt"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/models"
)

// EnsureUser resolves a member input to an identity, creating one if the email
// is not yet known. A new identity gets a bcrypt-hashed provisional credential
// that must be rotated on first real login. When requireUnique is set, an
// already-registered email is a conflict rather than a reuse.
func EnsureUser(tx *pop.Connection, input api.MemberInput, requireUnique bool) (models.User, error) {
	var user models.User

	var missing []string
	if strings.TrimSpace(input.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(input.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		appErr := api.NewAppError(
			fmt.Errorf("member is missing identity fields: %s", strings.Join(missing, ", ")),
			api.ErrorMissingIdentityFields,
			api.CategoryUser,
		)
		appErr.Extras = map[string]any{"fields": missing}
		return user, appErr
	}

	if requireUnique {
		exists, err := models.EmailExists(tx, input.Email)
		if err != nil {
			return models.User{}, err
		}
		if exists {
			return models.User{}, api.NewAppError(
				fmt.Errorf("an identity with email %s already exists", input.Email),
				api.ErrorDuplicateIdentity,
				api.CategoryConflict,
			)
		}
	} else {
		err := user.FindByEmail(tx, input.Email)
		if err == nil {
			return user, nil
		}

		var appErr *api.AppError
		if !errors.As(err, &appErr) || appErr.Category != api.CategoryNotFound {
			return models.User{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(domain.Env.ProvisionalPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, api.NewAppError(err, api.ErrorCreateFailure, api.CategoryInternal)
	}

	user = models.User{
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Role:          models.UserRolePolicyOwner,
		PhoneNumber:   nullsString(input.PhoneNumber),
		IDNumber:      nullsString(input.IDNumber),
		Gender:        nullsString(input.Gender),
		Address:       nullsString(input.Address),
		Town:          nullsString(input.Town),
		Country:       nullsString(input.Country),
		PasswordHash:  string(hash),
		IsProvisional: true,
	}
	if err := user.Create(tx); err != nil {
		return models.User{}, err
	}
	return user, nil
}
