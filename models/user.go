package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

type UserRole string

const (
	UserRolePolicyOwner = UserRole("Policy Owner")
	UserRoleSalesAgent  = UserRole("Sales Agent")
	UserRoleBroker      = UserRole("Broker")
	UserRoleAdmin       = UserRole("Admin")
)

// Users is a slice of User objects
type Users []User

// User is one person identity. Identities created during enrollment carry a
// provisional, bcrypt-hashed placeholder credential that the auth collaborator
// must rotate on first real login.
type User struct {
	ID             uuid.UUID    `db:"id"`
	Email          string       `db:"email" validate:"required,email"`
	FirstName      string       `db:"first_name"`
	LastName       string       `db:"last_name"`
	Role           UserRole     `db:"role"`
	PhoneNumber    nulls.String `db:"phone_number"`
	IDNumber       nulls.String `db:"id_number"`
	PassportNumber nulls.String `db:"passport_number"`
	Gender         nulls.String `db:"gender"`
	Address        nulls.String `db:"address"`
	Town           nulls.String `db:"town"`
	Country        nulls.String `db:"country"`

	PasswordHash  string `db:"password_hash"`
	IsProvisional bool   `db:"is_provisional"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (u *User) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(u), nil
}

func (u *User) GetID() uuid.UUID {
	return u.ID
}

func (u *User) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, u, id)
}

func (u *User) FindByEmail(tx *pop.Connection, email string) error {
	err := tx.Where("lower(email) = ?", strings.ToLower(email)).First(u)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

func (u *User) Create(tx *pop.Connection) error {
	u.Email = strings.TrimSpace(u.Email)
	if err := create(tx, u); err != nil {
		return err
	}

	emitEvent(events.Event{
		Kind:    domain.EventApiUserCreated,
		Message: fmt.Sprintf("Username: %s  Email: %s", u.Name(), u.Email),
		Payload: events.Payload{
			domain.EventPayloadID:                 u.ID,
			domain.EventPayloadProvisionalAccount: u.IsProvisional,
		},
	})
	return nil
}

// EmailExists reports whether any user already holds the given contact address,
// compared case-insensitively.
func EmailExists(tx *pop.Connection, email string) (bool, error) {
	count, err := tx.Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).Count(&User{})
	if err != nil {
		return false, appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return count > 0, nil
}

func (u *User) Name() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}
