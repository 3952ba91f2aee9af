package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
)

type Beneficiaries []Beneficiary

// Beneficiary is a payout recipient. It carries only a percentage share and never
// contributes to premium or cover totals.
type Beneficiary struct {
	ID            uuid.UUID  `db:"id"`
	MembershipID  uuid.UUID  `db:"membership_id"`
	PolicyID      uuid.UUID  `db:"policy_id"`
	SchemeGroupID nulls.UUID `db:"scheme_group_id"`

	FirstName      string       `db:"first_name" validate:"required"`
	LastName       string       `db:"last_name"`
	Email          nulls.String `db:"email"`
	PhoneNumber    nulls.String `db:"phone_number"`
	IDNumber       nulls.String `db:"id_number"`
	PassportNumber nulls.String `db:"passport_number"`
	Gender         nulls.String `db:"gender"`
	Relationship   nulls.String `db:"relationship"`
	DateOfBirth    nulls.Time   `db:"date_of_birth"`

	Percentage decimal.Decimal `db:"percentage"`

	Status api.PolicyStatus `db:"status" validate:"policyStatus"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (b *Beneficiary) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(b), nil
}

func (b *Beneficiary) GetID() uuid.UUID {
	return b.ID
}

func (b *Beneficiary) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, b, id)
}

func (b *Beneficiary) Create(tx *pop.Connection) error {
	if b.Status == "" {
		b.Status = api.PolicyStatusActive
	}
	return create(tx, b)
}
