package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/fin"
)

type DependentType string

const (
	DependentTypeDependent = DependentType("Dependent")
	DependentTypeExtended  = DependentType("Extended")
)

type Dependents []Dependent

// Dependent is a secondary covered person whose premium and cover amount roll up
// into the owning membership's dependent totals.
type Dependent struct {
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

	Premium     decimal.Decimal `db:"premium"`
	CoverAmount decimal.Decimal `db:"cover_amount"`

	Status        api.PolicyStatus `db:"status" validate:"policyStatus"`
	DependentType DependentType    `db:"dependent_type"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (d *Dependent) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(d), nil
}

func (d *Dependent) GetID() uuid.UUID {
	return d.ID
}

func (d *Dependent) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, d, id)
}

func (d *Dependent) Create(tx *pop.Connection) error {
	if d.Status == "" {
		d.Status = api.PolicyStatusActive
	}
	if d.DependentType == "" {
		d.DependentType = DependentTypeDependent
	}
	return create(tx, d)
}

// Amounts returns the dependent's contribution to its membership's dependent totals
func (d *Dependent) Amounts() fin.Amounts {
	return fin.Amounts{
		Premium:     d.Premium,
		CoverAmount: d.CoverAmount,
	}
}
