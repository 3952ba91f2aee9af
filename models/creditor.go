package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

type Creditors []Creditor

// Creditor is a lender whose outstanding balance is insured under a credit-life
// policy. Its balance and premium are folded into the main member amounts on the
// owning membership at enrollment time, so totals never need to re-read this row.
type Creditor struct {
	ID           uuid.UUID `db:"id"`
	MembershipID uuid.UUID `db:"membership_id"`
	PolicyID     uuid.UUID `db:"policy_id"`

	Name          string       `db:"name" validate:"required"`
	ContactName   nulls.String `db:"contact_name"`
	PhoneNumber   nulls.String `db:"phone_number"`
	Email         nulls.String `db:"email"`
	Address       nulls.String `db:"address"`
	Town          nulls.String `db:"town"`
	Country       nulls.String `db:"country"`
	LoanReference  nulls.String `db:"loan_reference"`
	DateRegistered nulls.Time   `db:"date_registered"`

	LoanAmount         decimal.Decimal `db:"loan_amount"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	Premium            decimal.Decimal `db:"premium"`
	TermMonths         int             `db:"term_months"`
	DecliningTerm      bool            `db:"declining_term"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (c *Creditor) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(c), nil
}

func (c *Creditor) GetID() uuid.UUID {
	return c.ID
}

func (c *Creditor) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, c, id)
}

func (c *Creditor) Create(tx *pop.Connection) error {
	return create(tx, c)
}
