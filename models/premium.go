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

var ValidPremiumStatuses = map[api.PremiumStatus]struct{}{
	api.PremiumStatusFuture:  {},
	api.PremiumStatusPending: {},
	api.PremiumStatusPaid:    {},
	api.PremiumStatusFailed:  {},
}

type Premiums []Premium

// Premium is a single expected collection against a membership.
type Premium struct {
	ID            uuid.UUID `db:"id"`
	MembershipID  uuid.UUID `db:"membership_id"`
	PolicyID      uuid.UUID `db:"policy_id"`
	SchemeGroupID uuid.UUID `db:"scheme_group_id"`

	ExpectedAmount decimal.Decimal   `db:"expected_amount"`
	AmountPaid     decimal.Decimal   `db:"amount_paid"`
	DueDate        nulls.Time        `db:"due_date"`
	PaidAt         nulls.Time        `db:"paid_at"`
	Status         api.PremiumStatus `db:"status" validate:"premiumStatus"`
	Reference      nulls.String      `db:"reference"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *Premium) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *Premium) GetID() uuid.UUID {
	return p.ID
}

func (p *Premium) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, p, id)
}

func (p *Premium) Create(tx *pop.Connection) error {
	if p.Status == "" {
		p.Status = api.PremiumStatusFuture
	}
	return create(tx, p)
}

func (p *Premium) Update(tx *pop.Connection) error {
	return update(tx, p)
}

func (p *Premium) ConvertToAPI() api.Premium {
	return api.Premium{
		ID:             p.ID,
		MembershipID:   p.MembershipID,
		ExpectedAmount: p.ExpectedAmount,
		AmountPaid:     p.AmountPaid,
		DueDate:        convertTimeToAPI(p.DueDate),
		Status:         p.Status,
	}
}
