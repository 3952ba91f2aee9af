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

type Memberships []Membership

// Membership is one covered individual's financial relationship to a policy.
// TotalPremium is always MainMemberPremium + DependentPremium, and the cover
// amount fields mirror that. The component fields are only ever written together,
// through the Add*Amounts and Reconcile methods.
type Membership struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	PolicyID      uuid.UUID `db:"policy_id"`
	SchemeGroupID uuid.UUID `db:"scheme_group_id"`

	MainMemberPremium     decimal.Decimal `db:"main_member_premium"`
	MainMemberCoverAmount decimal.Decimal `db:"main_member_cover_amount"`
	DependentPremium      decimal.Decimal `db:"dependent_premium"`
	DependentCoverAmount  decimal.Decimal `db:"dependent_cover_amount"`
	TotalPremium          decimal.Decimal `db:"total_premium"`
	TotalCoverAmount      decimal.Decimal `db:"total_cover_amount"`

	MembershipCertificate nulls.String `db:"membership_certificate"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (m *Membership) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(m), nil
}

func (m *Membership) GetID() uuid.UUID {
	return m.ID
}

func (m *Membership) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, m, id)
}

// Create persists the membership and records the initial status transition
func (m *Membership) Create(tx *pop.Connection) error {
	if err := create(tx, m); err != nil {
		return err
	}

	statusUpdate := MembershipStatusUpdate{MembershipID: m.ID}
	return statusUpdate.Create(tx)
}

func (m *Membership) Update(tx *pop.Connection) error {
	return update(tx, m)
}

// Reconcile recomputes the membership totals from their components. Running it
// twice on the same state yields the same result.
func (m *Membership) Reconcile() {
	m.TotalPremium = m.MainMemberPremium.Add(m.DependentPremium)
	m.TotalCoverAmount = m.MainMemberCoverAmount.Add(m.DependentCoverAmount)
}

// AddDependentAmounts folds dependent line totals into the dependent components
// and recomputes the membership totals, writing all four fields together.
func (m *Membership) AddDependentAmounts(tx *pop.Connection, totals fin.Totals) error {
	m.DependentPremium = m.DependentPremium.Add(totals.Premium)
	m.DependentCoverAmount = m.DependentCoverAmount.Add(totals.CoverAmount)
	m.Reconcile()
	return update(tx, m)
}

// AddCreditorAmounts folds one creditor's premium and outstanding balance into the
// main-member components, not the dependent ones, and recomputes the totals.
func (m *Membership) AddCreditorAmounts(tx *pop.Connection, premium, outstandingBalance decimal.Decimal) error {
	m.MainMemberPremium = m.MainMemberPremium.Add(premium)
	m.MainMemberCoverAmount = m.MainMemberCoverAmount.Add(outstandingBalance)
	m.Reconcile()
	return update(tx, m)
}

func (m *Membership) ConvertToAPI(tx *pop.Connection) api.Membership {
	return api.Membership{
		ID:                    m.ID,
		UserID:                m.UserID,
		MainMemberPremium:     m.MainMemberPremium,
		MainMemberCoverAmount: m.MainMemberCoverAmount,
		DependentPremium:      m.DependentPremium,
		DependentCoverAmount:  m.DependentCoverAmount,
		TotalPremium:          m.TotalPremium,
		TotalCoverAmount:      m.TotalCoverAmount,
	}
}

func (m *Memberships) ConvertToAPI(tx *pop.Connection) api.Memberships {
	memberships := make(api.Memberships, len(*m))
	for i, mm := range *m {
		memberships[i] = mm.ConvertToAPI(tx)
	}
	return memberships
}

type MembershipStatusUpdates []MembershipStatusUpdate

// MembershipStatusUpdate is one row of the append-only membership status audit trail
type MembershipStatusUpdate struct {
	ID             uuid.UUID        `db:"id"`
	MembershipID   uuid.UUID        `db:"membership_id"`
	PreviousStatus api.PolicyStatus `db:"previous_status" validate:"policyStatus"`
	NextStatus     api.PolicyStatus `db:"next_status" validate:"policyStatus"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (m *MembershipStatusUpdate) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(m), nil
}

func (m *MembershipStatusUpdate) Create(tx *pop.Connection) error {
	if m.PreviousStatus == "" {
		m.PreviousStatus = api.PolicyStatusDraft
	}
	if m.NextStatus == "" {
		m.NextStatus = api.PolicyStatusCreated
	}
	return create(tx, m)
}
