package models

import (
	"fmt"
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

var ValidPolicyStatuses = map[api.PolicyStatus]struct{}{
	api.PolicyStatusDraft:       {},
	api.PolicyStatusCreated:     {},
	api.PolicyStatusActive:      {},
	api.PolicyStatusCancelled:   {},
	api.PolicyStatusLapsed:      {},
	api.PolicyStatusDeactivated: {},
}

type Policies []Policy

// Policy is one purchased contract. Premium and CoverAmount are always the exact
// decimal sum of the line amounts of the memberships and creditors under it; the
// purchase workflow owns them until commit, CRUD collaborators afterwards.
type Policy struct {
	ID              uuid.UUID        `db:"id"`
	ProductID       nulls.Int        `db:"product_id"`
	PolicyNumber    string           `db:"policy_number" validate:"required"`
	StartDate       nulls.Time       `db:"start_date"`
	MaturityDate    nulls.Time       `db:"maturity_date"`
	Status          api.PolicyStatus `db:"status" validate:"policyStatus"`
	Premium         decimal.Decimal  `db:"premium"`
	CoverAmount     decimal.Decimal  `db:"cover_amount"`
	PolicyDocument  nulls.String     `db:"policy_document"`
	PolicyOwnerID   nulls.UUID       `db:"policy_owner_id"`
	GadgetPricingID nulls.Int        `db:"gadget_pricing_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Memberships Memberships `has_many:"memberships" db:"-"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *Policy) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *Policy) GetID() uuid.UUID {
	return p.ID
}

func (p *Policy) FindByID(tx *pop.Connection, id uuid.UUID) error {
	if err := tx.Find(p, id); err != nil {
		appErr := api.NewAppError(
			fmt.Errorf("policy with id %s does not exist, %w", id, err),
			api.ErrorPolicyNotFound,
			api.CategoryNotFound,
		)
		if domain.IsOtherThanNoRows(err) {
			appErr.Category = api.CategoryInternal
			appErr.Key = api.ErrorQueryFailure
		}
		return appErr
	}
	return nil
}

// Create persists the policy and records the initial status transition
func (p *Policy) Create(tx *pop.Connection) error {
	if p.Status == "" {
		p.Status = api.PolicyStatusCreated
	}
	if err := create(tx, p); err != nil {
		return err
	}

	statusUpdate := PolicyStatusUpdate{PolicyID: p.ID}
	return statusUpdate.Create(tx)
}

func (p *Policy) Update(tx *pop.Connection) error {
	return update(tx, p)
}

// SetTotals replaces both financial totals together; they are never written independently
func (p *Policy) SetTotals(tx *pop.Connection, premium, coverAmount decimal.Decimal) error {
	p.Premium = premium
	p.CoverAmount = coverAmount
	return update(tx, p)
}

// AddAmounts adds one line item's premium and cover amount to the policy totals
func (p *Policy) AddAmounts(tx *pop.Connection, premium, coverAmount decimal.Decimal) error {
	p.Premium = p.Premium.Add(premium)
	p.CoverAmount = p.CoverAmount.Add(coverAmount)
	return update(tx, p)
}

// LoadMemberships hydrates the policy's memberships unless they are already loaded
func (p *Policy) LoadMemberships(tx *pop.Connection, reload bool) error {
	if len(p.Memberships) == 0 || reload {
		if err := tx.Where("policy_id = ?", p.ID).Order("created_at asc").All(&p.Memberships); err != nil {
			return appErrorFromDB(fmt.Errorf("error loading memberships for policy %s, %w", p.ID, err), api.ErrorQueryFailure)
		}
	}
	return nil
}

// OwnerName returns the policy owner's full name, or "Group Policy" when the
// policy has no single owning identity.
func (p *Policy) OwnerName(tx *pop.Connection) string {
	if !p.PolicyOwnerID.Valid {
		return "Group Policy"
	}

	var owner User
	if err := owner.FindByID(tx, p.PolicyOwnerID.UUID); err != nil {
		return "Group Policy"
	}
	return owner.Name()
}

func (p *Policy) ConvertToAPI(tx *pop.Connection) api.Policy {
	return api.Policy{
		ID:              p.ID,
		PolicyNumber:    p.PolicyNumber,
		Status:          p.Status,
		StartDate:       convertTimeToAPI(p.StartDate),
		Premium:         p.Premium,
		CoverAmount:     p.CoverAmount,
		PolicyOwnerID:   convertUUIDToAPI(p.PolicyOwnerID),
		PolicyOwnerName: p.OwnerName(tx),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type PolicyStatusUpdates []PolicyStatusUpdate

// PolicyStatusUpdate is one row of the append-only status audit trail
type PolicyStatusUpdate struct {
	ID             uuid.UUID        `db:"id"`
	PolicyID       uuid.UUID        `db:"policy_id"`
	PreviousStatus api.PolicyStatus `db:"previous_status" validate:"policyStatus"`
	NextStatus     api.PolicyStatus `db:"next_status" validate:"policyStatus"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *PolicyStatusUpdate) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *PolicyStatusUpdate) Create(tx *pop.Connection) error {
	if p.PreviousStatus == "" {
		p.PreviousStatus = api.PolicyStatusDraft
	}
	if p.NextStatus == "" {
		p.NextStatus = api.PolicyStatusCreated
	}
	return create(tx, p)
}
