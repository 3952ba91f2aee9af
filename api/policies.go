package api

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// PolicyStatus
//
// may be one of: Draft, Created, Active, Cancelled, Lapsed, Deactivated
//
// swagger:model
type PolicyStatus string

const (
	PolicyStatusDraft       = PolicyStatus("Draft")
	PolicyStatusCreated     = PolicyStatus("Created")
	PolicyStatusActive      = PolicyStatus("Active")
	PolicyStatusCancelled   = PolicyStatus("Cancelled")
	PolicyStatusLapsed      = PolicyStatus("Lapsed")
	PolicyStatusDeactivated = PolicyStatus("Deactivated")
)

// SchemeType
//
// may be one of: Individual, Group
//
// swagger:model
type SchemeType string

const (
	SchemeTypeIndividual = SchemeType("Individual")
	SchemeTypeGroup      = SchemeType("Group")
)

// PremiumStatus
//
// may be one of: Future, Pending, Paid, Failed
//
// swagger:model
type PremiumStatus string

const (
	PremiumStatusFuture  = PremiumStatus("Future")
	PremiumStatusPending = PremiumStatus("Pending")
	PremiumStatusPaid    = PremiumStatus("Paid")
	PremiumStatusFailed  = PremiumStatus("Failed")
)

// swagger:model
type Policies []Policy

// Policy represents a single purchased contract
// swagger:model
type Policy struct {
	// unique ID
	//
	// swagger:strfmt uuid4
	ID uuid.UUID `json:"id"`

	// human policy number, unique within the product's numbering scheme
	PolicyNumber string `json:"policy_number"`

	// policy status
	Status PolicyStatus `json:"status"`

	// policy start date
	StartDate *time.Time `json:"start_date,omitempty"`

	// total premium, the sum of the line premiums of all memberships and creditors
	Premium decimal.Decimal `json:"premium"`

	// total cover amount, summed the same way as the premium
	CoverAmount decimal.Decimal `json:"cover_amount"`

	// owning identity; absent for group policies
	//
	// swagger:strfmt uuid4
	PolicyOwnerID *uuid.UUID `json:"policy_owner_id,omitempty"`

	// presentation name of the policy owner, "Group Policy" when there is none
	PolicyOwnerName string `json:"policy_owner_name"`

	// The time the policy was created
	//
	// swagger:strfmt date-time
	CreatedAt time.Time `json:"created_at"`

	// The time the policy was last updated
	//
	// swagger:strfmt date-time
	UpdatedAt time.Time `json:"updated_at"`
}

// swagger:model
type Memberships []Membership

// Membership represents one covered individual's financial relationship to a policy
// swagger:model
type Membership struct {
	// unique ID
	//
	// swagger:strfmt uuid4
	ID uuid.UUID `json:"id"`

	// covered identity
	//
	// swagger:strfmt uuid4
	UserID uuid.UUID `json:"user_id"`

	MainMemberPremium     decimal.Decimal `json:"main_member_premium"`
	MainMemberCoverAmount decimal.Decimal `json:"main_member_cover_amount"`
	DependentPremium      decimal.Decimal `json:"dependent_premium"`
	DependentCoverAmount  decimal.Decimal `json:"dependent_cover_amount"`

	// always equal to main_member_premium + dependent_premium
	TotalPremium decimal.Decimal `json:"total_premium"`

	// always equal to main_member_cover_amount + dependent_cover_amount
	TotalCoverAmount decimal.Decimal `json:"total_cover_amount"`
}

// Premium represents one expected-amount-due record
// swagger:model
type Premium struct {
	// unique ID
	//
	// swagger:strfmt uuid4
	ID uuid.UUID `json:"id"`

	// swagger:strfmt uuid4
	MembershipID uuid.UUID `json:"membership_id"`

	ExpectedAmount decimal.Decimal `json:"expected_amount"`

	AmountPaid decimal.Decimal `json:"amount_paid"`

	// swagger:strfmt date
	DueDate *time.Time `json:"due_date,omitempty"`

	Status PremiumStatus `json:"status"`
}
