package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

type PayerDetails []PayerDetail

// PayerDetail records who pays for a policy and how. Purchases succeed without
// one, so callers must tolerate its absence.
type PayerDetail struct {
	ID       uuid.UUID  `db:"id"`
	PolicyID uuid.UUID  `db:"policy_id"`
	UserID   nulls.UUID `db:"user_id"`

	PaymentMethod string       `db:"payment_method" validate:"required"`
	AccountType   nulls.String `db:"account_type"`
	AccountName   nulls.String `db:"account_name"`
	AccountNumber nulls.String `db:"account_number"`
	BankName      nulls.String `db:"bank_name"`
	BranchCode    nulls.String `db:"branch_code"`
	PhoneNumber   nulls.String `db:"phone_number"`
	SourceOfFunds nulls.String `db:"source_of_funds"`
	DebitDay      nulls.Int    `db:"debit_day"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *PayerDetail) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *PayerDetail) GetID() uuid.UUID {
	return p.ID
}

func (p *PayerDetail) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, p, id)
}

func (p *PayerDetail) Create(tx *pop.Connection) error {
	return create(tx, p)
}

// FindByPolicyID loads the payer record for a policy, if any. A missing record
// reports false without error.
func (p *PayerDetail) FindByPolicyID(tx *pop.Connection, policyID uuid.UUID) (bool, error) {
	err := tx.Where("policy_id = ?", policyID).First(p)
	if err != nil {
		if domain.IsOtherThanNoRows(err) {
			return false, appErrorFromDB(err, api.ErrorQueryFailure)
		}
		return false, nil
	}
	return true, nil
}
