package models

import (
	"fmt"
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

type Products []Product

// Product is one sellable insurance product under a scheme
type Product struct {
	ID                 int          `db:"id"`
	Name               string       `db:"name" validate:"required"`
	SchemeID           int          `db:"scheme_id"`
	Description        nulls.String `db:"description"`
	PolicyNumberPrefix string       `db:"policy_number_prefix" validate:"required"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Scheme Scheme `belongs_to:"schemes" db:"-" validate:"-"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *Product) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *Product) Create(tx *pop.Connection) error {
	return create(tx, p)
}

func (p *Product) FindByID(tx *pop.Connection, id int) error {
	if err := tx.Find(p, id); err != nil {
		appErr := api.NewAppError(
			fmt.Errorf("product with id %d does not exist, %w", id, err),
			api.ErrorProductNotFound,
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

// LoadScheme hydrates the product's scheme unless it is already loaded
func (p *Product) LoadScheme(tx *pop.Connection, reload bool) error {
	if p.Scheme.ID == 0 || reload {
		if err := tx.Find(&p.Scheme, p.SchemeID); err != nil {
			return appErrorFromDB(fmt.Errorf("error loading scheme for product %d, %w", p.ID, err), api.ErrorQueryFailure)
		}
	}
	return nil
}

// CountPolicies returns the number of policies written against this product
func (p *Product) CountPolicies(tx *pop.Connection) (int, error) {
	count, err := tx.Where("product_id = ?", p.ID).Count(&Policy{})
	if err != nil {
		return 0, appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return count, nil
}
