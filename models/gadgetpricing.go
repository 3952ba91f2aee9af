package models

import (
	"fmt"
	"time"

	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

type GadgetPricings []GadgetPricing

// GadgetPricing is one quoted pricing tier for a gadget product. Purchases reference
// pricing rather than the product directly; the product is resolved through it.
type GadgetPricing struct {
	ID        int             `db:"id"`
	ProductID int             `db:"product_id"`
	TierName  string          `db:"tier_name" validate:"required"`
	MinValue  decimal.Decimal `db:"min_value"`
	MaxValue  decimal.Decimal `db:"max_value"`
	Premium   decimal.Decimal `db:"premium"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (g *GadgetPricing) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(g), nil
}

func (g *GadgetPricing) Create(tx *pop.Connection) error {
	return create(tx, g)
}

func (g *GadgetPricing) FindByID(tx *pop.Connection, id int) error {
	if err := tx.Find(g, id); err != nil {
		appErr := api.NewAppError(
			fmt.Errorf("gadget pricing with id %d does not exist, %w", id, err),
			api.ErrorPricingNotFound,
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
