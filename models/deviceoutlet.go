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

type DeviceOutlets []DeviceOutlet

// DeviceOutlet is a gadget sales or repair outlet; gadget policies record the
// selling outlet against each insured device.
type DeviceOutlet struct {
	ID           int          `db:"id"`
	OwnerID      nulls.UUID   `db:"owner_id"`
	AgentType    string       `db:"agent_type"`
	OutletNumber nulls.String `db:"outlet_number"`
	Name         string       `db:"name" validate:"required"`
	Email        nulls.String `db:"email"`
	PhoneNumber  string       `db:"phone_number"`
	Location     string       `db:"location"`
	City         string       `db:"city"`
	Country      string       `db:"country"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (d *DeviceOutlet) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(d), nil
}

func (d *DeviceOutlet) Create(tx *pop.Connection) error {
	return create(tx, d)
}

func (d *DeviceOutlet) FindByID(tx *pop.Connection, id int) error {
	if err := tx.Find(d, id); err != nil {
		appErr := api.NewAppError(
			fmt.Errorf("device outlet with id %d does not exist, %w", id, err),
			api.ErrorOutletNotFound,
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
