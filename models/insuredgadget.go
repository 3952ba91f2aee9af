package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

type InsuredGadgets []InsuredGadget

// InsuredGadget is a device covered by a gadget policy, tied to the outlet that
// sold it.
type InsuredGadget struct {
	ID              uuid.UUID `db:"id"`
	PolicyID        uuid.UUID `db:"policy_id"`
	MembershipID    uuid.UUID `db:"membership_id"`
	GadgetPricingID nulls.Int `db:"gadget_pricing_id"`
	DeviceOutletID  nulls.Int `db:"device_outlet_id"`

	DeviceType   string          `db:"device_type"`
	Make         string          `db:"make" validate:"required"`
	Model        string          `db:"model" validate:"required"`
	Description  nulls.String    `db:"description"`
	SerialNumber nulls.String    `db:"serial_number"`
	IMEI         nulls.String    `db:"imei"`
	PurchaseDate nulls.Time      `db:"purchase_date"`
	Value        decimal.Decimal `db:"value"`
	Premium      decimal.Decimal `db:"premium"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (i *InsuredGadget) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(i), nil
}

func (i *InsuredGadget) GetID() uuid.UUID {
	return i.ID
}

func (i *InsuredGadget) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, i, id)
}

func (i *InsuredGadget) Create(tx *pop.Connection) error {
	return create(tx, i)
}

// LoadOutlet hydrates the selling outlet, if one was recorded.
func (i *InsuredGadget) LoadOutlet(tx *pop.Connection) (*DeviceOutlet, error) {
	if !i.DeviceOutletID.Valid {
		return nil, nil
	}
	var outlet DeviceOutlet
	if err := outlet.FindByID(tx, i.DeviceOutletID.Int); err != nil {
		return nil, err
	}
	return &outlet, nil
}
