package purchase

import (
	"errors"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/fin"
	"github.com/sureinsurance/sure-api/models"
)

// Gadget sells a device policy at a price quoted up front from a pricing tier.
// The quoted premium and cover amount pass straight through to the policy and
// its single membership; the first submitted device is insured, linked to the
// selling outlet when one is referenced. An owner email that already exists
// reuses the existing identity, so one person can insure any number of devices.
func Gadget(tx *pop.Connection, input api.GadgetPurchaseInput) (*api.PurchaseResult, error) {
	var missing []string
	if input.Pricing == 0 {
		missing = append(missing, "pricing")
	}
	if input.CoverAmount.IsZero() {
		missing = append(missing, "cover_amount")
	}
	if input.Premium.IsZero() {
		missing = append(missing, "premium")
	}
	if input.StartDate == "" {
		missing = append(missing, "start_date")
	}
	if input.PolicyOwner == nil {
		missing = append(missing, "policy_owner")
	}
	if input.PaymentDetails == nil {
		missing = append(missing, "payment_details")
	}
	if input.Devices == nil {
		missing = append(missing, "devices")
	}
	if err := missingFieldsError(missing); err != nil {
		return nil, err
	}
	if len(input.Devices) == 0 {
		return nil, api.NewAppError(
			errors.New("at least one device is required"),
			api.ErrorNoDevices,
			api.CategoryUser,
		)
	}

	device := input.Devices[0]
	if device.IMEINumber == "" && device.SerialNumber == "" {
		return nil, missingFieldsError([]string{"devices.imei_number or devices.serial_number"})
	}

	var pricing models.GadgetPricing
	if err := pricing.FindByID(tx, input.Pricing); err != nil {
		return nil, err
	}
	product, err := resolveProduct(tx, pricing.ProductID)
	if err != nil {
		return nil, err
	}

	var outlet *models.DeviceOutlet
	if input.Seller != 0 {
		outlet = &models.DeviceOutlet{}
		if err := outlet.FindByID(tx, input.Seller); err != nil {
			return nil, err
		}
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}

	return run(tx, request{
		channel:   gadgetChannel,
		product:   product,
		pricingID: nulls.NewInt(pricing.ID),
		startDate: startDate,
		members:   []api.MemberInput{*input.PolicyOwner},
		quoted:    fin.Amounts{Premium: input.Premium, CoverAmount: input.CoverAmount},
		payment:   input.PaymentDetails,
		secondary: func(tx *pop.Connection, st *state) error {
			return insureDevice(tx, st, device, outlet)
		},
	})
}

func insureDevice(tx *pop.Connection, st *state, input api.DeviceInput, outlet *models.DeviceOutlet) error {
	purchaseDate, err := parseDate(input.PurchaseDate)
	if err != nil {
		return err
	}

	gadget := models.InsuredGadget{
		PolicyID:        st.policy.ID,
		MembershipID:    st.memberships[0].ID,
		GadgetPricingID: st.policy.GadgetPricingID,
		DeviceType:      input.DeviceType,
		Make:            input.DeviceBrand,
		Model:           input.DeviceModel,
		Description:     nullsString(input.Description),
		SerialNumber:    nullsString(input.SerialNumber),
		IMEI:            nullsString(input.IMEINumber),
		PurchaseDate:    purchaseDate,
		Value:           input.DeviceCost,
		Premium:         st.policy.Premium,
	}
	if outlet != nil {
		gadget.DeviceOutletID = nulls.NewInt(outlet.ID)
	}
	return gadget.Create(tx)
}
