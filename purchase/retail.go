package purchase

import (
	"github.com/gobuffalo/pop/v6"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/fin"
	"github.com/sureinsurance/sure-api/models"
)

// Retail purchases an individual policy: one membership for the primary member,
// with dependents and beneficiaries attached under it and dependent amounts
// folded into that membership's totals.
func Retail(tx *pop.Connection, input api.RetailPurchaseInput) (*api.PurchaseResult, error) {
	var missing []string
	if input.Product == 0 {
		missing = append(missing, "product")
	}
	if input.Members == nil {
		missing = append(missing, "members")
	}
	if input.Dependents == nil {
		missing = append(missing, "dependents")
	}
	if input.Beneficiaries == nil {
		missing = append(missing, "beneficiaries")
	}
	if input.PaymentDetails == nil {
		missing = append(missing, "payment_details")
	}
	if err := missingFieldsError(missing); err != nil {
		return nil, err
	}
	if len(input.Members) == 0 {
		return nil, noMembersError()
	}

	product, err := resolveProduct(tx, input.Product)
	if err != nil {
		return nil, err
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}

	return run(tx, request{
		channel:   retailChannel,
		product:   product,
		startDate: startDate,
		members:   input.Members,
		payment:   input.PaymentDetails,
		secondary: func(tx *pop.Connection, st *state) error {
			return attachCoveredPersons(tx, st, 0, input.Dependents, input.Beneficiaries)
		},
	})
}

// attachCoveredPersons creates dependents and beneficiaries under one membership
// and folds the dependents' amounts into its totals. Beneficiaries carry only a
// payout share and never touch the totals.
func attachCoveredPersons(tx *pop.Connection, st *state, membershipIndex int, dependents []api.DependentInput, beneficiaries []api.BeneficiaryInput) error {
	membership := &st.memberships[membershipIndex]

	items := make([]fin.Amounts, len(dependents))
	for i, d := range dependents {
		dependent, err := createDependent(tx, st, membership, d)
		if err != nil {
			return err
		}
		items[i] = dependent.Amounts()
	}

	totals, err := fin.Sum(items)
	if err != nil {
		return err
	}
	if err := membership.AddDependentAmounts(tx, totals); err != nil {
		return err
	}

	for _, b := range beneficiaries {
		if err := createBeneficiary(tx, st, membership, b); err != nil {
			return err
		}
	}
	return nil
}

func createDependent(tx *pop.Connection, st *state, membership *models.Membership, input api.DependentInput) (models.Dependent, error) {
	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		return models.Dependent{}, err
	}

	dependent := models.Dependent{
		MembershipID:   membership.ID,
		PolicyID:       st.policy.ID,
		SchemeGroupID:  nullsUUID(st.schemeGroup.ID),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          nullsString(input.Email),
		PhoneNumber:    nullsString(input.PhoneNumber),
		IDNumber:       nullsString(input.IDNumber),
		PassportNumber: nullsString(input.PassportNumber),
		Gender:         nullsString(input.Gender),
		Relationship:   nullsString(input.Relationship),
		DateOfBirth:    dateOfBirth,
		Premium:        input.Premium,
		CoverAmount:    input.CoverAmount,
	}
	if err := dependent.Create(tx); err != nil {
		return models.Dependent{}, err
	}
	return dependent, nil
}

func createBeneficiary(tx *pop.Connection, st *state, membership *models.Membership, input api.BeneficiaryInput) error {
	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		return err
	}

	beneficiary := models.Beneficiary{
		MembershipID:   membership.ID,
		PolicyID:       st.policy.ID,
		SchemeGroupID:  nullsUUID(st.schemeGroup.ID),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          nullsString(input.Email),
		PhoneNumber:    nullsString(input.PhoneNumber),
		IDNumber:       nullsString(input.IDNumber),
		PassportNumber: nullsString(input.PassportNumber),
		Gender:         nullsString(input.Gender),
		Relationship:   nullsString(input.Relationship),
		DateOfBirth:    dateOfBirth,
		Percentage:     input.Percentage,
	}
	return beneficiary.Create(tx)
}
