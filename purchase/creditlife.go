package purchase

import (
	"fmt"

	"github.com/gobuffalo/pop/v6"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
)

// CreditLife purchases a credit-life policy: one membership for the primary
// member, with each creditor's outstanding balance and premium folded into the
// main-member amounts and the policy totals as soon as the creditor is created,
// so the totals stay internally consistent at every point of the workflow.
func CreditLife(tx *pop.Connection, input api.CreditLifePurchaseInput) (*api.PurchaseResult, error) {
	var missing []string
	if input.Product == 0 {
		missing = append(missing, "product")
	}
	if input.StartDate == "" {
		missing = append(missing, "start_date")
	}
	if input.Members == nil {
		missing = append(missing, "members")
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
		channel:   creditLifeChannel,
		product:   product,
		startDate: startDate,
		members:   input.Members,
		payment:   input.PaymentDetails,
		secondary: func(tx *pop.Connection, st *state) error {
			return attachCreditors(tx, st, input.Creditors)
		},
	})
}

func attachCreditors(tx *pop.Connection, st *state, creditors []api.CreditorInput) error {
	membership := &st.memberships[0]

	for i, c := range creditors {
		if c.Premium.IsNegative() || c.OutstandingBalance.IsNegative() {
			return api.NewAppError(
				fmt.Errorf("creditor %d has a negative premium or outstanding balance", i),
				api.ErrorInvalidAmount,
				api.CategoryUser,
			)
		}

		dateRegistered, err := parseDate(c.DateRegistered)
		if err != nil {
			return err
		}

		creditor := models.Creditor{
			MembershipID:       membership.ID,
			PolicyID:           st.policy.ID,
			Name:               c.CreditorName,
			ContactName:        nullsString(c.ContactPersonName),
			PhoneNumber:        nullsString(c.ContactPersonPhoneNumber),
			Email:              nullsString(c.ContactPersonEmail),
			Address:            nullsString(c.Address),
			Town:               nullsString(c.Town),
			Country:            nullsString(c.Country),
			LoanReference:      nullsString(c.LoanReference),
			DateRegistered:     dateRegistered,
			LoanAmount:         c.LoanAmount,
			OutstandingBalance: c.OutstandingBalance,
			Premium:            c.Premium,
			TermMonths:         c.TermMonths,
			DecliningTerm:      c.DecliningTerm,
		}
		if err := creditor.Create(tx); err != nil {
			return err
		}

		if err := membership.AddCreditorAmounts(tx, c.Premium, c.OutstandingBalance); err != nil {
			return err
		}
		if err := st.policy.AddAmounts(tx, c.Premium, c.OutstandingBalance); err != nil {
			return err
		}
	}
	return nil
}
