package purchase

import (
	"github.com/gobuffalo/pop/v6"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/fin"
	"github.com/sureinsurance/sure-api/log"
)

// Group purchases a group policy: one membership per submitted member, each with
// its own identity. Dependents and beneficiaries arrive as flat lists tagged
// with a main_member_id_number; each is attached to the membership whose owner
// shares that id number, compared case-insensitively. A tag matching no member
// is dropped without error.
func Group(tx *pop.Connection, input api.GroupPurchaseInput) (*api.PurchaseResult, error) {
	var missing []string
	if input.Product == 0 {
		missing = append(missing, "product")
	}
	if input.Members == nil {
		missing = append(missing, "members")
	}
	if input.StartDate == "" {
		missing = append(missing, "start_date")
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
		channel:   groupChannel,
		product:   product,
		startDate: startDate,
		members:   input.Members,
		payment:   input.PaymentDetails,
		secondary: func(tx *pop.Connection, st *state) error {
			return attachCorrelatedPersons(tx, st, input.Dependents, input.Beneficiaries)
		},
	})
}

// attachCorrelatedPersons routes each flat-list dependent and beneficiary to the
// membership matching its correlation key, accumulating dependent amounts per
// membership and folding each membership's batch once.
func attachCorrelatedPersons(tx *pop.Connection, st *state, dependents []api.DependentInput, beneficiaries []api.BeneficiaryInput) error {
	itemsByMembership := map[int][]fin.Amounts{}

	for _, d := range dependents {
		idx, ok := st.membershipByIDNumber[correlationKey(d.MainMemberIDNumber)]
		if !ok {
			log.WithFields(map[string]any{
				"policy_number":         st.policy.PolicyNumber,
				"main_member_id_number": d.MainMemberIDNumber,
			}).Info("dropping dependent with no matching member")
			continue
		}

		dependent, err := createDependent(tx, st, &st.memberships[idx], d)
		if err != nil {
			return err
		}
		itemsByMembership[idx] = append(itemsByMembership[idx], dependent.Amounts())
	}

	for idx, items := range itemsByMembership {
		totals, err := fin.Sum(items)
		if err != nil {
			return err
		}
		if err := st.memberships[idx].AddDependentAmounts(tx, totals); err != nil {
			return err
		}
	}

	for _, b := range beneficiaries {
		idx, ok := st.membershipByIDNumber[correlationKey(b.MainMemberIDNumber)]
		if !ok {
			log.WithFields(map[string]any{
				"policy_number":         st.policy.PolicyNumber,
				"main_member_id_number": b.MainMemberIDNumber,
			}).Info("dropping beneficiary with no matching member")
			continue
		}
		if err := createBeneficiary(tx, st, &st.memberships[idx], b); err != nil {
			return err
		}
	}
	return nil
}
