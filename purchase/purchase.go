// Package purchase runs the enrollment workflow that turns a purchase request
// into a committed policy graph. All four sales channels share one runner; a
// Channel descriptor carries the points where they differ, so there is a single
// copy of the workflow to keep correct.
//
// The runner expects a *pop.Connection that is already inside a transaction
// (the buffalo-pop transaction middleware provides one per request). Returning
// an error from any step rolls back the whole request, so no partial policy is
// ever visible to other transactions.
package purchase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gofrs/uuid"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/fin"
	"github.com/sureinsurance/sure-api/log"
	"github.com/sureinsurance/sure-api/models"
)

// Channel describes how one sales channel varies the shared enrollment workflow.
type Channel struct {
	// Name identifies the channel in audit events
	Name string

	// MembershipPerMember creates one membership per submitted member instead of
	// one for the primary member only
	MembershipPerMember bool

	// PassThrough channels quote the premium and cover amount up front; the
	// runner writes them straight onto the policy and memberships and verifies,
	// rather than recomputes, the totals at reconcile time
	PassThrough bool

	// UniqueIdentity rejects enrollment when a submitted email already belongs
	// to an existing identity
	UniqueIdentity bool

	// SetsPolicyOwner records the primary member's identity as the policy owner
	SetsPolicyOwner bool
}

var (
	retailChannel     = Channel{Name: "retail", SetsPolicyOwner: true}
	groupChannel      = Channel{Name: "group", MembershipPerMember: true, UniqueIdentity: true}
	creditLifeChannel = Channel{Name: "credit-life", SetsPolicyOwner: true}
	gadgetChannel     = Channel{Name: "gadget", PassThrough: true, SetsPolicyOwner: true}
)

// request is a channel entry point's validated input, normalized for the runner
type request struct {
	channel   Channel
	product   models.Product
	pricingID nulls.Int
	startDate nulls.Time
	members   []api.MemberInput
	quoted    fin.Amounts
	payment   *api.PaymentDetailsInput

	// secondary creates the channel's dependent/creditor/device records and
	// folds their amounts into the memberships
	secondary func(tx *pop.Connection, st *state) error
}

// state is the partially built policy graph shared between workflow steps
type state struct {
	policy      *models.Policy
	schemeGroup *models.SchemeGroup
	memberships models.Memberships
	users       models.Users

	// membershipByIDNumber maps a member's lowercased id number to the index of
	// the membership it owns, for group correlation
	membershipByIDNumber map[string]int
}

// run executes the shared workflow: policy shell and scheme group, primary
// membership(s), secondary records, totals reconciliation, payer details,
// premium due rows, and the purchase audit event.
func run(tx *pop.Connection, req request) (*api.PurchaseResult, error) {
	number, err := NextPolicyNumber(tx, &req.product)
	if err != nil {
		return nil, err
	}

	policy := models.Policy{
		ProductID:       nulls.NewInt(req.product.ID),
		PolicyNumber:    number,
		StartDate:       req.startDate,
		Premium:         req.quoted.Premium,
		CoverAmount:     req.quoted.CoverAmount,
		GadgetPricingID: req.pricingID,
	}
	if err := policy.Create(tx); err != nil {
		return nil, err
	}

	schemeGroup := models.SchemeGroup{
		SchemeID: req.product.SchemeID,
		PolicyID: policy.ID,
	}
	if err := schemeGroup.Create(tx); err != nil {
		return nil, err
	}

	st := &state{
		policy:               &policy,
		schemeGroup:          &schemeGroup,
		membershipByIDNumber: map[string]int{},
	}

	if err := createMemberships(tx, st, req); err != nil {
		return nil, err
	}

	if req.channel.SetsPolicyOwner {
		policy.PolicyOwnerID = nulls.NewUUID(st.users[0].ID)
		if err := policy.Update(tx); err != nil {
			return nil, err
		}
	}

	if req.secondary != nil {
		if err := req.secondary(tx, st); err != nil {
			return nil, err
		}
	}

	if err := reconcileTotals(tx, st, req.channel); err != nil {
		return nil, err
	}

	hasPayerDetails, err := recordPayerDetails(tx, st, req.payment)
	if err != nil {
		return nil, err
	}

	for i := range st.memberships {
		premium := models.Premium{
			MembershipID:   st.memberships[i].ID,
			PolicyID:       policy.ID,
			SchemeGroupID:  st.schemeGroup.ID,
			ExpectedAmount: st.memberships[i].TotalPremium,
			DueDate:        policy.StartDate,
		}
		if err := premium.Create(tx); err != nil {
			return nil, err
		}
	}

	e := events.Event{
		Kind:    domain.EventApiPolicyPurchased,
		Message: fmt.Sprintf("policy %s purchased via %s channel", policy.PolicyNumber, req.channel.Name),
		Payload: events.Payload{
			domain.EventPayloadID:              policy.ID,
			domain.EventPayloadPolicyNumber:    policy.PolicyNumber,
			domain.EventPayloadPurchaseChannel: req.channel.Name,
			domain.EventPayloadHasPayerDetails: hasPayerDetails,
			domain.EventPayloadMembershipCount: len(st.memberships),
		},
	}
	if err := events.Emit(e); err != nil {
		log.Errorf("error emitting event %s ... %v", e.Kind, err)
	}

	result := api.PurchaseResult{
		PolicyID:     policy.ID,
		PolicyNumber: policy.PolicyNumber,
	}
	if len(st.memberships) == 1 {
		id := st.memberships[0].ID
		result.MembershipID = &id
	}
	return &result, nil
}

// createMemberships provisions an identity and a membership for the primary
// member, or for every member on channels that enroll each one individually.
func createMemberships(tx *pop.Connection, st *state, req request) error {
	members := req.members
	if !req.channel.MembershipPerMember {
		members = members[:1]
	}

	for i, m := range members {
		user, err := EnsureUser(tx, m, req.channel.UniqueIdentity)
		if err != nil {
			return err
		}

		main := fin.Amounts{Premium: m.Premium, CoverAmount: m.CoverAmount}
		if req.channel.PassThrough {
			main = req.quoted
		}
		if main.Premium.IsNegative() || main.CoverAmount.IsNegative() {
			return api.NewAppError(
				fmt.Errorf("member %d has a negative premium or cover amount", i),
				api.ErrorInvalidAmount,
				api.CategoryUser,
			)
		}

		membership := models.Membership{
			UserID:                user.ID,
			PolicyID:              st.policy.ID,
			SchemeGroupID:         st.schemeGroup.ID,
			MainMemberPremium:     main.Premium,
			MainMemberCoverAmount: main.CoverAmount,
		}
		membership.Reconcile()
		if err := membership.Create(tx); err != nil {
			return err
		}

		st.users = append(st.users, user)
		st.memberships = append(st.memberships, membership)
		if key := correlationKey(m.IDNumber); key != "" {
			st.membershipByIDNumber[key] = i
		}
	}
	return nil
}

// reconcileTotals recomputes every membership's totals from its components and
// then the policy totals from the memberships. Safe to run repeatedly on the
// same state. Pass-through channels wrote their quoted amounts at policy
// creation, so for them the recomputed sum is verified against the policy
// instead of overwriting it.
func reconcileTotals(tx *pop.Connection, st *state, ch Channel) error {
	var totals fin.Totals
	for i := range st.memberships {
		st.memberships[i].Reconcile()
		if err := st.memberships[i].Update(tx); err != nil {
			return err
		}
		totals = totals.Add(fin.Amounts{
			Premium:     st.memberships[i].TotalPremium,
			CoverAmount: st.memberships[i].TotalCoverAmount,
		})
	}

	if ch.PassThrough {
		if !st.policy.Premium.Equal(totals.Premium) || !st.policy.CoverAmount.Equal(totals.CoverAmount) {
			err := fmt.Errorf("policy %s totals %s/%s diverged from quoted amounts %s/%s",
				st.policy.PolicyNumber, totals.Premium, totals.CoverAmount,
				st.policy.Premium, st.policy.CoverAmount)
			return api.NewAppError(err, api.ErrorTotalsMismatch, api.CategoryInternal)
		}
		return nil
	}

	return st.policy.SetTotals(tx, totals.Premium, totals.CoverAmount)
}

// recordPayerDetails creates at most one payer record. A request without
// payment details still commits; the omission is logged and carried on the
// purchase event for the audit listeners.
func recordPayerDetails(tx *pop.Connection, st *state, input *api.PaymentDetailsInput) (bool, error) {
	if input == nil || input.PaymentMethod == "" {
		log.WithFields(map[string]any{
			"policy_number": st.policy.PolicyNumber,
		}).Info("purchase committed without payer details")
		return false, nil
	}

	payerDetail := models.PayerDetail{
		PolicyID:      st.policy.ID,
		PaymentMethod: input.PaymentMethod,
		AccountType:   nullsString(input.AccountType),
		AccountName:   nullsString(input.AccountName),
		AccountNumber: nullsString(input.AccountNumber),
		BankName:      nullsString(input.BankName),
		BranchCode:    nullsString(input.BranchCode),
		PhoneNumber:   nullsString(input.PhoneNumber),
		SourceOfFunds: nullsString(input.SourceOfFunds),
	}
	if st.policy.PolicyOwnerID.Valid {
		payerDetail.UserID = st.policy.PolicyOwnerID
	}
	if input.DebitOrderDate != "" {
		day, err := strconv.Atoi(input.DebitOrderDate)
		if err != nil || day < 1 || day > 31 {
			return false, api.NewAppError(
				fmt.Errorf("debit_order_date %q is not a day of the month", input.DebitOrderDate),
				api.ErrorInvalidDebitDay,
				api.CategoryUser,
			)
		}
		payerDetail.DebitDay = nulls.NewInt(day)
	}

	if err := payerDetail.Create(tx); err != nil {
		return false, err
	}
	return true, nil
}

func correlationKey(idNumber string) string {
	return strings.ToLower(strings.TrimSpace(idNumber))
}

// missingFieldsError reports every absent required field at once, before any
// write has happened.
func missingFieldsError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	appErr := api.NewAppError(
		fmt.Errorf("missing required fields: %s", strings.Join(fields, ", ")),
		api.ErrorMissingRequiredFields,
		api.CategoryUser,
	)
	appErr.Extras = map[string]any{"fields": fields}
	return appErr
}

func resolveProduct(tx *pop.Connection, id int) (models.Product, error) {
	var product models.Product
	err := product.FindByID(tx, id)
	return product, err
}

func parseDate(s string) (nulls.Time, error) {
	if s == "" {
		return nulls.Time{}, nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nulls.Time{}, api.NewAppError(
			fmt.Errorf("cannot parse %q as a date, expected %s: %w", s, domain.DateFormat, err),
			api.ErrorInvalidStartDate,
			api.CategoryUser,
		)
	}
	return nulls.NewTime(t), nil
}

func noMembersError() error {
	return api.NewAppError(
		errors.New("at least one member is required"),
		api.ErrorNoMembers,
		api.CategoryUser,
	)
}

func nullsString(s string) nulls.String {
	if s == "" {
		return nulls.String{}
	}
	return nulls.NewString(s)
}

func nullsUUID(id uuid.UUID) nulls.UUID {
	return nulls.NewUUID(id)
}
