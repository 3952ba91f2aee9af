package models

import (
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/fin"
)

func (ms *ModelSuite) TestMembership_Create() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	membership := fixtures.Memberships[0]

	var updates MembershipStatusUpdates
	ms.NoError(ms.DB.Where("membership_id = ?", membership.ID).All(&updates))
	ms.Len(updates, 1)
	ms.Equal(api.PolicyStatusDraft, updates[0].PreviousStatus)
	ms.Equal(api.PolicyStatusCreated, updates[0].NextStatus)
}

func (ms *ModelSuite) TestMembership_AddDependentAmounts() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	membership := fixtures.Memberships[0]

	membership.MainMemberPremium = decimal.RequireFromString("100.00")
	membership.MainMemberCoverAmount = decimal.RequireFromString("5000.00")
	membership.Reconcile()
	ms.NoError(membership.Update(ms.DB))

	totals := fin.Totals{
		Premium:     decimal.RequireFromString("40.00"),
		CoverAmount: decimal.RequireFromString("1000.00"),
	}
	ms.NoError(membership.AddDependentAmounts(ms.DB, totals))

	var fromDB Membership
	ms.NoError(fromDB.FindByID(ms.DB, membership.ID))
	ms.True(fromDB.DependentPremium.Equal(decimal.RequireFromString("40.00")))
	ms.True(fromDB.DependentCoverAmount.Equal(decimal.RequireFromString("1000.00")))
	ms.True(fromDB.TotalPremium.Equal(decimal.RequireFromString("140.00")),
		"total premium must equal main + dependent, got %s", fromDB.TotalPremium)
	ms.True(fromDB.TotalCoverAmount.Equal(decimal.RequireFromString("6000.00")),
		"total cover must equal main + dependent, got %s", fromDB.TotalCoverAmount)
}

func (ms *ModelSuite) TestMembership_AddCreditorAmounts() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	membership := fixtures.Memberships[0]

	// two creditors folded one at a time, both landing on the main member side
	ms.NoError(membership.AddCreditorAmounts(ms.DB,
		decimal.RequireFromString("25.00"), decimal.RequireFromString("10000.00")))
	ms.NoError(membership.AddCreditorAmounts(ms.DB,
		decimal.RequireFromString("15.00"), decimal.RequireFromString("4000.00")))

	var fromDB Membership
	ms.NoError(fromDB.FindByID(ms.DB, membership.ID))
	ms.True(fromDB.MainMemberPremium.Equal(decimal.RequireFromString("40.00")))
	ms.True(fromDB.MainMemberCoverAmount.Equal(decimal.RequireFromString("14000.00")))
	ms.True(fromDB.DependentPremium.IsZero(), "creditor amounts must not touch dependent fields")
	ms.True(fromDB.TotalPremium.Equal(decimal.RequireFromString("40.00")))
	ms.True(fromDB.TotalCoverAmount.Equal(decimal.RequireFromString("14000.00")))
}

func (ms *ModelSuite) TestMembership_Reconcile() {
	m := Membership{
		MainMemberPremium:     decimal.RequireFromString("75.50"),
		MainMemberCoverAmount: decimal.RequireFromString("50000.00"),
	}

	m.Reconcile()
	ms.True(m.TotalPremium.Equal(decimal.RequireFromString("75.50")))
	ms.True(m.TotalCoverAmount.Equal(decimal.RequireFromString("50000.00")))

	// running it again must not change anything
	m.Reconcile()
	ms.True(m.TotalPremium.Equal(decimal.RequireFromString("75.50")))
	ms.True(m.TotalCoverAmount.Equal(decimal.RequireFromString("50000.00")))
}
