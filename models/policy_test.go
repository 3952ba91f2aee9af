package models

import (
	"testing"

	"github.com/gobuffalo/nulls"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

func (ms *ModelSuite) TestPolicy_Create() {
	fixtures := CreateProductFixtures(ms.DB, 1, api.SchemeTypeIndividual)
	product := fixtures.Products[0]

	ms.T().Run("defaults status and writes audit row", func(t *testing.T) {
		policy := Policy{
			PolicyNumber: product.PolicyNumberPrefix + "_1",
		}
		ms.NoError(policy.Create(ms.DB))
		ms.Equal(api.PolicyStatusCreated, policy.Status)

		var updates PolicyStatusUpdates
		ms.NoError(ms.DB.Where("policy_id = ?", policy.ID).All(&updates))
		ms.Len(updates, 1)
		ms.Equal(api.PolicyStatusDraft, updates[0].PreviousStatus)
		ms.Equal(api.PolicyStatusCreated, updates[0].NextStatus)
	})

	ms.T().Run("missing policy number fails validation", func(t *testing.T) {
		policy := Policy{}
		err := policy.Create(ms.DB)
		ms.Error(err)
		ms.EqualAppError(api.AppError{Key: api.ErrorValidation, Category: api.CategoryUser}, err)
	})
}

func (ms *ModelSuite) TestPolicy_FindByID_NotFound() {
	var missing Policy
	err := missing.FindByID(ms.DB, domain.GetUUID())
	ms.Error(err)
	ms.EqualAppError(api.AppError{Key: api.ErrorPolicyNotFound, Category: api.CategoryNotFound}, err)
}

func (ms *ModelSuite) TestPolicy_SetTotals() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	policy := fixtures.Policies[0]

	premium := decimal.RequireFromString("140.00")
	cover := decimal.RequireFromString("6000.00")
	ms.NoError(policy.SetTotals(ms.DB, premium, cover))

	var fromDB Policy
	ms.NoError(fromDB.FindByID(ms.DB, policy.ID))
	ms.True(fromDB.Premium.Equal(premium), "premium not persisted, got %s", fromDB.Premium)
	ms.True(fromDB.CoverAmount.Equal(cover), "cover amount not persisted, got %s", fromDB.CoverAmount)
}

func (ms *ModelSuite) TestPolicy_AddAmounts() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	policy := fixtures.Policies[0]

	ms.NoError(policy.AddAmounts(ms.DB, decimal.RequireFromString("0.10"), decimal.RequireFromString("100.00")))
	ms.NoError(policy.AddAmounts(ms.DB, decimal.RequireFromString("0.20"), decimal.RequireFromString("200.00")))

	var fromDB Policy
	ms.NoError(fromDB.FindByID(ms.DB, policy.ID))
	ms.True(fromDB.Premium.Equal(decimal.RequireFromString("0.30")),
		"premium drifted, got %s", fromDB.Premium)
	ms.True(fromDB.CoverAmount.Equal(decimal.RequireFromString("300.00")))
}

func (ms *ModelSuite) TestPolicy_OwnerName() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	policy := fixtures.Policies[0]
	user := fixtures.Users[0]

	ms.T().Run("no owner", func(t *testing.T) {
		ms.Equal("Group Policy", policy.OwnerName(ms.DB))
	})

	ms.T().Run("with owner", func(t *testing.T) {
		policy.PolicyOwnerID = nulls.NewUUID(user.ID)
		ms.NoError(policy.Update(ms.DB))
		ms.Equal(user.Name(), policy.OwnerName(ms.DB))
	})
}

func (ms *ModelSuite) TestPolicy_LoadMemberships() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1, MembershipsPerPolicy: 3})
	policy := fixtures.Policies[0]

	ms.NoError(policy.LoadMemberships(ms.DB, true))
	ms.Len(policy.Memberships, 3)
}
