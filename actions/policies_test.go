package actions

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
)

func (as *ActionSuite) Test_PoliciesList() {
	fixtures := models.CreatePolicyFixtures(as.DB, models.FixturesConfig{NumberOfPolicies: 2})

	res := as.JSON("/policies").Get()
	as.Equal(http.StatusOK, res.Code)

	var policies api.Policies
	as.NoError(as.decodeBody(res.Body.Bytes(), &policies))
	as.Len(policies, 2)
	as.Contains(res.Body.String(), fixtures.Policies[0].PolicyNumber)
}

func (as *ActionSuite) Test_PoliciesView() {
	fixtures := models.CreatePolicyFixtures(as.DB, models.FixturesConfig{NumberOfPolicies: 1})
	policy := fixtures.Policies[0]

	res := as.JSON("/policies/%s", policy.ID).Get()
	as.Equal(http.StatusOK, res.Code)

	var apiPolicy api.Policy
	as.NoError(as.decodeBody(res.Body.Bytes(), &apiPolicy))
	as.Equal(policy.PolicyNumber, apiPolicy.PolicyNumber)
	as.Equal("Group Policy", apiPolicy.PolicyOwnerName)
}

func (as *ActionSuite) Test_PoliciesView_NotFound() {
	res := as.JSON("/policies/%s", "00000000-0000-0000-0000-000000000000").Get()
	as.Equal(http.StatusNotFound, res.Code)
	as.Contains(res.Body.String(), string(api.ErrorPolicyNotFound))
}

func (as *ActionSuite) Test_PoliciesListMemberships() {
	fixtures := models.CreatePolicyFixtures(as.DB, models.FixturesConfig{
		NumberOfPolicies:     1,
		MembershipsPerPolicy: 3,
	})
	policy := fixtures.Policies[0]

	res := as.JSON("/policies/%s/memberships", policy.ID).Get()
	as.Equal(http.StatusOK, res.Code)

	var memberships api.Memberships
	as.NoError(as.decodeBody(res.Body.Bytes(), &memberships))
	as.Len(memberships, 3)
}

func (as *ActionSuite) Test_PoliciesListPremiums() {
	fixtures := models.CreatePolicyFixtures(as.DB, models.FixturesConfig{NumberOfPolicies: 1})
	policy := fixtures.Policies[0]
	membership := fixtures.Memberships[0]

	premium := models.Premium{
		MembershipID:   membership.ID,
		PolicyID:       policy.ID,
		SchemeGroupID:  membership.SchemeGroupID,
		ExpectedAmount: decimal.RequireFromString("140.00"),
		DueDate:        policy.StartDate,
	}
	models.MustCreate(as.DB, &premium)

	res := as.JSON("/policies/%s/premiums", policy.ID).Get()
	as.Equal(http.StatusOK, res.Code)

	var premiums []api.Premium
	as.NoError(as.decodeBody(res.Body.Bytes(), &premiums))
	as.Len(premiums, 1)
	as.True(premiums[0].ExpectedAmount.Equal(decimal.RequireFromString("140.00")))
	as.Equal(api.PremiumStatusFuture, premiums[0].Status)
}
