package models

import (
	"github.com/sureinsurance/sure-api/api"
)

func (ms *ModelSuite) TestPayerDetail_FindByPolicyID() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	policy := fixtures.Policies[0]

	var detail PayerDetail
	found, err := detail.FindByPolicyID(ms.DB, policy.ID)
	ms.NoError(err, "absence of a payer record is not an error")
	ms.False(found)

	payerDetail := PayerDetail{
		PolicyID:      policy.ID,
		PaymentMethod: "Debit Order",
	}
	ms.NoError(payerDetail.Create(ms.DB))

	found, err = detail.FindByPolicyID(ms.DB, policy.ID)
	ms.NoError(err)
	ms.True(found)
	ms.Equal(payerDetail.ID, detail.ID)
}

func (ms *ModelSuite) TestPayerDetail_Create_RequiresPaymentMethod() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})

	payerDetail := PayerDetail{PolicyID: fixtures.Policies[0].ID}
	err := payerDetail.Create(ms.DB)
	ms.Error(err)
	ms.EqualAppError(api.AppError{Key: api.ErrorValidation, Category: api.CategoryUser}, err)
}
