package models

import (
	"github.com/sureinsurance/sure-api/api"
)

func (ms *ModelSuite) TestProduct_FindByID() {
	fixtures := CreateProductFixtures(ms.DB, 1, api.SchemeTypeIndividual)
	product := fixtures.Products[0]

	var found Product
	ms.NoError(found.FindByID(ms.DB, product.ID))
	ms.Equal(product.PolicyNumberPrefix, found.PolicyNumberPrefix)

	var missing Product
	err := missing.FindByID(ms.DB, 999999)
	ms.Error(err)
	ms.EqualAppError(api.AppError{Key: api.ErrorProductNotFound, Category: api.CategoryNotFound}, err)
}

func (ms *ModelSuite) TestProduct_CountPolicies() {
	fixtures := CreatePolicyFixtures(ms.DB, FixturesConfig{NumberOfPolicies: 1})
	var product Product
	ms.NoError(product.FindByID(ms.DB, fixtures.Policies[0].ProductID.Int))

	count, err := product.CountPolicies(ms.DB)
	ms.NoError(err)
	ms.Equal(1, count)
}
