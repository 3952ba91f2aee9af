package actions

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
)

func (as *ActionSuite) Test_PurchasesCreateRetail() {
	fixtures := models.CreateProductFixtures(as.DB, 1, api.SchemeTypeIndividual)
	product := fixtures.Products[0]

	input := api.RetailPurchaseInput{
		Product:   product.ID,
		StartDate: "2026-10-01",
		Members: []api.MemberInput{
			{
				FirstName:   "First",
				LastName:    "Last",
				Email:       "buyer@example.org",
				Premium:     decimal.RequireFromString("100.00"),
				CoverAmount: decimal.RequireFromString("5000.00"),
			},
		},
		Dependents: []api.DependentInput{
			{FirstName: "Dep", LastName: "Last",
				Premium:     decimal.RequireFromString("20.00"),
				CoverAmount: decimal.RequireFromString("500.00")},
		},
		Beneficiaries:  []api.BeneficiaryInput{},
		PaymentDetails: &api.PaymentDetailsInput{PaymentMethod: "Debit Order"},
	}

	res := as.JSON("/purchases/retail").Post(input)
	as.Equal(http.StatusCreated, res.Code, "incorrect status code returned, body: %s", res.Body.String())

	var result api.PurchaseResult
	as.NoError(as.decodeBody(res.Body.Bytes(), &result))
	as.Equal(product.PolicyNumberPrefix+"_1", result.PolicyNumber)
	as.NotNil(result.MembershipID)

	var policy models.Policy
	as.NoError(policy.FindByID(as.DB, result.PolicyID))
	as.True(policy.Premium.Equal(decimal.RequireFromString("120.00")),
		"policy premium incorrect, got %s", policy.Premium)
}

func (as *ActionSuite) Test_PurchasesCreateRetail_MissingFields() {
	res := as.JSON("/purchases/retail").Post(map[string]any{})
	as.Equal(http.StatusBadRequest, res.Code)
	as.Contains(res.Body.String(), string(api.ErrorMissingRequiredFields))

	count, err := as.DB.Count(&models.Policy{})
	as.NoError(err)
	as.Equal(0, count, "failed purchase must not leave rows behind")
}

func (as *ActionSuite) Test_PurchasesCreateRetail_UnknownField() {
	res := as.JSON("/purchases/retail").Post(map[string]any{"bogus": true})
	as.Equal(http.StatusBadRequest, res.Code)
	as.Contains(res.Body.String(), string(api.ErrorInvalidRequestBody))
}

func (as *ActionSuite) Test_PurchasesCreateGroup() {
	fixtures := models.CreateProductFixtures(as.DB, 1, api.SchemeTypeGroup)

	input := api.GroupPurchaseInput{
		Product:   fixtures.Products[0].ID,
		StartDate: "2026-10-01",
		Members: []api.MemberInput{
			{FirstName: "One", LastName: "Member", Email: "one@example.org", IDNumber: "ID-1",
				Premium: decimal.RequireFromString("50.00"), CoverAmount: decimal.RequireFromString("2000.00")},
			{FirstName: "Two", LastName: "Member", Email: "two@example.org", IDNumber: "ID-2",
				Premium: decimal.RequireFromString("50.00"), CoverAmount: decimal.RequireFromString("2000.00")},
		},
	}

	res := as.JSON("/purchases/group").Post(input)
	as.Equal(http.StatusCreated, res.Code, "incorrect status code returned, body: %s", res.Body.String())

	var result api.PurchaseResult
	as.NoError(as.decodeBody(res.Body.Bytes(), &result))
	as.Nil(result.MembershipID)

	count, err := as.DB.Count(&models.Membership{})
	as.NoError(err)
	as.Equal(2, count)
}

func (as *ActionSuite) Test_PurchasesCreateCreditLife() {
	fixtures := models.CreateProductFixtures(as.DB, 1, api.SchemeTypeIndividual)

	input := api.CreditLifePurchaseInput{
		Product:   fixtures.Products[0].ID,
		StartDate: "2026-10-01",
		Members: []api.MemberInput{
			{FirstName: "First", LastName: "Last", Email: "borrower@example.org"},
		},
		Creditors: []api.CreditorInput{
			{CreditorName: "First Loans",
				OutstandingBalance: decimal.RequireFromString("50000.00"),
				Premium:            decimal.RequireFromString("75.50")},
		},
	}

	res := as.JSON("/purchases/credit-life").Post(input)
	as.Equal(http.StatusCreated, res.Code, "incorrect status code returned, body: %s", res.Body.String())

	var result api.PurchaseResult
	as.NoError(as.decodeBody(res.Body.Bytes(), &result))

	var policy models.Policy
	as.NoError(policy.FindByID(as.DB, result.PolicyID))
	as.True(policy.Premium.Equal(decimal.RequireFromString("75.50")))
}

func (as *ActionSuite) Test_PurchasesCreateGadget() {
	fixtures := models.CreateGadgetFixtures(as.DB)

	input := api.GadgetPurchaseInput{
		Pricing:     fixtures.GadgetPricings[0].ID,
		Seller:      fixtures.DeviceOutlets[0].ID,
		CoverAmount: decimal.RequireFromString("15000.00"),
		Premium:     decimal.RequireFromString("30.00"),
		StartDate:   "2026-10-01",
		PolicyOwner: &api.MemberInput{
			FirstName: "Owner", LastName: "Last", Email: "owner@example.org",
		},
		Devices: []api.DeviceInput{
			{DeviceBrand: "Samsung", DeviceModel: "S24", IMEINumber: "356938035643809",
				DeviceCost: decimal.RequireFromString("14000.00")},
		},
		PaymentDetails: &api.PaymentDetailsInput{PaymentMethod: "Card"},
	}

	res := as.JSON("/purchases/gadget").Post(input)
	as.Equal(http.StatusCreated, res.Code, "incorrect status code returned, body: %s", res.Body.String())

	var result api.PurchaseResult
	as.NoError(as.decodeBody(res.Body.Bytes(), &result))

	var policy models.Policy
	as.NoError(policy.FindByID(as.DB, result.PolicyID))
	as.True(policy.Premium.Equal(decimal.RequireFromString("30.00")))
	as.True(policy.CoverAmount.Equal(decimal.RequireFromString("15000.00")))
}

func (as *ActionSuite) Test_PurchasesCreateGadget_PricingNotFound() {
	input := api.GadgetPurchaseInput{
		Pricing:     999999,
		CoverAmount: decimal.RequireFromString("15000.00"),
		Premium:     decimal.RequireFromString("30.00"),
		StartDate:   "2026-10-01",
		PolicyOwner: &api.MemberInput{FirstName: "A", LastName: "B", Email: "c@example.org"},
		Devices: []api.DeviceInput{
			{DeviceBrand: "X", DeviceModel: "Y", SerialNumber: "SN"},
		},
		PaymentDetails: &api.PaymentDetailsInput{PaymentMethod: "Card"},
	}

	res := as.JSON("/purchases/gadget").Post(input)
	as.Equal(http.StatusNotFound, res.Code)
	as.Contains(res.Body.String(), string(api.ErrorPricingNotFound))
}
