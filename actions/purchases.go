package actions

import (
	"github.com/gobuffalo/buffalo"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
	"github.com/sureinsurance/sure-api/purchase"
)

// swagger:operation POST /purchases/retail Purchases PurchasesCreateRetail
//
// PurchasesCreateRetail
//
// purchase an individual policy with dependents and beneficiaries
//
// ---
//
//	parameters:
//	  - name: purchase input
//	    in: body
//	    description: retail purchase input object
//	    required: true
//	    schema:
//	      "$ref": "#/definitions/RetailPurchaseInput"
//	responses:
//	  '201':
//	    description: the committed purchase
//	    schema:
//	      "$ref": "#/definitions/PurchaseResult"
func purchasesCreateRetail(c buffalo.Context) error {
	var input api.RetailPurchaseInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "channel", "retail")

	result, err := purchase.Retail(models.Tx(c), input)
	if err != nil {
		return reportError(c, err)
	}
	return renderCreated(c, result)
}

// swagger:operation POST /purchases/group Purchases PurchasesCreateGroup
//
// PurchasesCreateGroup
//
// purchase a group policy with one membership per member
//
// ---
//
//	parameters:
//	  - name: purchase input
//	    in: body
//	    description: group purchase input object
//	    required: true
//	    schema:
//	      "$ref": "#/definitions/GroupPurchaseInput"
//	responses:
//	  '201':
//	    description: the committed purchase
//	    schema:
//	      "$ref": "#/definitions/PurchaseResult"
func purchasesCreateGroup(c buffalo.Context) error {
	var input api.GroupPurchaseInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "channel", "group")

	result, err := purchase.Group(models.Tx(c), input)
	if err != nil {
		return reportError(c, err)
	}
	return renderCreated(c, result)
}

// swagger:operation POST /purchases/credit-life Purchases PurchasesCreateCreditLife
//
// PurchasesCreateCreditLife
//
// purchase a credit-life policy covering outstanding loan balances
//
// ---
//
//	parameters:
//	  - name: purchase input
//	    in: body
//	    description: credit-life purchase input object
//	    required: true
//	    schema:
//	      "$ref": "#/definitions/CreditLifePurchaseInput"
//	responses:
//	  '201':
//	    description: the committed purchase
//	    schema:
//	      "$ref": "#/definitions/PurchaseResult"
func purchasesCreateCreditLife(c buffalo.Context) error {
	var input api.CreditLifePurchaseInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "channel", "credit-life")

	result, err := purchase.CreditLife(models.Tx(c), input)
	if err != nil {
		return reportError(c, err)
	}
	return renderCreated(c, result)
}

// swagger:operation POST /purchases/gadget Purchases PurchasesCreateGadget
//
// PurchasesCreateGadget
//
// purchase a gadget policy at a quoted price
//
// ---
//
//	parameters:
//	  - name: purchase input
//	    in: body
//	    description: gadget purchase input object
//	    required: true
//	    schema:
//	      "$ref": "#/definitions/GadgetPurchaseInput"
//	responses:
//	  '201':
//	    description: the committed purchase
//	    schema:
//	      "$ref": "#/definitions/PurchaseResult"
func purchasesCreateGadget(c buffalo.Context) error {
	var input api.GadgetPurchaseInput
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "channel", "gadget")

	result, err := purchase.Gadget(models.Tx(c), input)
	if err != nil {
		return reportError(c, err)
	}
	return renderCreated(c, result)
}
