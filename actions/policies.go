package actions

import (
	"github.com/gobuffalo/buffalo"
	"github.com/gofrs/uuid"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
)

// swagger:operation GET /policies Policies PoliciesList
//
// PoliciesList
//
// list all policies
//
// ---
//
//	responses:
//	  '200':
//	    description: all policies
//	    schema:
//	      type: array
//	      items:
//	        "$ref": "#/definitions/Policy"
func policiesList(c buffalo.Context) error {
	tx := models.Tx(c)

	var policies models.Policies
	if err := tx.Order("created_at desc").All(&policies); err != nil {
		return reportError(c, err)
	}

	apiPolicies := make(api.Policies, len(policies))
	for i := range policies {
		apiPolicies[i] = policies[i].ConvertToAPI(tx)
	}
	return renderOk(c, apiPolicies)
}

// swagger:operation GET /policies/{id} Policies PoliciesView
//
// PoliciesView
//
// view one policy
//
// ---
//
//	parameters:
//	  - name: id
//	    in: path
//	    required: true
//	    description: policy ID
//	responses:
//	  '200':
//	    description: the requested policy
//	    schema:
//	      "$ref": "#/definitions/Policy"
func policiesView(c buffalo.Context) error {
	tx := models.Tx(c)

	policy, err := findPolicy(c)
	if err != nil {
		return reportError(c, err)
	}
	return renderOk(c, policy.ConvertToAPI(tx))
}

// swagger:operation GET /policies/{id}/memberships Policies PoliciesListMemberships
//
// PoliciesListMemberships
//
// list the memberships of a policy
//
// ---
//
//	parameters:
//	  - name: id
//	    in: path
//	    required: true
//	    description: policy ID
//	responses:
//	  '200':
//	    description: the policy's memberships
//	    schema:
//	      type: array
//	      items:
//	        "$ref": "#/definitions/Membership"
func policiesListMemberships(c buffalo.Context) error {
	tx := models.Tx(c)

	policy, err := findPolicy(c)
	if err != nil {
		return reportError(c, err)
	}
	if err := policy.LoadMemberships(tx, false); err != nil {
		return reportError(c, err)
	}
	return renderOk(c, policy.Memberships.ConvertToAPI(tx))
}

// swagger:operation GET /policies/{id}/premiums Policies PoliciesListPremiums
//
// PoliciesListPremiums
//
// list the expected premium collections of a policy
//
// ---
//
//	parameters:
//	  - name: id
//	    in: path
//	    required: true
//	    description: policy ID
//	responses:
//	  '200':
//	    description: the policy's premium records
//	    schema:
//	      type: array
//	      items:
//	        "$ref": "#/definitions/Premium"
func policiesListPremiums(c buffalo.Context) error {
	tx := models.Tx(c)

	policy, err := findPolicy(c)
	if err != nil {
		return reportError(c, err)
	}

	var premiums models.Premiums
	if err := tx.Where("policy_id = ?", policy.ID).Order("due_date asc").All(&premiums); err != nil {
		return reportError(c, err)
	}

	apiPremiums := make([]api.Premium, len(premiums))
	for i := range premiums {
		apiPremiums[i] = premiums[i].ConvertToAPI()
	}
	return renderOk(c, apiPremiums)
}

func findPolicy(c buffalo.Context) (models.Policy, error) {
	id := uuid.FromStringOrNil(c.Param("id"))
	newExtra(c, "policyID", id)

	var policy models.Policy
	err := policy.FindByID(models.Tx(c), id)
	return policy, err
}
