package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/domain"
)

type FixturesConfig struct {
	NumberOfPolicies     int
	MembershipsPerPolicy int
	DependentsPerPolicy  int
	SchemeType           api.SchemeType
}

// Fixtures hold slices of model objects created for test fixtures
type Fixtures struct {
	Dependents
	DeviceOutlets
	GadgetPricings
	Memberships
	Policies
	Products
	SchemeGroups
	Schemes
	Users
}

// TestBuffaloContext is a buffalo context used in tests
type TestBuffaloContext struct {
	buffalo.DefaultContext
	params map[any]any
}

// Value returns the value associated with the given key in the test context
func (b *TestBuffaloContext) Value(key any) any {
	return b.params[key]
}

// Set sets the value to be associated with the given key in the test context
func (b *TestBuffaloContext) Set(key string, val any) {
	b.params[key] = val
}

// CreateTestContext returns a buffalo context with the given transaction attached
func CreateTestContext(tx *pop.Connection) buffalo.Context {
	ctx := &TestBuffaloContext{
		params: map[any]any{},
	}
	ctx.Set(domain.ContextKeyTx, tx)
	return ctx
}

// CreateSchemeFixtures generates any number of scheme records for testing
func CreateSchemeFixtures(tx *pop.Connection, n int, schemeType api.SchemeType) Fixtures {
	schemes := make(Schemes, n)
	for i := range schemes {
		schemes[i].Name = randStr(10)
		schemes[i].SchemeType = schemeType
		schemes[i].MaxMembers = 20
		MustCreate(tx, &schemes[i])
	}

	return Fixtures{
		Schemes: schemes,
	}
}

// CreateProductFixtures generates any number of product records for testing,
// each under its own scheme. Uses FixturesConfig fields: NumberOfPolicies, SchemeType.
func CreateProductFixtures(tx *pop.Connection, n int, schemeType api.SchemeType) Fixtures {
	if schemeType == "" {
		schemeType = api.SchemeTypeIndividual
	}
	fixtures := CreateSchemeFixtures(tx, n, schemeType)

	products := make(Products, n)
	for i := range products {
		products[i].Name = randStr(10)
		products[i].SchemeID = fixtures.Schemes[i].ID
		products[i].PolicyNumberPrefix = randStr(3)
		MustCreate(tx, &products[i])
	}

	fixtures.Products = products
	return fixtures
}

// CreateGadgetFixtures generates a gadget product with one pricing tier and one
// selling outlet
func CreateGadgetFixtures(tx *pop.Connection) Fixtures {
	fixtures := CreateProductFixtures(tx, 1, api.SchemeTypeIndividual)

	pricing := GadgetPricing{
		ProductID: fixtures.Products[0].ID,
		TierName:  randStr(10),
		MinValue:  decimal.New(0, 0),
		MaxValue:  decimal.New(10000, 0),
		Premium:   decimal.New(50, 0),
	}
	MustCreate(tx, &pricing)

	outlet := DeviceOutlet{
		AgentType:   "Retailer",
		Name:        randStr(10),
		PhoneNumber: "+26771000000",
		Location:    randStr(10),
		City:        "Gaborone",
		Country:     "Botswana",
	}
	MustCreate(tx, &outlet)

	fixtures.GadgetPricings = GadgetPricings{pricing}
	fixtures.DeviceOutlets = DeviceOutlets{outlet}
	return fixtures
}

// CreateUserFixtures generates any number of user records for testing
func CreateUserFixtures(tx *pop.Connection, n int) Fixtures {
	users := make(Users, n)
	for i := range users {
		users[i].Email = uniqueEmail()
		users[i].FirstName = "first" + randStr(4)
		users[i].LastName = "last" + randStr(4)
		users[i].Role = UserRolePolicyOwner
		MustCreate(tx, &users[i])
	}

	return Fixtures{
		Users: users,
	}
}

// CreatePolicyFixtures generates any number of policy records and associated
// scheme groups, memberships and dependents.
// Uses FixturesConfig fields: NumberOfPolicies, MembershipsPerPolicy,
// DependentsPerPolicy, SchemeType.
func CreatePolicyFixtures(tx *pop.Connection, config FixturesConfig) Fixtures {
	if config.NumberOfPolicies < 1 {
		config.NumberOfPolicies = 1
	}
	if config.MembershipsPerPolicy < 1 {
		config.MembershipsPerPolicy = 1
	}

	fixtures := CreateProductFixtures(tx, config.NumberOfPolicies, config.SchemeType)
	userFixtures := CreateUserFixtures(tx, config.NumberOfPolicies*config.MembershipsPerPolicy)

	policies := make(Policies, config.NumberOfPolicies)
	schemeGroups := make(SchemeGroups, config.NumberOfPolicies)
	memberships := make(Memberships, 0, config.NumberOfPolicies*config.MembershipsPerPolicy)
	dependents := make(Dependents, 0, config.NumberOfPolicies*config.DependentsPerPolicy)

	for i := range policies {
		product := fixtures.Products[i]
		policies[i].ProductID = nulls.NewInt(product.ID)
		policies[i].PolicyNumber = fmt.Sprintf("%s_%d", product.PolicyNumberPrefix, i+1)
		policies[i].StartDate = nulls.NewTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		MustCreate(tx, &policies[i])

		schemeGroups[i].SchemeID = product.SchemeID
		schemeGroups[i].PolicyID = policies[i].ID
		MustCreate(tx, &schemeGroups[i])

		for j := 0; j < config.MembershipsPerPolicy; j++ {
			m := Membership{
				UserID:        userFixtures.Users[i*config.MembershipsPerPolicy+j].ID,
				PolicyID:      policies[i].ID,
				SchemeGroupID: schemeGroups[i].ID,
			}
			MustCreate(tx, &m)
			memberships = append(memberships, m)
		}

		for j := 0; j < config.DependentsPerPolicy; j++ {
			d := Dependent{
				MembershipID:  memberships[i*config.MembershipsPerPolicy].ID,
				PolicyID:      policies[i].ID,
				SchemeGroupID: nulls.NewUUID(schemeGroups[i].ID),
				FirstName:     "dep" + randStr(4),
				LastName:      randStr(6),
			}
			MustCreate(tx, &d)
			dependents = append(dependents, d)
		}
	}

	fixtures.Users = userFixtures.Users
	fixtures.Policies = policies
	fixtures.SchemeGroups = schemeGroups
	fixtures.Memberships = memberships
	fixtures.Dependents = dependents
	return fixtures
}

// MustCreate saves a record to the database with validation. Panics if any error occurs.
func MustCreate(tx *pop.Connection, f any) {
	// Use `create` instead of `tx.Create` to check validation rules
	err := create(tx, f)
	if err != nil {
		panic(fmt.Sprintf("error creating %T fixture, %s", f, err))
	}
}

func randStr(n int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[rand.Int63()%int64(len(chars))]
	}
	return string(b)
}

func uniqueEmail() string {
	return randStr(12) + "@example.org"
}

func DestroyAll() {
	var premiums Premiums
	destroyTable(&premiums)

	var payerDetails PayerDetails
	destroyTable(&payerDetails)

	var gadgets InsuredGadgets
	destroyTable(&gadgets)

	var creditors Creditors
	destroyTable(&creditors)

	var beneficiaries Beneficiaries
	destroyTable(&beneficiaries)

	var dependents Dependents
	destroyTable(&dependents)

	var membershipUpdates MembershipStatusUpdates
	destroyTable(&membershipUpdates)

	var memberships Memberships
	destroyTable(&memberships)

	var schemeGroups SchemeGroups
	destroyTable(&schemeGroups)

	var policyUpdates PolicyStatusUpdates
	destroyTable(&policyUpdates)

	var policies Policies
	destroyTable(&policies)

	var users Users
	destroyTable(&users)

	var pricings GadgetPricings
	destroyTable(&pricings)

	var outlets DeviceOutlets
	destroyTable(&outlets)

	var products Products
	destroyTable(&products)

	var schemes Schemes
	destroyTable(&schemes)
}

func destroyTable(i any) {
	if err := DB.All(i); err != nil {
		panic(err.Error())
	}
	if err := DB.Destroy(i); err != nil {
		panic(err.Error())
	}
}
