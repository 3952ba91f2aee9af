package grifts

import (
	"fmt"

	"github.com/gobuffalo/grift/grift"
	"github.com/gobuffalo/pop/v6"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
)

var _ = grift.Namespace("db", func() {
	grift.Desc("seed", "Seeds a database")
	_ = grift.Add("seed", func(c *grift.Context) error {
		count, err := models.DB.Count(&models.Product{})
		if err != nil {
			return errors.New("error counting products: " + err.Error())
		}

		if count > 0 {
			fmt.Printf("\nINFO: It appears that the grifts have already been run, "+
				"since there are already %v products.\n", count)
			return nil
		}

		return models.DB.Transaction(func(tx *pop.Connection) error {
			if err := createFuneralProducts(tx); err != nil {
				return err
			}
			if err := createCreditLifeProduct(tx); err != nil {
				return err
			}
			return createGadgetProduct(tx)
		})
	})
})

func createFuneralProducts(tx *pop.Connection) error {
	individual := models.Scheme{
		Name:       "Individual Funeral Cover",
		SchemeType: api.SchemeTypeIndividual,
		MaxMembers: 1,
	}
	if err := individual.Create(tx); err != nil {
		return err
	}

	retail := models.Product{
		Name:               "Funeral Cover Retail",
		SchemeID:           individual.ID,
		PolicyNumberPrefix: "FNR",
	}
	if err := retail.Create(tx); err != nil {
		return err
	}

	group := models.Scheme{
		Name:       "Group Funeral Cover",
		SchemeType: api.SchemeTypeGroup,
		MaxMembers: 50,
	}
	if err := group.Create(tx); err != nil {
		return err
	}

	groupProduct := models.Product{
		Name:               "Funeral Cover Group",
		SchemeID:           group.ID,
		PolicyNumberPrefix: "FNG",
	}
	return groupProduct.Create(tx)
}

func createCreditLifeProduct(tx *pop.Connection) error {
	scheme := models.Scheme{
		Name:       "Credit Life Cover",
		SchemeType: api.SchemeTypeIndividual,
		MaxMembers: 1,
	}
	if err := scheme.Create(tx); err != nil {
		return err
	}

	product := models.Product{
		Name:               "Credit Life",
		SchemeID:           scheme.ID,
		PolicyNumberPrefix: "CRL",
	}
	return product.Create(tx)
}

func createGadgetProduct(tx *pop.Connection) error {
	scheme := models.Scheme{
		Name:       "Gadget Cover",
		SchemeType: api.SchemeTypeIndividual,
		MaxMembers: 1,
	}
	if err := scheme.Create(tx); err != nil {
		return err
	}

	product := models.Product{
		Name:               "Gadget Cover",
		SchemeID:           scheme.ID,
		PolicyNumberPrefix: "GDG",
	}
	if err := product.Create(tx); err != nil {
		return err
	}

	tiers := []models.GadgetPricing{
		{
			ProductID: product.ID,
			TierName:  "Standard",
			MinValue:  decimal.New(0, 0),
			MaxValue:  decimal.New(10000, 0),
			Premium:   decimal.RequireFromString("30.00"),
		},
		{
			ProductID: product.ID,
			TierName:  "Premium",
			MinValue:  decimal.New(10000, 0),
			MaxValue:  decimal.New(50000, 0),
			Premium:   decimal.RequireFromString("75.00"),
		},
	}
	for i := range tiers {
		if err := tiers[i].Create(tx); err != nil {
			return err
		}
	}

	outlet := models.DeviceOutlet{
		AgentType:   "Retailer",
		Name:        "Main Street Devices",
		PhoneNumber: "+26771000000",
		Location:    "Main Mall",
		City:        "Gaborone",
		Country:     "Botswana",
	}
	return outlet.Create(tx)
}
