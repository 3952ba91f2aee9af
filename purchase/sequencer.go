package purchase

import (
	"fmt"

	"github.com/gobuffalo/pop/v6"

	"github.com/sureinsurance/sure-api/api"
	"github.com/sureinsurance/sure-api/models"
)

// NextPolicyNumber allocates the next policy number for a product, formatted as
// the product's prefix and a 1-based sequence. The product row is locked for the
// rest of the transaction, so two purchases of the same product cannot read the
// same policy count; purchases of different products proceed in parallel.
func NextPolicyNumber(tx *pop.Connection, product *models.Product) (string, error) {
	lock := struct {
		ID int `db:"id"`
	}{}
	err := tx.RawQuery("SELECT id FROM products WHERE id = ? FOR UPDATE", product.ID).First(&lock)
	if err != nil {
		return "", api.NewAppError(
			fmt.Errorf("error locking product %d for number allocation: %w", product.ID, err),
			api.ErrorPolicyNumberConflict,
			api.CategoryDatabase,
		)
	}

	count, err := product.CountPolicies(tx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s_%d", product.PolicyNumberPrefix, count+1), nil
}
