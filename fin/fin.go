// Package fin folds purchase line items into premium and cover-amount totals.
// All arithmetic is exact decimal; a float64 must never carry a monetary value
// through this package.
package fin

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sureinsurance/sure-api/api"
)

// Amounts is one line item's contribution to the totals of its parent record.
type Amounts struct {
	Premium     decimal.Decimal
	CoverAmount decimal.Decimal
}

// Totals is the exact decimal sum of a list of line items.
type Totals struct {
	Premium     decimal.Decimal
	CoverAmount decimal.Decimal
}

// Add returns t with the given amounts added in. The receiver is not modified.
func (t Totals) Add(a Amounts) Totals {
	return Totals{
		Premium:     t.Premium.Add(a.Premium),
		CoverAmount: t.CoverAmount.Add(a.CoverAmount),
	}
}

// Sum folds a list of line items into totals. An empty list yields zero totals.
// Any negative amount fails the whole fold; line items are never mutated, and
// summing the same list twice yields identical totals.
func Sum(items []Amounts) (Totals, error) {
	var totals Totals
	for i, item := range items {
		if item.Premium.IsNegative() {
			err := fmt.Errorf("line item %d has negative premium %s", i, item.Premium)
			return Totals{}, api.NewAppError(err, api.ErrorInvalidAmount, api.CategoryUser)
		}
		if item.CoverAmount.IsNegative() {
			err := fmt.Errorf("line item %d has negative cover amount %s", i, item.CoverAmount)
			return Totals{}, api.NewAppError(err, api.ErrorInvalidAmount, api.CategoryUser)
		}
		totals = totals.Add(item)
	}
	return totals, nil
}
