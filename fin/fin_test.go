package fin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(premium, cover string) Amounts {
	return Amounts{
		Premium:     decimal.RequireFromString(premium),
		CoverAmount: decimal.RequireFromString(cover),
	}
}

func Test_Sum(t *testing.T) {
	tests := []struct {
		name        string
		items       []Amounts
		wantPremium string
		wantCover   string
		wantErr     bool
	}{
		{
			name:        "empty list yields zero",
			items:       nil,
			wantPremium: "0",
			wantCover:   "0",
		},
		{
			name:        "single item",
			items:       []Amounts{amt("100.00", "5000.00")},
			wantPremium: "100.00",
			wantCover:   "5000.00",
		},
		{
			name: "member with two dependents",
			items: []Amounts{
				amt("100.00", "5000.00"),
				amt("20.00", "500.00"),
				amt("20.00", "500.00"),
			},
			wantPremium: "140.00",
			wantCover:   "6000.00",
		},
		{
			name: "exact decimals that would drift in binary floating point",
			items: []Amounts{
				amt("0.10", "0.10"),
				amt("0.20", "0.20"),
			},
			wantPremium: "0.30",
			wantCover:   "0.30",
		},
		{
			name:    "negative premium rejected",
			items:   []Amounts{amt("-1.00", "100.00")},
			wantErr: true,
		},
		{
			name:    "negative cover amount rejected",
			items:   []Amounts{amt("1.00", "-100.00")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.items)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Premium.Equal(decimal.RequireFromString(tt.wantPremium)),
				"premium: got %s", got.Premium)
			assert.True(t, got.CoverAmount.Equal(decimal.RequireFromString(tt.wantCover)),
				"cover amount: got %s", got.CoverAmount)
		})
	}
}

func Test_SumIsIdempotent(t *testing.T) {
	items := []Amounts{
		amt("75.50", "50000.00"),
		amt("20.00", "500.00"),
	}

	first, err := Sum(items)
	require.NoError(t, err)
	second, err := Sum(items)
	require.NoError(t, err)

	assert.True(t, first.Premium.Equal(second.Premium))
	assert.True(t, first.CoverAmount.Equal(second.CoverAmount))

	// the input list must not have been mutated
	assert.True(t, items[0].Premium.Equal(decimal.RequireFromString("75.50")))
	assert.True(t, items[1].CoverAmount.Equal(decimal.RequireFromString("500.00")))
}
