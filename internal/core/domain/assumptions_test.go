package domain_test

import (
	"testing"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssumptions(t *testing.T) {
	a := domain.DefaultAssumptions()

	tests := map[string]string{
		"fallback.cashShareOfCurrentAssets":          "0.2",
		"fallback.receivablesShareOfCurrentAssets":   "0.4",
		"fallback.inventoryShareOfCurrentAssets":     "0.3",
		"fallback.payablesShareOfCurrentLiabilities": "0.6",
		"cashFlow.receivablesGrowth":                 "0.1",
		"cashFlow.inventoryGrowth":                   "0.05",
		"cashFlow.prepaidGrowth":                     "0.02",
		"cashFlow.payablesGrowth":                    "0.08",
		"cashFlow.accruedGrowth":                     "0.03",
		"cashFlow.capexRate":                         "0.1",
		"cashFlow.disposalRate":                      "0.02",
		"cashFlow.newLoanRate":                       "0.05",
		"cashFlow.repaymentRate":                     "0.08",
		"cashFlow.dividendPayout":                    "0.2",
		"zakat.rate":                                 "0.025",
		"targets.profitMargin":                       "15",
		"targets.currentRatio":                       "2",
		"targets.roe":                                "20",
	}
	for key, want := range tests {
		got, ok := a.Get(key)
		require.True(t, ok, key)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", key, want, got)
	}

	aging := a.Aging
	sum := aging.Current.Add(aging.Days30).Add(aging.Days60).Add(aging.Days90).Add(aging.Over90)
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "aging bands should cover all receivables")
}

func TestAssumptions_Apply(t *testing.T) {
	base := domain.DefaultAssumptions()

	got, err := base.Apply(map[string]decimal.Decimal{
		"zakat.rate":             decimal.RequireFromString("0.02577"),
		"forecast.revenueGrowth": decimal.RequireFromString("0.15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "0.02577", got.Zakat.Rate.String())
	assert.Equal(t, "0.15", got.Forecast.RevenueGrowth.String())
	// The receiver is left untouched.
	assert.Equal(t, "0.025", base.Zakat.Rate.String())
}

func TestAssumptions_ApplyUnknownKey(t *testing.T) {
	base := domain.DefaultAssumptions()

	got, err := base.Apply(map[string]decimal.Decimal{
		"zakat.rate":   decimal.NewFromInt(1),
		"zakat.nisaab": decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zakat.nisaab")
	assert.Equal(t, "0.025", got.Zakat.Rate.String(), "nothing is applied on error")
}

func TestAssumptionKeys(t *testing.T) {
	keys := domain.AssumptionKeys()
	assert.Contains(t, keys, "cashFlow.receivablesGrowth")
	assert.Contains(t, keys, "valuation.evaWacc")
	assert.IsIncreasing(t, keys)

	_, ok := domain.DefaultAssumptions().Get("does.not.exist")
	assert.False(t, ok)
}
