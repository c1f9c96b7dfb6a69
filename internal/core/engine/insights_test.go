package engine_test

import (
	"testing"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertCodes(alerts []domain.Alert) []string {
	codes := make([]string, 0, len(alerts))
	for _, a := range alerts {
		codes = append(codes, a.Code)
	}
	return codes
}

func TestRaiseAlerts_EveryThreshold(t *testing.T) {
	totals := domain.Totals{
		Cash:              dec("5000"),
		OperatingExpenses: dec("120000"),
		Receivables:       dec("30000"),
		Revenue:           dec("100000"),
		NetIncome:         dec("-2000"),
		Ratios:            domain.Ratios{DebtRatio: dec("0.8"), ProfitMargin: dec("-2")},
		Estimated:         []string{"cash"},
	}

	got := engine.RaiseAlerts(totals)

	require.Equal(t, []string{"cash-coverage", "overdue-receivables", "net-loss", "high-debt", "low-margin"}, alertCodes(got))
	assertDec(t, "0.5", got[0].Value, "cash months")
	assert.True(t, got[0].Estimated, "cash came from the fallback")
	assert.Equal(t, domain.SeverityCritical, got[0].Severity)
	assertDec(t, "109.5", got[1].Value, "receivable days")
	assert.False(t, got[1].Estimated)
	assertDec(t, "2000", got[2].Value, "loss")
	assert.Equal(t, domain.SeverityWarning, got[3].Severity)
}

func TestRaiseAlerts_Healthy(t *testing.T) {
	totals := domain.Totals{
		Cash:              dec("50000"),
		OperatingExpenses: dec("120000"),
		Receivables:       dec("10000"),
		Revenue:           dec("200000"),
		NetIncome:         dec("30000"),
		Ratios:            domain.Ratios{DebtRatio: dec("0.4"), ProfitMargin: dec("15")},
	}

	got := engine.RaiseAlerts(totals)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRaiseAlerts_ZeroDenominators(t *testing.T) {
	got := engine.RaiseAlerts(domain.Totals{})
	assert.Equal(t, []string{"low-margin"}, alertCodes(got))
}

func TestRecommend(t *testing.T) {
	totals := domain.Totals{
		Revenue:            dec("100000"),
		COGS:               dec("60000"),
		OperatingExpenses:  dec("38000"),
		NetIncome:          dec("2000"),
		Receivables:        dec("20000"),
		Inventory:          dec("30000"),
		CurrentAssets:      dec("80000"),
		CurrentLiabilities: dec("100000"),
		Ratios: domain.Ratios{
			ProfitMargin: dec("2"),
			CurrentRatio: dec("0.8"),
			DebtRatio:    dec("0.75"),
			ROE:          dec("5"),
		},
	}

	got := engine.Recommend(totals)

	codes := make([]string, 0, len(got))
	for _, r := range got {
		codes = append(codes, r.Code)
	}
	require.Equal(t, []string{"low-margin", "liquidity-crisis", "high-debt", "slow-collection", "slow-inventory", "low-roe"}, codes)

	margin := got[0]
	require.NotNil(t, margin.Actions[0].Figure)
	assertDec(t, "8", *margin.Actions[0].Figure, "price rise")
	assertDec(t, "5.7", *margin.Actions[1].Figure, "opex cut")
	assert.Nil(t, margin.Actions[2].Figure)

	liquidity := got[1]
	assertDec(t, "20000", *liquidity.Actions[0].Figure, "collect receivables")
	assertDec(t, "20000", *liquidity.Actions[2].Figure, "short-term financing")

	assertDec(t, "73", got[3].Value, "collection days")
	assertDec(t, "2", got[4].Value, "inventory turnover")
	assert.Equal(t, domain.SeverityInfo, got[5].Severity)
}

func TestRecommend_LiquidityNeedsLiabilities(t *testing.T) {
	healthy := domain.Ratios{ProfitMargin: dec("20"), ROE: dec("25")}

	got := engine.Recommend(domain.Totals{Revenue: dec("1000"), Ratios: healthy})
	assert.NotNil(t, got)
	assert.Empty(t, got, "no current liabilities and no stock means nothing to fix")

	weak := healthy
	weak.CurrentRatio = dec("1.2")
	got = engine.Recommend(domain.Totals{Revenue: dec("1000"), CurrentLiabilities: dec("100"), Ratios: weak})
	require.Len(t, got, 1)
	assert.Equal(t, "weak-liquidity", got[0].Code)
	assert.Equal(t, 2, got[0].Priority)
}

func TestMeasurePerformance(t *testing.T) {
	totals := domain.Totals{
		Revenue:            dec("100000"),
		NetIncome:          dec("10000"),
		CurrentAssets:      dec("300000"),
		CurrentLiabilities: dec("100000"),
		Equity:             dec("40000"),
	}

	got := engine.MeasurePerformance(totals, domain.DefaultAssumptions().Targets)
	require.Len(t, got.KPIs, 3)

	margin, current, roe := got.KPIs[0], got.KPIs[1], got.KPIs[2]
	assert.Equal(t, "profitMargin", margin.Name)
	assertDec(t, "10", margin.Actual, "margin")
	assertDec(t, "-5", margin.Variance, "margin variance")
	assertDec(t, "66.67", margin.Progress.Round(2), "margin progress")
	assert.False(t, margin.Met)

	assertDec(t, "3", current.Actual, "current ratio")
	assertDec(t, "100", current.Progress, "progress is capped")
	assert.True(t, current.Met)

	assertDec(t, "25", roe.Actual, "roe")
	assertDec(t, "5", roe.Variance, "roe variance")
	assert.True(t, roe.Met)
}

func TestMeasurePerformance_NonPositiveDenominators(t *testing.T) {
	got := engine.MeasurePerformance(domain.Totals{NetIncome: dec("500"), Equity: dec("-1000")}, domain.DefaultAssumptions().Targets)
	for _, k := range got.KPIs {
		assert.True(t, k.Actual.IsZero(), k.Name)
		assert.False(t, k.Met, k.Name)
	}
}

func TestSimulateStrategies(t *testing.T) {
	results := engine.SimulateStrategies(incomeTotals(), engine.PredefinedStrategies())
	require.Len(t, results, 4)

	tests := []struct {
		revenue string
		costs   string
		profit  string
		change  string
		percent string
		roi     string
	}{
		{"130000", "111000", "19000", "9000", "90", "1.8"},  // expansion
		{"85000", "66000", "19000", "9000", "90", "4.5"},    // shrinkage releases 200000
		{"60000", "42000", "18000", "8000", "80", "0"},      // partial shutdown, no investment
		{"120000", "102000", "18000", "8000", "80", "2.67"}, // new market
	}
	for i, tt := range tests {
		name := results[i].Strategy.Name
		assertDec(t, tt.revenue, results[i].ExpectedRevenue, name)
		assertDec(t, tt.costs, results[i].ExpectedCosts, name)
		assertDec(t, tt.profit, results[i].ExpectedProfit, name)
		assertDec(t, tt.change, results[i].ProfitChange, name)
		assertDec(t, tt.percent, results[i].ChangePercent, name)
		assertDec(t, tt.roi, results[i].ROI.Round(2), name)
		assert.True(t, results[i].Improves, name)
	}
	assert.Equal(t, domain.RiskHigh, results[0].Strategy.Risk)
}

func TestSimulateStrategy_ZeroBaseIncome(t *testing.T) {
	got := engine.SimulateStrategy(domain.Totals{}, engine.PredefinedStrategies()[0])
	assert.True(t, got.ChangePercent.IsZero())
	assert.True(t, got.ROI.IsZero())
	assert.False(t, got.Improves)
}
