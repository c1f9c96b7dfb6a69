package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Assumptions collects every placeholder rate the reports rely on in the absence of
// real prior-period data. DefaultAssumptions reproduces the legacy figures; callers
// override individual values with Apply.
type Assumptions struct {
	Fallback  FallbackAssumptions  `json:"fallback"`
	CashFlow  CashFlowAssumptions  `json:"cashFlow"`
	Zakat     ZakatAssumptions     `json:"zakat"`
	Forecast  ForecastAssumptions  `json:"forecast"`
	Trend     TrendAssumptions     `json:"trend"`
	Valuation ValuationAssumptions `json:"valuation"`
	Aging     AgingAssumptions     `json:"aging"`
	Targets   TargetAssumptions    `json:"targets"`
}

// FallbackAssumptions are shares of the parent bucket used when a detail bucket is empty.
type FallbackAssumptions struct {
	CashShareOfCurrentAssets        decimal.Decimal `json:"cashShareOfCurrentAssets"`
	ReceivablesShareOfCurrentAssets decimal.Decimal `json:"receivablesShareOfCurrentAssets"`
	InventoryShareOfCurrentAssets   decimal.Decimal `json:"inventoryShareOfCurrentAssets"`
	PayablesShareOfCurrentLiabs     decimal.Decimal `json:"payablesShareOfCurrentLiabilities"`
}

// CashFlowAssumptions stand in for period-over-period deltas.
type CashFlowAssumptions struct {
	ReceivablesGrowth decimal.Decimal `json:"receivablesGrowth"`
	InventoryGrowth   decimal.Decimal `json:"inventoryGrowth"`
	PrepaidGrowth     decimal.Decimal `json:"prepaidGrowth"`
	PayablesGrowth    decimal.Decimal `json:"payablesGrowth"`
	AccruedGrowth     decimal.Decimal `json:"accruedGrowth"`
	CapexRate         decimal.Decimal `json:"capexRate"`
	DisposalRate      decimal.Decimal `json:"disposalRate"`
	Investments       decimal.Decimal `json:"investments"`
	NewLoanRate       decimal.Decimal `json:"newLoanRate"`
	RepaymentRate     decimal.Decimal `json:"repaymentRate"`
	DividendPayout    decimal.Decimal `json:"dividendPayout"`
	CapitalIncrease   decimal.Decimal `json:"capitalIncrease"`
}

// ZakatAssumptions holds the levy rate.
type ZakatAssumptions struct {
	Rate decimal.Decimal `json:"rate"`
}

// ForecastAssumptions drive the next-year projection.
type ForecastAssumptions struct {
	RevenueGrowth    decimal.Decimal `json:"revenueGrowth"`
	COGSGrowthFactor decimal.Decimal `json:"cogsGrowthFactor"`
	OpexGrowth       decimal.Decimal `json:"opexGrowth"`
}

// TrendAssumptions are the multipliers that fabricate the two prior years.
type TrendAssumptions struct {
	RevenueTwoYearsAgo   decimal.Decimal `json:"revenueTwoYearsAgo"`
	RevenueLastYear      decimal.Decimal `json:"revenueLastYear"`
	ExpensesTwoYearsAgo  decimal.Decimal `json:"expensesTwoYearsAgo"`
	ExpensesLastYear     decimal.Decimal `json:"expensesLastYear"`
	NetIncomeTwoYearsAgo decimal.Decimal `json:"netIncomeTwoYearsAgo"`
	NetIncomeLastYear    decimal.Decimal `json:"netIncomeLastYear"`
	AssetsTwoYearsAgo    decimal.Decimal `json:"assetsTwoYearsAgo"`
	AssetsLastYear       decimal.Decimal `json:"assetsLastYear"`
	EquityTwoYearsAgo    decimal.Decimal `json:"equityTwoYearsAgo"`
	EquityLastYear       decimal.Decimal `json:"equityLastYear"`
}

// ValuationAssumptions feed DCF, multiples, WACC and EVA.
type ValuationAssumptions struct {
	FreeCashFlowFactor decimal.Decimal `json:"freeCashFlowFactor"`
	GrowthRate         decimal.Decimal `json:"growthRate"`
	DiscountRate       decimal.Decimal `json:"discountRate"`
	EBITDAMultiple     decimal.Decimal `json:"ebitdaMultiple"`
	DCFWeight          decimal.Decimal `json:"dcfWeight"`
	MultiplesWeight    decimal.Decimal `json:"multiplesWeight"`
	NAVWeight          decimal.Decimal `json:"navWeight"`
	CostOfDebt         decimal.Decimal `json:"costOfDebt"`
	CostOfEquity       decimal.Decimal `json:"costOfEquity"`
	EVAWACC            decimal.Decimal `json:"evaWacc"`
	NOPATFactor        decimal.Decimal `json:"nopatFactor"`
}

// AgingAssumptions split receivables across age bands.
type AgingAssumptions struct {
	Current decimal.Decimal `json:"current"`
	Days30  decimal.Decimal `json:"days30"`
	Days60  decimal.Decimal `json:"days60"`
	Days90  decimal.Decimal `json:"days90"`
	Over90  decimal.Decimal `json:"over90"`
}

// TargetAssumptions are the KPI targets of the performance scorecard. Margin and ROE
// are percentages.
type TargetAssumptions struct {
	ProfitMargin decimal.Decimal `json:"profitMargin"`
	CurrentRatio decimal.Decimal `json:"currentRatio"`
	ROE          decimal.Decimal `json:"roe"`
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultAssumptions returns the legacy placeholder figures.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Fallback: FallbackAssumptions{
			CashShareOfCurrentAssets:        d("0.2"),
			ReceivablesShareOfCurrentAssets: d("0.4"),
			InventoryShareOfCurrentAssets:   d("0.3"),
			PayablesShareOfCurrentLiabs:     d("0.6"),
		},
		CashFlow: CashFlowAssumptions{
			ReceivablesGrowth: d("0.10"),
			InventoryGrowth:   d("0.05"),
			PrepaidGrowth:     d("0.02"),
			PayablesGrowth:    d("0.08"),
			AccruedGrowth:     d("0.03"),
			CapexRate:         d("0.10"),
			DisposalRate:      d("0.02"),
			Investments:       decimal.Zero,
			NewLoanRate:       d("0.05"),
			RepaymentRate:     d("0.08"),
			DividendPayout:    d("0.20"),
			CapitalIncrease:   decimal.Zero,
		},
		Zakat: ZakatAssumptions{Rate: d("0.025")},
		Forecast: ForecastAssumptions{
			RevenueGrowth:    d("0.10"),
			COGSGrowthFactor: d("0.8"),
			OpexGrowth:       d("0.05"),
		},
		Trend: TrendAssumptions{
			RevenueTwoYearsAgo:   d("0.7"),
			RevenueLastYear:      d("0.85"),
			ExpensesTwoYearsAgo:  d("0.75"),
			ExpensesLastYear:     d("0.88"),
			NetIncomeTwoYearsAgo: d("0.6"),
			NetIncomeLastYear:    d("0.8"),
			AssetsTwoYearsAgo:    d("0.75"),
			AssetsLastYear:       d("0.88"),
			EquityTwoYearsAgo:    d("0.8"),
			EquityLastYear:       d("0.9"),
		},
		Valuation: ValuationAssumptions{
			FreeCashFlowFactor: d("0.8"),
			GrowthRate:         d("0.05"),
			DiscountRate:       d("0.12"),
			EBITDAMultiple:     d("8"),
			DCFWeight:          d("0.4"),
			MultiplesWeight:    d("0.4"),
			NAVWeight:          d("0.2"),
			CostOfDebt:         d("0.08"),
			CostOfEquity:       d("0.15"),
			EVAWACC:            d("0.12"),
			NOPATFactor:        d("1.1"),
		},
		Aging: AgingAssumptions{
			Current: d("0.6"),
			Days30:  d("0.2"),
			Days60:  d("0.1"),
			Days90:  d("0.07"),
			Over90:  d("0.03"),
		},
		Targets: TargetAssumptions{
			ProfitMargin: d("15"),
			CurrentRatio: d("2"),
			ROE:          d("20"),
		},
	}
}

// fields exposes every assumption under a dotted key, e.g. "cashFlow.receivablesGrowth".
func (a *Assumptions) fields() map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"fallback.cashShareOfCurrentAssets":          &a.Fallback.CashShareOfCurrentAssets,
		"fallback.receivablesShareOfCurrentAssets":   &a.Fallback.ReceivablesShareOfCurrentAssets,
		"fallback.inventoryShareOfCurrentAssets":     &a.Fallback.InventoryShareOfCurrentAssets,
		"fallback.payablesShareOfCurrentLiabilities": &a.Fallback.PayablesShareOfCurrentLiabs,

		"cashFlow.receivablesGrowth": &a.CashFlow.ReceivablesGrowth,
		"cashFlow.inventoryGrowth":   &a.CashFlow.InventoryGrowth,
		"cashFlow.prepaidGrowth":     &a.CashFlow.PrepaidGrowth,
		"cashFlow.payablesGrowth":    &a.CashFlow.PayablesGrowth,
		"cashFlow.accruedGrowth":     &a.CashFlow.AccruedGrowth,
		"cashFlow.capexRate":         &a.CashFlow.CapexRate,
		"cashFlow.disposalRate":      &a.CashFlow.DisposalRate,
		"cashFlow.investments":       &a.CashFlow.Investments,
		"cashFlow.newLoanRate":       &a.CashFlow.NewLoanRate,
		"cashFlow.repaymentRate":     &a.CashFlow.RepaymentRate,
		"cashFlow.dividendPayout":    &a.CashFlow.DividendPayout,
		"cashFlow.capitalIncrease":   &a.CashFlow.CapitalIncrease,

		"zakat.rate": &a.Zakat.Rate,

		"forecast.revenueGrowth":    &a.Forecast.RevenueGrowth,
		"forecast.cogsGrowthFactor": &a.Forecast.COGSGrowthFactor,
		"forecast.opexGrowth":       &a.Forecast.OpexGrowth,

		"trend.revenueTwoYearsAgo":   &a.Trend.RevenueTwoYearsAgo,
		"trend.revenueLastYear":      &a.Trend.RevenueLastYear,
		"trend.expensesTwoYearsAgo":  &a.Trend.ExpensesTwoYearsAgo,
		"trend.expensesLastYear":     &a.Trend.ExpensesLastYear,
		"trend.netIncomeTwoYearsAgo": &a.Trend.NetIncomeTwoYearsAgo,
		"trend.netIncomeLastYear":    &a.Trend.NetIncomeLastYear,
		"trend.assetsTwoYearsAgo":    &a.Trend.AssetsTwoYearsAgo,
		"trend.assetsLastYear":       &a.Trend.AssetsLastYear,
		"trend.equityTwoYearsAgo":    &a.Trend.EquityTwoYearsAgo,
		"trend.equityLastYear":       &a.Trend.EquityLastYear,

		"valuation.freeCashFlowFactor": &a.Valuation.FreeCashFlowFactor,
		"valuation.growthRate":         &a.Valuation.GrowthRate,
		"valuation.discountRate":       &a.Valuation.DiscountRate,
		"valuation.ebitdaMultiple":     &a.Valuation.EBITDAMultiple,
		"valuation.dcfWeight":          &a.Valuation.DCFWeight,
		"valuation.multiplesWeight":    &a.Valuation.MultiplesWeight,
		"valuation.navWeight":          &a.Valuation.NAVWeight,
		"valuation.costOfDebt":         &a.Valuation.CostOfDebt,
		"valuation.costOfEquity":       &a.Valuation.CostOfEquity,
		"valuation.evaWacc":            &a.Valuation.EVAWACC,
		"valuation.nopatFactor":        &a.Valuation.NOPATFactor,

		"aging.current": &a.Aging.Current,
		"aging.days30":  &a.Aging.Days30,
		"aging.days60":  &a.Aging.Days60,
		"aging.days90":  &a.Aging.Days90,
		"aging.over90":  &a.Aging.Over90,

		"targets.profitMargin": &a.Targets.ProfitMargin,
		"targets.currentRatio": &a.Targets.CurrentRatio,
		"targets.roe":          &a.Targets.ROE,
	}
}

// AssumptionKeys lists every overridable key in sorted order.
func AssumptionKeys() []string {
	a := DefaultAssumptions()
	keys := make([]string, 0, len(a.fields()))
	for k := range a.fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply returns a copy of a with the given overrides. Unknown keys are reported and
// nothing is applied.
func (a Assumptions) Apply(overrides map[string]decimal.Decimal) (Assumptions, error) {
	out := a
	fields := out.fields()
	for k := range overrides {
		if _, ok := fields[k]; !ok {
			return a, fmt.Errorf("unknown assumption %q", k)
		}
	}
	for k, v := range overrides {
		*fields[k] = v
	}
	return out, nil
}

// Get returns the value stored under a dotted key.
func (a Assumptions) Get(key string) (decimal.Decimal, bool) {
	p, ok := a.fields()[key]
	if !ok {
		return decimal.Zero, false
	}
	return *p, true
}
