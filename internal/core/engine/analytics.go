package engine

import (
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	daysInYear = decimal.NewFromInt(365)
)

func pct(v decimal.Decimal) decimal.Decimal { return v.Div(decimal.NewFromInt(100)) }

// BuildForecast projects next year's income statement from t.
func BuildForecast(t domain.Totals, a domain.Assumptions, year int) domain.Forecast {
	f := a.Forecast
	out := domain.Forecast{
		Year:              year,
		Revenue:           t.Revenue.Mul(one.Add(f.RevenueGrowth)),
		COGS:              t.COGS.Mul(one.Add(f.RevenueGrowth.Mul(f.COGSGrowthFactor))),
		OperatingExpenses: t.OperatingExpenses.Mul(one.Add(f.OpexGrowth)),
		RevenueGrowth:     f.RevenueGrowth.Mul(decimal.NewFromInt(100)),
	}
	out.GrossProfit = out.Revenue.Sub(out.COGS)
	out.NetIncome = out.GrossProfit.Sub(out.OperatingExpenses)
	return out
}

// PredefinedScenarios are the stress cases offered out of the box. Changes are in percent.
func PredefinedScenarios() []domain.Scenario {
	return []domain.Scenario{
		{Name: "ارتفاع أسعار الوقود 20%", RevenueChange: decimal.Zero, CostChange: decimal.NewFromInt(20), ExpenseChange: decimal.NewFromInt(15)},
		{Name: "انخفاض المبيعات 10%", RevenueChange: decimal.NewFromInt(-10), CostChange: decimal.NewFromInt(-8), ExpenseChange: decimal.Zero},
		{Name: "زيادة الأسعار 15%", RevenueChange: decimal.NewFromInt(15), CostChange: decimal.Zero, ExpenseChange: decimal.Zero},
		{Name: "خفض التكاليف 10%", RevenueChange: decimal.Zero, CostChange: decimal.NewFromInt(-10), ExpenseChange: decimal.NewFromInt(-5)},
	}
}

// RunScenario applies percentage changes to revenue, cost of sales and operating
// expenses and reports the effect on net income.
func RunScenario(t domain.Totals, s domain.Scenario) domain.ScenarioResult {
	res := domain.ScenarioResult{
		Scenario: s,
		Revenue:  t.Revenue.Mul(one.Add(pct(s.RevenueChange))),
		COGS:     t.COGS.Mul(one.Add(pct(s.CostChange))),
		Expenses: t.OperatingExpenses.Mul(one.Add(pct(s.ExpenseChange))),
	}
	res.NetIncome = res.Revenue.Sub(res.COGS).Sub(res.Expenses)
	res.Impact = res.NetIncome.Sub(t.NetIncome)
	res.ImpactPercent = accounting.Percent(res.Impact, t.NetIncome)
	return res
}

// RunScenarios evaluates every scenario in order.
func RunScenarios(t domain.Totals, scenarios []domain.Scenario) []domain.ScenarioResult {
	out := make([]domain.ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, RunScenario(t, s))
	}
	return out
}

var gradeText = map[domain.Grade][2]string{
	domain.GradeA: {"ممتاز - شركة قوية ماليا", "الشركة مؤهلة للحصول على تمويل بشروط تفضيلية. يوصى بالاستثمار."},
	domain.GradeB: {"جيد - وضع مالي مستقر", "الشركة مؤهلة للحصول على تمويل بشروط عادية. استثمار آمن نسبياً."},
	domain.GradeC: {"مقبول - يحتاج تحسين", "الشركة تحتاج تحسينات قبل الحصول على تمويل كبير. استثمار متوسط المخاطر."},
	domain.GradeD: {"ضعيف - يحتاج إجراءات عاجلة", "الشركة تواجه تحديات مالية. لا يوصى بالاستثمار حالياً."},
}

// ScoreCompany starts at 100 and deducts points for weak ratios.
func ScoreCompany(r domain.Ratios) domain.CompanyScore {
	score := 100
	var deductions []string
	deduct := func(points int, reason string) {
		score -= points
		deductions = append(deductions, reason)
	}

	switch {
	case r.CurrentRatio.LessThan(decimal.NewFromInt(1)):
		deduct(30, "current ratio below 1")
	case r.CurrentRatio.LessThan(decimal.RequireFromString("1.5")):
		deduct(15, "current ratio below 1.5")
	}
	switch {
	case r.DebtRatio.GreaterThan(decimal.RequireFromString("0.7")):
		deduct(25, "debt ratio above 0.7")
	case r.DebtRatio.GreaterThan(decimal.RequireFromString("0.5")):
		deduct(10, "debt ratio above 0.5")
	}
	switch {
	case r.ProfitMargin.IsNegative():
		deduct(30, "negative profit margin")
	case r.ProfitMargin.LessThan(decimal.NewFromInt(5)):
		deduct(15, "profit margin below 5%")
	}
	if r.ROA.LessThan(decimal.NewFromInt(5)) {
		deduct(10, "return on assets below 5%")
	}
	if r.ROE.LessThan(decimal.NewFromInt(10)) {
		deduct(10, "return on equity below 10%")
	}

	var g domain.Grade
	switch {
	case score >= 85:
		g = domain.GradeA
	case score >= 70:
		g = domain.GradeB
	case score >= 50:
		g = domain.GradeC
	default:
		g = domain.GradeD
	}
	if deductions == nil {
		deductions = []string{}
	}
	return domain.CompanyScore{
		Score:          score,
		Grade:          g,
		Description:    gradeText[g][0],
		Recommendation: gradeText[g][1],
		Deductions:     deductions,
	}
}

// AssessRisk rates liquidity, leverage and profitability. A company without current
// liabilities carries no liquidity risk.
func AssessRisk(t domain.Totals) domain.RiskAssessment {
	level := func(v, high, medium decimal.Decimal, lowerIsWorse bool) domain.RiskLevel {
		if lowerIsWorse {
			switch {
			case v.LessThan(high):
				return domain.RiskHigh
			case v.LessThan(medium):
				return domain.RiskMedium
			}
			return domain.RiskLow
		}
		switch {
		case v.GreaterThan(high):
			return domain.RiskHigh
		case v.GreaterThan(medium):
			return domain.RiskMedium
		}
		return domain.RiskLow
	}

	liquidity := domain.RiskLow
	if !t.CurrentLiabilities.IsZero() {
		liquidity = level(t.CurrentAssets.Div(t.CurrentLiabilities), one, decimal.RequireFromString("1.5"), true)
	}

	return domain.RiskAssessment{
		Liquidity: liquidity,
		Leverage: level(accounting.SafeDiv(t.Liabilities, t.Assets),
			decimal.RequireFromString("0.7"), decimal.RequireFromString("0.5"), false),
		Profitability: level(accounting.SafeDiv(t.NetIncome, t.Revenue),
			decimal.RequireFromString("0.05"), decimal.RequireFromString("0.1"), true),
	}
}

// WACC weights the cost of debt and equity by liabilities and equity.
func WACC(t domain.Totals, v domain.ValuationAssumptions) decimal.Decimal {
	debtWeight := accounting.SafeDiv(t.Liabilities, t.Liabilities.Add(t.Equity))
	equityWeight := one.Sub(debtWeight)
	return v.CostOfDebt.Mul(debtWeight).Add(v.CostOfEquity.Mul(equityWeight))
}

// Valuate blends DCF, EBITDA multiples and net asset value.
func Valuate(t domain.Totals, a domain.Assumptions) domain.Valuation {
	v := a.Valuation
	fcf := t.NetIncome.Mul(v.FreeCashFlowFactor)
	dcf := accounting.SafeDiv(fcf, v.DiscountRate.Sub(v.GrowthRate))
	ebitda := accounting.Sum(t.GrossProfit.Sub(t.OperatingExpenses), t.Depreciation, t.Amortization)
	multiples := ebitda.Mul(v.EBITDAMultiple)
	nav := t.Assets.Sub(t.Liabilities)

	return domain.Valuation{
		FreeCashFlow: fcf,
		DCF:          dcf,
		EBITDA:       ebitda,
		Multiples:    multiples,
		NAV:          nav,
		Recommended:  accounting.Sum(dcf.Mul(v.DCFWeight), multiples.Mul(v.MultiplesWeight), nav.Mul(v.NAVWeight)),
		WACC:         WACC(t, v),
	}
}

// EconomicValueAdded compares NOPAT with the charge on capital employed.
func EconomicValueAdded(t domain.Totals, a domain.Assumptions) domain.EVA {
	capital := t.Equity.Add(t.LongTermLiabilities)
	nopat := t.NetIncome.Mul(a.Valuation.NOPATFactor)
	charge := capital.Mul(a.Valuation.EVAWACC)
	value := nopat.Sub(charge)
	return domain.EVA{
		CapitalEmployed: capital,
		NOPAT:           nopat,
		WACC:            a.Valuation.EVAWACC,
		CapitalCharge:   charge,
		Value:           value,
		CreatesValue:    value.IsPositive(),
	}
}

// CashConversionCycle is days inventory plus days receivables minus days payables.
func CashConversionCycle(t domain.Totals) domain.CashCycle {
	dio := accounting.SafeDiv(t.Inventory, t.COGS).Mul(daysInYear)
	dso := accounting.SafeDiv(t.Receivables, t.Revenue).Mul(daysInYear)
	dpo := accounting.SafeDiv(t.Payables, t.COGS).Mul(daysInYear)
	return domain.CashCycle{
		DaysInventory:   dio,
		DaysReceivables: dso,
		DaysPayables:    dpo,
		Cycle:           dio.Add(dso).Sub(dpo),
	}
}

// AgeReceivables spreads receivables over the configured age bands.
func AgeReceivables(t domain.Totals, a domain.AgingAssumptions) domain.ReceivablesAging {
	r := t.Receivables
	out := domain.ReceivablesAging{
		Current: r.Mul(a.Current),
		Days30:  r.Mul(a.Days30),
		Days60:  r.Mul(a.Days60),
		Days90:  r.Mul(a.Days90),
		Over90:  r.Mul(a.Over90),
	}
	out.Total = accounting.Sum(out.Current, out.Days30, out.Days60, out.Days90, out.Over90)
	return out
}

// AnalyzeTrends fabricates two prior years from the trend multipliers and reports
// growth of the current year over the last one.
func AnalyzeTrends(t domain.Totals, a domain.TrendAssumptions, year int) domain.TrendAnalysis {
	years := []domain.TrendYear{
		{
			Year:       year - 2,
			Revenue:    t.Revenue.Mul(a.RevenueTwoYearsAgo),
			Expenses:   t.Expenses.Mul(a.ExpensesTwoYearsAgo),
			NetIncome:  t.NetIncome.Mul(a.NetIncomeTwoYearsAgo),
			Assets:     t.Assets.Mul(a.AssetsTwoYearsAgo),
			Equity:     t.Equity.Mul(a.EquityTwoYearsAgo),
			Fabricated: true,
		},
		{
			Year:       year - 1,
			Revenue:    t.Revenue.Mul(a.RevenueLastYear),
			Expenses:   t.Expenses.Mul(a.ExpensesLastYear),
			NetIncome:  t.NetIncome.Mul(a.NetIncomeLastYear),
			Assets:     t.Assets.Mul(a.AssetsLastYear),
			Equity:     t.Equity.Mul(a.EquityLastYear),
			Fabricated: true,
		},
		{
			Year:      year,
			Revenue:   t.Revenue,
			Expenses:  t.Expenses,
			NetIncome: t.NetIncome,
			Assets:    t.Assets,
			Equity:    t.Equity,
		},
	}

	growth := func(cur, prev decimal.Decimal) decimal.Decimal {
		return accounting.Percent(cur.Sub(prev), prev)
	}
	last, cur := years[1], years[2]
	return domain.TrendAnalysis{
		Years:           years,
		RevenueGrowth:   growth(cur.Revenue, last.Revenue),
		ExpenseGrowth:   growth(cur.Expenses, last.Expenses),
		NetIncomeGrowth: growth(cur.NetIncome, last.NetIncome),
	}
}

// CommonSizeStatements expresses the balance sheet against total assets and the income
// statement against revenue. Equity includes the period's net income.
func CommonSizeStatements(t domain.Totals) domain.CommonSize {
	line := func(label string, amount, base decimal.Decimal) domain.CommonSizeLine {
		return domain.CommonSizeLine{Label: label, Amount: amount, Percent: accounting.Percent(amount, base)}
	}
	return domain.CommonSize{
		BalanceSheet: []domain.CommonSizeLine{
			line("currentAssets", t.CurrentAssets, t.Assets),
			line("fixedAssets", t.FixedAssets, t.Assets),
			line("assets", t.Assets, t.Assets),
			line("currentLiabilities", t.CurrentLiabilities, t.Assets),
			line("longTermLiabilities", t.LongTermLiabilities, t.Assets),
			line("equity", t.Equity.Add(t.NetIncome), t.Assets),
		},
		IncomeStatement: []domain.CommonSizeLine{
			line("revenue", t.Revenue, t.Revenue),
			line("cogs", t.COGS, t.Revenue),
			line("grossProfit", t.GrossProfit, t.Revenue),
			line("operatingExpenses", t.OperatingExpenses, t.Revenue),
			line("netIncome", t.NetIncome, t.Revenue),
		},
	}
}
