package domain

import "github.com/shopspring/decimal"

// Forecast is the next-year projection built from current totals.
type Forecast struct {
	Year              int             `json:"year"`
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	NetIncome         decimal.Decimal `json:"netIncome"`
	RevenueGrowth     decimal.Decimal `json:"revenueGrowth"`
}

// Scenario describes percentage changes applied to revenue, cost of sales and
// operating expenses.
type Scenario struct {
	Name          string          `json:"name"`
	RevenueChange decimal.Decimal `json:"revenueChange"`
	CostChange    decimal.Decimal `json:"costChange"`
	ExpenseChange decimal.Decimal `json:"expenseChange"`
}

// ScenarioResult is the outcome of one scenario against the current totals.
type ScenarioResult struct {
	Scenario      Scenario        `json:"scenario"`
	Revenue       decimal.Decimal `json:"revenue"`
	COGS          decimal.Decimal `json:"cogs"`
	Expenses      decimal.Decimal `json:"expenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	Impact        decimal.Decimal `json:"impact"`
	ImpactPercent decimal.Decimal `json:"impactPercent"`
}

// Grade is the letter rating of the company score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// CompanyScore is a 0-100 health score with its deductions.
type CompanyScore struct {
	Score          int      `json:"score"`
	Grade          Grade    `json:"grade"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Deductions     []string `json:"deductions"`
}

// RiskLevel classifies a single risk dimension.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment groups the risk dimensions derived from totals.
type RiskAssessment struct {
	Liquidity     RiskLevel `json:"liquidity"`
	Leverage      RiskLevel `json:"leverage"`
	Profitability RiskLevel `json:"profitability"`
}

// Valuation combines three indicative methods into a weighted figure.
type Valuation struct {
	FreeCashFlow decimal.Decimal `json:"freeCashFlow"`
	DCF          decimal.Decimal `json:"dcf"`
	EBITDA       decimal.Decimal `json:"ebitda"`
	Multiples    decimal.Decimal `json:"multiples"`
	NAV          decimal.Decimal `json:"nav"`
	Recommended  decimal.Decimal `json:"recommended"`
	WACC         decimal.Decimal `json:"wacc"`
}

// EVA is the economic value added report.
type EVA struct {
	CapitalEmployed decimal.Decimal `json:"capitalEmployed"`
	NOPAT           decimal.Decimal `json:"nopat"`
	WACC            decimal.Decimal `json:"wacc"`
	CapitalCharge   decimal.Decimal `json:"capitalCharge"`
	Value           decimal.Decimal `json:"value"`
	CreatesValue    bool            `json:"createsValue"`
}

// CashCycle is the cash conversion cycle in days.
type CashCycle struct {
	DaysInventory   decimal.Decimal `json:"daysInventory"`
	DaysReceivables decimal.Decimal `json:"daysReceivables"`
	DaysPayables    decimal.Decimal `json:"daysPayables"`
	Cycle           decimal.Decimal `json:"cycle"`
}

// ReceivablesAging splits receivables across age bands.
type ReceivablesAging struct {
	Current decimal.Decimal `json:"current"`
	Days30  decimal.Decimal `json:"days30"`
	Days60  decimal.Decimal `json:"days60"`
	Days90  decimal.Decimal `json:"days90"`
	Over90  decimal.Decimal `json:"over90"`
	Total   decimal.Decimal `json:"total"`
}

// TrendYear is one year of the trend table.
type TrendYear struct {
	Year       int             `json:"year"`
	Revenue    decimal.Decimal `json:"revenue"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetIncome  decimal.Decimal `json:"netIncome"`
	Assets     decimal.Decimal `json:"assets"`
	Equity     decimal.Decimal `json:"equity"`
	Fabricated bool            `json:"fabricated"`
}

// TrendAnalysis holds three years and last-year-over-year growth percentages.
type TrendAnalysis struct {
	Years           []TrendYear     `json:"years"`
	RevenueGrowth   decimal.Decimal `json:"revenueGrowth"`
	ExpenseGrowth   decimal.Decimal `json:"expenseGrowth"`
	NetIncomeGrowth decimal.Decimal `json:"netIncomeGrowth"`
}

// CommonSizeLine is one line of a common-size statement.
type CommonSizeLine struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// CommonSize expresses balance-sheet lines against assets and income lines against revenue.
type CommonSize struct {
	BalanceSheet    []CommonSizeLine `json:"balanceSheet"`
	IncomeStatement []CommonSizeLine `json:"incomeStatement"`
}
