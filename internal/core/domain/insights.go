package domain

import "github.com/shopspring/decimal"

// Severity ranks alerts and recommendations.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Alert is a threshold breach worth immediate attention. Value is the measured figure
// and Threshold the limit it crossed. Estimated is set when Value rests on a figure the
// fallback policy filled in.
type Alert struct {
	Code      string          `json:"code"`
	Severity  Severity        `json:"severity"`
	Title     string          `json:"title"`
	Action    string          `json:"action"`
	Value     decimal.Decimal `json:"value"`
	Threshold decimal.Decimal `json:"threshold"`
	Estimated bool            `json:"estimated"`
}

// Action is one suggested step. Figure carries the computed amount or percentage the
// step refers to, when there is one.
type Action struct {
	Text   string           `json:"text"`
	Figure *decimal.Decimal `json:"figure,omitempty"`
}

// Recommendation groups the actions suggested for one weak indicator. Lower Priority
// comes first.
type Recommendation struct {
	Code      string          `json:"code"`
	Severity  Severity        `json:"severity"`
	Priority  int             `json:"priority"`
	Title     string          `json:"title"`
	Value     decimal.Decimal `json:"value"`
	Benchmark decimal.Decimal `json:"benchmark"`
	Actions   []Action        `json:"actions"`
}

// KPI compares one indicator with its target. Progress is capped at 100.
type KPI struct {
	Name     string          `json:"name"`
	Actual   decimal.Decimal `json:"actual"`
	Target   decimal.Decimal `json:"target"`
	Variance decimal.Decimal `json:"variance"`
	Progress decimal.Decimal `json:"progress"`
	Met      bool            `json:"met"`
}

// Performance is the KPI scorecard.
type Performance struct {
	KPIs []KPI `json:"kpis"`
}

// Strategy is a structural move priced by multipliers on the current income statement.
// A negative Investment is cash released by the move.
type Strategy struct {
	Name          string          `json:"name"`
	Investment    decimal.Decimal `json:"investment"`
	RevenueFactor decimal.Decimal `json:"revenueFactor"`
	COGSFactor    decimal.Decimal `json:"cogsFactor"`
	ExpenseFactor decimal.Decimal `json:"expenseFactor"`
	Risk          RiskLevel       `json:"risk"`
	Timeline      string          `json:"timeline"`
}

// StrategyResult is the outcome of one strategy against current net income.
type StrategyResult struct {
	Strategy        Strategy        `json:"strategy"`
	ExpectedRevenue decimal.Decimal `json:"expectedRevenue"`
	ExpectedCosts   decimal.Decimal `json:"expectedCosts"`
	ExpectedProfit  decimal.Decimal `json:"expectedProfit"`
	ProfitChange    decimal.Decimal `json:"profitChange"`
	ChangePercent   decimal.Decimal `json:"changePercent"`
	ROI             decimal.Decimal `json:"roi"`
	Improves        bool            `json:"improves"`
}
