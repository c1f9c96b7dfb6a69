package domain

import "github.com/shopspring/decimal"

// ReportKind names one of the reports the reporting service can produce.
type ReportKind string

const (
	ReportTotals     ReportKind = "totals"
	ReportZakat      ReportKind = "zakat"
	ReportCashFlow   ReportKind = "cash-flow"
	ReportForecast   ReportKind = "forecast"
	ReportScenarios  ReportKind = "scenarios"
	ReportScore      ReportKind = "score"
	ReportValuation  ReportKind = "valuation"
	ReportEVA        ReportKind = "eva"
	ReportCashCycle  ReportKind = "cash-cycle"
	ReportAging      ReportKind = "aging"
	ReportTrends     ReportKind = "trends"
	ReportCommonSize ReportKind = "common-size"

	ReportAlerts          ReportKind = "alerts"
	ReportRecommendations ReportKind = "recommendations"
	ReportPerformance     ReportKind = "performance"
	ReportStrategies      ReportKind = "strategies"
)

// ReportKinds lists every report in the order they are documented.
var ReportKinds = []ReportKind{
	ReportTotals, ReportZakat, ReportCashFlow, ReportForecast, ReportScenarios, ReportScore,
	ReportValuation, ReportEVA, ReportCashCycle, ReportAging, ReportTrends, ReportCommonSize,
	ReportAlerts, ReportRecommendations, ReportPerformance, ReportStrategies,
}

// IsValid reports whether k is a known report.
func (k ReportKind) IsValid() bool {
	for _, known := range ReportKinds {
		if known == k {
			return true
		}
	}
	return false
}

// ReportRequest is the input shared by every report.
type ReportRequest struct {
	Rows []LedgerRow
	// Overrides are dotted assumption keys, e.g. "zakat.rate".
	Overrides map[string]decimal.Decimal
	// Year anchors forecasts and trends; zero means the current year.
	Year int
	// Scenarios replaces the predefined what-if set when non-empty.
	Scenarios []Scenario
}

// CompanyHealth pairs the score card with the risk assessment.
type CompanyHealth struct {
	Score CompanyScore   `json:"score"`
	Risk  RiskAssessment `json:"risk"`
}
