package dto

import (
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRequest carries a trial balance and optional assumption overrides.
type ReportRequest struct {
	Rows []domain.LedgerRow `json:"rows" binding:"required"`
	// Assumptions overrides named assumptions, e.g. {"zakat.rate": "0.02577"}.
	Assumptions map[string]decimal.Decimal `json:"assumptions" binding:"omitempty,dive,keys,assumptionkey,endkeys"`
	Year        int                        `json:"year" binding:"omitempty,min=1900,max=2200"`
	Scenarios   []ScenarioRequest          `json:"scenarios" binding:"omitempty,max=20,dive"`
}

// ScenarioRequest describes a custom what-if scenario. Changes are percentages.
type ScenarioRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	RevenueChange decimal.Decimal `json:"revenueChange"`
	CostChange    decimal.Decimal `json:"costChange"`
	ExpenseChange decimal.Decimal `json:"expenseChange"`
}

// ToDomain converts the request into the service input.
func (r ReportRequest) ToDomain() domain.ReportRequest {
	out := domain.ReportRequest{
		Rows:      r.Rows,
		Overrides: r.Assumptions,
		Year:      r.Year,
	}
	for _, s := range r.Scenarios {
		out.Scenarios = append(out.Scenarios, domain.Scenario{
			Name:          s.Name,
			RevenueChange: s.RevenueChange,
			CostChange:    s.CostChange,
			ExpenseChange: s.ExpenseChange,
		})
	}
	return out
}

// ReportResponse wraps any generated report.
type ReportResponse struct {
	Report domain.ReportKind `json:"report"`
	Data   any               `json:"data"`
}

// AssumptionsResponse lists the effective default assumptions.
type AssumptionsResponse struct {
	Keys     []string           `json:"keys"`
	Defaults domain.Assumptions `json:"defaults"`
}
