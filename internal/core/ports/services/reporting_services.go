package services

import (
	"context"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
)

// ReportingService defines operations for generating reports from a trial balance.
// Every method fails only on invalid input (unknown assumption keys, too many rows);
// data-quality issues in the rows never produce an error.
type ReportingService interface {
	// Totals aggregates the rows into financial totals and ratios
	Totals(ctx context.Context, req domain.ReportRequest) (*domain.Totals, error)

	// Zakat computes the asset-based zakat and the income-based estimate
	Zakat(ctx context.Context, req domain.ReportRequest) (*domain.ZakatResult, error)

	// CashFlow builds an indirect-method cash flow statement
	CashFlow(ctx context.Context, req domain.ReportRequest) (*domain.CashFlowStatement, error)

	// Generate produces the report named by kind
	Generate(ctx context.Context, kind domain.ReportKind, req domain.ReportRequest) (any, error)
}
