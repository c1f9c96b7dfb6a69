package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/core/engine"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/utils/accounting"
)

// DefaultMaxRows caps the number of rows a single report request may carry.
const DefaultMaxRows = 50000

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	engine      *engine.Engine
	assumptions domain.Assumptions
	maxRows     int
	now         func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithEngine sets the classification engine, e.g. one built from operator taxonomies.
func WithEngine(e *engine.Engine) ReportingServiceOption {
	return func(s *reportingService) {
		s.engine = e
	}
}

// WithAssumptions replaces the default assumptions that request overrides apply on top of.
func WithAssumptions(a domain.Assumptions) ReportingServiceOption {
	return func(s *reportingService) {
		s.assumptions = a
	}
}

// WithMaxRows limits the rows accepted per request. Zero or less keeps the default.
func WithMaxRows(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// WithClock sets the clock used to pick the default report year.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		assumptions: domain.DefaultAssumptions(),
		maxRows:     DefaultMaxRows,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}
	if svc.engine == nil {
		svc.engine = engine.New(nil)
	}

	return svc
}

// prepare validates the request and resolves the effective assumptions.
func (s *reportingService) prepare(ctx context.Context, req domain.ReportRequest) (domain.Assumptions, error) {
	if len(req.Rows) > s.maxRows {
		err := fmt.Errorf("%w: %d rows exceeds the limit of %d", apperrors.ErrValidation, len(req.Rows), s.maxRows)
		s.LogError(ctx, err, "Rejected oversized trial balance", slog.Int("row_count", len(req.Rows)))
		return domain.Assumptions{}, err
	}

	a, err := s.assumptions.Apply(req.Overrides)
	if err != nil {
		s.LogError(ctx, err, "Invalid assumption overrides")
		return domain.Assumptions{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return a, nil
}

func (s *reportingService) year(req domain.ReportRequest) int {
	if req.Year != 0 {
		return req.Year
	}
	return s.now().Year()
}

// aggregate runs the totals aggregator and logs classification coverage.
func (s *reportingService) aggregate(ctx context.Context, rows []domain.LedgerRow, a domain.Assumptions) domain.Totals {
	totals := s.engine.Aggregate(rows, a)

	if totals.Unclassified.Count > 0 {
		s.LogInfo(ctx, "Rows left unclassified",
			slog.Int("row_count", totals.RowCount),
			slog.Int("unclassified_count", totals.Unclassified.Count),
			slog.String("unclassified_amount", totals.Unclassified.Amount.String()))
	}
	if !accounting.IsBalanced(totals.TotalDebit, totals.TotalCredit) {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("total_debit", totals.TotalDebit.String()),
			slog.String("total_credit", totals.TotalCredit.String()))
	}
	if len(totals.Estimated) > 0 {
		s.LogDebug(ctx, "Totals filled by fallback estimates", slog.Any("fields", totals.Estimated))
	}
	return totals
}

// Totals aggregates the rows into financial totals and ratios
func (s *reportingService) Totals(ctx context.Context, req domain.ReportRequest) (*domain.Totals, error) {
	a, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	totals := s.aggregate(ctx, req.Rows, a)
	return &totals, nil
}

// Zakat computes the asset-based zakat and the income-based estimate
func (s *reportingService) Zakat(ctx context.Context, req domain.ReportRequest) (*domain.ZakatResult, error) {
	a, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	result := s.engine.ComputeZakat(req.Rows, a)
	s.LogInfo(ctx, "Zakat computed",
		slog.String("base", result.Actual.ZakatBase.String()),
		slog.String("amount", result.Actual.ZakatAmount.String()))
	return &result, nil
}

// CashFlow builds an indirect-method cash flow statement
func (s *reportingService) CashFlow(ctx context.Context, req domain.ReportRequest) (*domain.CashFlowStatement, error) {
	a, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	totals := s.aggregate(ctx, req.Rows, a)
	statement := s.engine.BuildCashFlow(totals, req.Rows, a)
	return &statement, nil
}

// Generate produces the report named by kind
func (s *reportingService) Generate(ctx context.Context, kind domain.ReportKind, req domain.ReportRequest) (any, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown report %q", apperrors.ErrValidation, kind)
	}

	switch kind {
	case domain.ReportTotals:
		return s.Totals(ctx, req)
	case domain.ReportZakat:
		return s.Zakat(ctx, req)
	case domain.ReportCashFlow:
		return s.CashFlow(ctx, req)
	}

	a, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	totals := s.aggregate(ctx, req.Rows, a)

	var report any
	switch kind {
	case domain.ReportForecast:
		report = engine.BuildForecast(totals, a, s.year(req)+1)
	case domain.ReportScenarios:
		scenarios := req.Scenarios
		if len(scenarios) == 0 {
			scenarios = engine.PredefinedScenarios()
		}
		report = engine.RunScenarios(totals, scenarios)
	case domain.ReportScore:
		report = domain.CompanyHealth{
			Score: engine.ScoreCompany(totals.Ratios),
			Risk:  engine.AssessRisk(totals),
		}
	case domain.ReportValuation:
		report = engine.Valuate(totals, a)
	case domain.ReportEVA:
		report = engine.EconomicValueAdded(totals, a)
	case domain.ReportCashCycle:
		report = engine.CashConversionCycle(totals)
	case domain.ReportAging:
		report = engine.AgeReceivables(totals, a.Aging)
	case domain.ReportTrends:
		report = engine.AnalyzeTrends(totals, a.Trend, s.year(req))
	case domain.ReportCommonSize:
		report = engine.CommonSizeStatements(totals)
	case domain.ReportAlerts:
		alerts := engine.RaiseAlerts(totals)
		if len(alerts) > 0 {
			s.LogInfo(ctx, "Financial alerts raised", slog.Int("alert_count", len(alerts)))
		}
		report = alerts
	case domain.ReportRecommendations:
		report = engine.Recommend(totals)
	case domain.ReportPerformance:
		report = engine.MeasurePerformance(totals, a.Targets)
	case domain.ReportStrategies:
		report = engine.SimulateStrategies(totals, engine.PredefinedStrategies())
	}

	s.LogDebug(ctx, "Report generated", slog.String("report", string(kind)), slog.Int("row_count", len(req.Rows)))
	return report, nil
}
