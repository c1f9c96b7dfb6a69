package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/core/engine"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type ReportingServiceTestSuite struct {
	suite.Suite
	service portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.service = services.NewReportingService(
		services.WithEngine(engine.New(nil)),
		services.WithMaxRows(10),
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func incomeRows() []domain.LedgerRow {
	return []domain.LedgerRow{
		{Category: "إيرادات", Debit: dec("100000")},
		{Category: "تكلفة البضاعة المباعة", Debit: dec("60000")},
		{Category: "مصروفات تشغيلية", Debit: dec("30000")},
	}
}

func zakatRows() []domain.LedgerRow {
	return []domain.LedgerRow{
		{AccountName: "Cash", Debit: dec("50000")},
		{AccountName: "Bank", Debit: dec("100000")},
		{AccountName: "Customers", Debit: dec("30000")},
		{AccountName: "Inventory", Debit: dec("20000")},
		{AccountName: "Suppliers", Credit: dec("80000")},
	}
}

func (suite *ReportingServiceTestSuite) assertDec(want string, got decimal.Decimal, field string) {
	suite.True(dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func (suite *ReportingServiceTestSuite) TestTotals() {
	totals, err := suite.service.Totals(context.Background(), domain.ReportRequest{Rows: incomeRows()})
	suite.Require().NoError(err)
	suite.assertDec("100000", totals.Revenue, "revenue")
	suite.assertDec("10000", totals.NetIncome, "netIncome")
	suite.assertDec("10", totals.Ratios.ProfitMargin, "profitMargin")
}

func (suite *ReportingServiceTestSuite) TestTotals_LogsUnclassifiedAndStillSucceeds() {
	rows := append(incomeRows(), domain.LedgerRow{AccountName: "Suspense", Debit: dec("5")})
	totals, err := suite.service.Totals(context.Background(), domain.ReportRequest{Rows: rows})
	suite.Require().NoError(err)
	suite.Equal(1, totals.Unclassified.Count)
	suite.assertDec("10000", totals.NetIncome, "netIncome")
}

func (suite *ReportingServiceTestSuite) TestZakat_WithOverride() {
	ctx := context.Background()

	result, err := suite.service.Zakat(ctx, domain.ReportRequest{Rows: zakatRows()})
	suite.Require().NoError(err)
	suite.assertDec("120000", result.Actual.ZakatBase, "base")
	suite.assertDec("3000", result.Actual.ZakatAmount, "amount")

	result, err = suite.service.Zakat(ctx, domain.ReportRequest{
		Rows:      zakatRows(),
		Overrides: map[string]decimal.Decimal{"zakat.rate": dec("0.02577")},
	})
	suite.Require().NoError(err)
	suite.assertDec("3092.4", result.Actual.ZakatAmount, "amount at lunar-adjusted rate")
}

func (suite *ReportingServiceTestSuite) TestCashFlow() {
	statement, err := suite.service.CashFlow(context.Background(), domain.ReportRequest{Rows: zakatRows()})
	suite.Require().NoError(err)
	suite.assertDec("150000", statement.CashBeginning, "cash beginning")
	suite.True(statement.CashEnding.Equal(statement.CashBeginning.Add(statement.NetChange)))
}

func (suite *ReportingServiceTestSuite) TestValidationErrors() {
	ctx := context.Background()

	_, err := suite.service.Totals(ctx, domain.ReportRequest{
		Rows:      incomeRows(),
		Overrides: map[string]decimal.Decimal{"zakat.nisab": dec("1")},
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	tooMany := make([]domain.LedgerRow, 11)
	_, err = suite.service.Zakat(ctx, domain.ReportRequest{Rows: tooMany})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Generate(ctx, domain.ReportKind("balance-sheet"), domain.ReportRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestGenerate_EveryKind() {
	ctx := context.Background()
	req := domain.ReportRequest{Rows: incomeRows()}

	for _, kind := range domain.ReportKinds {
		suite.Run(string(kind), func() {
			report, err := suite.service.Generate(ctx, kind, req)
			suite.Require().NoError(err)
			suite.NotNil(report)
		})
	}
}

func (suite *ReportingServiceTestSuite) TestGenerate_Types() {
	ctx := context.Background()
	req := domain.ReportRequest{Rows: incomeRows()}

	report, err := suite.service.Generate(ctx, domain.ReportForecast, req)
	suite.Require().NoError(err)
	forecast, ok := report.(domain.Forecast)
	suite.Require().True(ok)
	suite.Equal(2027, forecast.Year, "defaults to the year after the clock's")
	suite.assertDec("13700", forecast.NetIncome, "forecast netIncome")

	req.Year = 2030
	report, err = suite.service.Generate(ctx, domain.ReportTrends, req)
	suite.Require().NoError(err)
	trends, ok := report.(domain.TrendAnalysis)
	suite.Require().True(ok)
	suite.Equal(2030, trends.Years[2].Year)

	report, err = suite.service.Generate(ctx, domain.ReportScore, req)
	suite.Require().NoError(err)
	_, ok = report.(domain.CompanyHealth)
	suite.True(ok)

	report, err = suite.service.Generate(ctx, domain.ReportTotals, req)
	suite.Require().NoError(err)
	_, ok = report.(*domain.Totals)
	suite.True(ok)
}

func (suite *ReportingServiceTestSuite) TestGenerate_Insights() {
	ctx := context.Background()
	req := domain.ReportRequest{Rows: incomeRows()}

	report, err := suite.service.Generate(ctx, domain.ReportAlerts, req)
	suite.Require().NoError(err)
	alerts, ok := report.([]domain.Alert)
	suite.Require().True(ok)
	suite.Require().NotEmpty(alerts)
	suite.Equal("cash-coverage", alerts[0].Code)

	report, err = suite.service.Generate(ctx, domain.ReportRecommendations, req)
	suite.Require().NoError(err)
	_, ok = report.([]domain.Recommendation)
	suite.True(ok)

	req.Overrides = map[string]decimal.Decimal{"targets.profitMargin": dec("8")}
	report, err = suite.service.Generate(ctx, domain.ReportPerformance, req)
	suite.Require().NoError(err)
	perf, ok := report.(domain.Performance)
	suite.Require().True(ok)
	suite.assertDec("8", perf.KPIs[0].Target, "margin target")
	suite.True(perf.KPIs[0].Met)

	report, err = suite.service.Generate(ctx, domain.ReportStrategies, domain.ReportRequest{Rows: incomeRows()})
	suite.Require().NoError(err)
	suite.Len(report.([]domain.StrategyResult), len(engine.PredefinedStrategies()))
}

func (suite *ReportingServiceTestSuite) TestGenerate_Scenarios() {
	ctx := context.Background()

	report, err := suite.service.Generate(ctx, domain.ReportScenarios, domain.ReportRequest{Rows: incomeRows()})
	suite.Require().NoError(err)
	suite.Len(report.([]domain.ScenarioResult), len(engine.PredefinedScenarios()))

	custom := domain.Scenario{Name: "price rise", RevenueChange: dec("15")}
	report, err = suite.service.Generate(ctx, domain.ReportScenarios, domain.ReportRequest{
		Rows:      incomeRows(),
		Scenarios: []domain.Scenario{custom},
	})
	suite.Require().NoError(err)
	results := report.([]domain.ScenarioResult)
	suite.Require().Len(results, 1)
	suite.assertDec("25000", results[0].NetIncome, "netIncome")
	suite.assertDec("150", results[0].ImpactPercent, "impact %")
}

func (suite *ReportingServiceTestSuite) TestAssumptionsOption() {
	a := domain.DefaultAssumptions()
	a.Zakat.Rate = dec("0.05")
	svc := services.NewReportingService(services.WithAssumptions(a))

	result, err := svc.Zakat(context.Background(), domain.ReportRequest{Rows: zakatRows()})
	suite.Require().NoError(err)
	suite.assertDec("6000", result.Actual.ZakatAmount, "amount")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
