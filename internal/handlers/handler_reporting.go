package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/dto"
	"github.com/SscSPs/polaris_reporting/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	pipelineService  portssvc.PipelineReaderSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, ps portssvc.PipelineReaderSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		pipelineService:  ps,
	}
}

// registerReportingRoutes registers routes related to financial reports. Reports built
// from the stored trial balance sit behind auth like the rest of the pipeline.
func registerReportingRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, rs portssvc.ReportingService, ps portssvc.PipelineReaderSvc) {
	h := newReportingHandler(rs, ps)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("", h.listReports)
		reportingGroup.GET("/assumptions", h.getAssumptions)
		reportingGroup.POST("/:kind", h.generateReport)
		reportingGroup.GET("/:kind", auth, h.generateStoredReport)
	}
}

// listReports godoc
// @Summary List available reports
// @Tags reports
// @Produce json
// @Success 200 {array} string
// @Router /reports [get]
func (h *reportingHandler) listReports(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ReportKinds)
}

// getAssumptions godoc
// @Summary List assumption keys and their default values
// @Tags reports
// @Produce json
// @Success 200 {object} dto.AssumptionsResponse
// @Router /reports/assumptions [get]
func (h *reportingHandler) getAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AssumptionsResponse{
		Keys:     domain.AssumptionKeys(),
		Defaults: domain.DefaultAssumptions(),
	})
}

// generateReport godoc
// @Summary Generate a report from a posted trial balance
// @Description Classifies the rows and produces the named report (totals, zakat, cash-flow, forecast, scenarios, score, valuation, eva, cash-cycle, aging, trends, common-size, alerts, recommendations, performance, strategies).
// @Tags reports
// @Accept json
// @Produce json
// @Param kind path string true "Report name"
// @Param request body dto.ReportRequest true "Trial balance and assumption overrides"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/{kind} [post]
func (h *reportingHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.ReportKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown report %q", kind)})
		return
	}

	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid report request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("report", string(kind)), slog.Int("row_count", len(req.Rows)))
	logger.Info("Received request to generate report")

	report, err := h.reportingService.Generate(c.Request.Context(), kind, req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Report: kind, Data: report})
}

// generateStoredReport godoc
// @Summary Generate a report from the stored trial balance
// @Description Uses the trial-balance pipeline step. Query parameters with dotted names (e.g. zakat.rate=0.02577) override assumptions; year anchors forecasts and trends.
// @Tags reports
// @Produce json
// @Param kind path string true "Report name"
// @Param year query int false "Report year"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trial balance not stored"
// @Failure 422 {object} map[string]string "Stored trial balance failed integrity check"
// @Security BearerAuth
// @Router /reports/{kind} [get]
func (h *reportingHandler) generateStoredReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.ReportKind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown report %q", kind)})
		return
	}

	req, err := reportRequestFromQuery(c)
	if err != nil {
		respondError(c, logger, err, "Invalid report query")
		return
	}

	rows, err := h.pipelineService.LoadTrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load stored trial balance")
		return
	}
	req.Rows = rows

	logger = logger.With(slog.String("report", string(kind)), slog.Int("row_count", len(rows)))
	logger.Info("Generating report from stored trial balance")

	report, err := h.reportingService.Generate(c.Request.Context(), kind, req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Report: kind, Data: report})
}

func reportRequestFromQuery(c *gin.Context) (domain.ReportRequest, error) {
	var req domain.ReportRequest
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		switch {
		case key == "year":
			year, err := strconv.Atoi(values[0])
			if err != nil {
				return req, fmt.Errorf("%w: year %q is not a number", apperrors.ErrValidation, values[0])
			}
			req.Year = year
		case strings.Contains(key, "."):
			v, err := decimal.NewFromString(values[0])
			if err != nil {
				return req, fmt.Errorf("%w: %s %q is not a number", apperrors.ErrValidation, key, values[0])
			}
			if req.Overrides == nil {
				req.Overrides = make(map[string]decimal.Decimal)
			}
			req.Overrides[key] = v
		}
	}
	return req, nil
}
