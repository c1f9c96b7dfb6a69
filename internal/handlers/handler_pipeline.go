package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/dto"
	"github.com/SscSPs/polaris_reporting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pipelineHandler handles HTTP requests for the reporting workflow step store
type pipelineHandler struct {
	pipelineService portssvc.PipelineSvcFacade
}

// newPipelineHandler creates a new pipelineHandler
func newPipelineHandler(ps portssvc.PipelineSvcFacade) *pipelineHandler {
	return &pipelineHandler{pipelineService: ps}
}

// registerPipelineRoutes registers routes related to the workflow step store
func registerPipelineRoutes(rg *gin.RouterGroup, ps portssvc.PipelineSvcFacade) {
	h := newPipelineHandler(ps)

	pipeline := rg.Group("/pipeline")
	{
		pipeline.GET("/steps", h.listSteps)
		pipeline.PUT("/steps/:step", h.saveStep)
		pipeline.GET("/steps/:step", h.getStep)
		pipeline.DELETE("/steps/:step", h.deleteStep)
		pipeline.GET("/steps/:step/can-proceed", h.canProceed)
		pipeline.GET("/client-info", h.getClientInfo)
		pipeline.GET("/backup", h.exportBackup)
	}
}

// listSteps godoc
// @Summary List workflow steps in order
// @Tags pipeline
// @Produce json
// @Success 200 {object} dto.StepsResponse
// @Security BearerAuth
// @Router /pipeline/steps [get]
func (h *pipelineHandler) listSteps(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StepsResponse{Version: domain.PipelineVersion, Steps: domain.Steps})
}

// saveStep godoc
// @Summary Store the data captured by a workflow step
// @Tags pipeline
// @Accept json
// @Produce json
// @Param step path string true "Step name"
// @Param request body dto.SaveStepRequest true "Step data"
// @Success 200 {object} dto.StepResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown step"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save step"
// @Security BearerAuth
// @Router /pipeline/steps/{step} [put]
func (h *pipelineHandler) saveStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	step := domain.Step(c.Param("step"))

	var req dto.SaveStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid save step request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	payload, err := h.pipelineService.Save(c.Request.Context(), step, req.Data)
	if err != nil {
		respondError(c, logger, err, "Failed to save step")
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResponse(payload, h.pipelineService.Progress(step)))
}

// getStep godoc
// @Summary Load the verified data of a workflow step
// @Tags pipeline
// @Produce json
// @Param step path string true "Step name"
// @Success 200 {object} dto.StepResponse
// @Failure 400 {object} map[string]string "Unknown step"
// @Failure 404 {object} map[string]string "Step not stored"
// @Failure 422 {object} map[string]string "Stored step failed integrity check"
// @Security BearerAuth
// @Router /pipeline/steps/{step} [get]
func (h *pipelineHandler) getStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	step := domain.Step(c.Param("step"))

	payload, err := h.pipelineService.Load(c.Request.Context(), step)
	if err != nil {
		respondError(c, logger, err, "Failed to load step")
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResponse(payload, h.pipelineService.Progress(step)))
}

// deleteStep godoc
// @Summary Remove the stored data of a workflow step
// @Tags pipeline
// @Param step path string true "Step name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Unknown step"
// @Security BearerAuth
// @Router /pipeline/steps/{step} [delete]
func (h *pipelineHandler) deleteStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	step := domain.Step(c.Param("step"))

	if err := h.pipelineService.Delete(c.Request.Context(), step); err != nil {
		respondError(c, logger, err, "Failed to delete step")
		return
	}

	c.Status(http.StatusNoContent)
}

// canProceed godoc
// @Summary Check whether every earlier step has been completed
// @Tags pipeline
// @Produce json
// @Param step path string true "Step name"
// @Success 200 {object} dto.CanProceedResponse
// @Security BearerAuth
// @Router /pipeline/steps/{step}/can-proceed [get]
func (h *pipelineHandler) canProceed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	step := domain.Step(c.Param("step"))

	ok, err := h.pipelineService.CanProceed(c.Request.Context(), step)
	if err != nil {
		respondError(c, logger, err, "Failed to check step prerequisites")
		return
	}

	c.JSON(http.StatusOK, dto.CanProceedResponse{
		Step:       step,
		CanProceed: ok,
		Progress:   h.pipelineService.Progress(step),
	})
}

// getClientInfo godoc
// @Summary Load the company header stored by the client-info step
// @Tags pipeline
// @Produce json
// @Success 200 {object} domain.ClientInfo
// @Failure 404 {object} map[string]string "Step not stored"
// @Security BearerAuth
// @Router /pipeline/client-info [get]
func (h *pipelineHandler) getClientInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	info, err := h.pipelineService.LoadClientInfo(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load client info")
		return
	}

	c.JSON(http.StatusOK, info)
}

// exportBackup godoc
// @Summary Download every stored step as a JSON backup
// @Tags pipeline
// @Produce json
// @Success 200 {object} domain.Backup
// @Security BearerAuth
// @Router /pipeline/backup [get]
func (h *pipelineHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	backup, err := h.pipelineService.ExportBackup(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export backup")
		return
	}

	filename := fmt.Sprintf("Polaris_Backup_%s.json", backup.ExportedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, backup)
}
