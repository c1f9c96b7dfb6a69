package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveStepRequest carries the data captured by a workflow step.
type SaveStepRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

// StepResponse defines the data returned for a stored step.
type StepResponse struct {
	Step      domain.Step     `json:"step"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
	Checksum  string          `json:"checksum"`
	Progress  decimal.Decimal `json:"progress"`
}

// ToStepResponse converts a stored payload into a StepResponse.
func ToStepResponse(p *domain.StepPayload, progress decimal.Decimal) StepResponse {
	return StepResponse{
		Step:      p.Step,
		Data:      p.Data,
		Timestamp: p.Timestamp,
		Version:   p.Version,
		Checksum:  p.Checksum,
		Progress:  progress,
	}
}

// CanProceedResponse reports whether a step may be entered.
type CanProceedResponse struct {
	Step       domain.Step     `json:"step"`
	CanProceed bool            `json:"canProceed"`
	Progress   decimal.Decimal `json:"progress"`
}

// StepsResponse lists the workflow steps in order.
type StepsResponse struct {
	Version string        `json:"version"`
	Steps   []domain.Step `json:"steps"`
}
