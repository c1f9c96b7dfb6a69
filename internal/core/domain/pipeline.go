package domain

import (
	"encoding/json"
	"time"
)

// Step names a stage of the reporting workflow.
type Step string

const (
	StepClientInfo   Step = "client-info"
	StepTrialBalance Step = "trial-balance"
	StepAdjustments  Step = "adjustments"
	StepReports      Step = "reports"
	StepSubmission   Step = "submission"
)

// Steps is the fixed, ordered workflow.
var Steps = []Step{StepClientInfo, StepTrialBalance, StepAdjustments, StepReports, StepSubmission}

// PipelineVersion is stamped on every stored payload.
const PipelineVersion = "1.0.1"

// Index returns the position of s in Steps, or -1.
func (s Step) Index() int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is part of the workflow.
func (s Step) IsValid() bool {
	return s.Index() >= 0
}

// StorageKey is the key a step is persisted under.
func (s Step) StorageKey() string {
	return "polaris_step_" + string(s)
}

// StepPayload is the envelope sealed and persisted for a step.
type StepPayload struct {
	Step      Step            `json:"step"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
	Checksum  string          `json:"checksum"`
}

// Backup is the export of every loadable step.
type Backup struct {
	ExportedAt time.Time                `json:"exportedAt"`
	Data       map[Step]json.RawMessage `json:"data"`
}

// ClientInfo is the company header captured by the first step.
type ClientInfo struct {
	Name        string `json:"name"`
	FiscalYear  int    `json:"fiscalYear"`
	Currency    string `json:"currency"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}
