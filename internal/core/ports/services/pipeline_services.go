package services

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PipelineReaderSvc defines read operations on the step store.
type PipelineReaderSvc interface {
	// Load returns the stored payload for step once its integrity has been verified
	Load(ctx context.Context, step domain.Step) (*domain.StepPayload, error)

	// CanProceed reports whether every step before step has been stored and verifies
	CanProceed(ctx context.Context, step domain.Step) (bool, error)

	// ExportBackup collects every loadable step
	ExportBackup(ctx context.Context) (*domain.Backup, error)

	// LoadTrialBalance decodes the rows stored by the trial-balance step
	LoadTrialBalance(ctx context.Context) ([]domain.LedgerRow, error)

	// LoadClientInfo decodes the company header stored by the client-info step
	LoadClientInfo(ctx context.Context) (*domain.ClientInfo, error)
}

// PipelineWriterSvc defines write operations on the step store.
type PipelineWriterSvc interface {
	// Save seals and stores data for step
	Save(ctx context.Context, step domain.Step, data json.RawMessage) (*domain.StepPayload, error)

	// Delete removes the stored data for step
	Delete(ctx context.Context, step domain.Step) error
}

// PipelineSvcFacade combines all pipeline operations.
type PipelineSvcFacade interface {
	PipelineReaderSvc
	PipelineWriterSvc

	// Progress is the completion percentage reached once step is done
	Progress(step domain.Step) decimal.Decimal
}
