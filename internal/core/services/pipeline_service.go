package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	portsrepo "github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/utils"
	"github.com/shopspring/decimal"
)

// PayloadSealer encrypts step payloads at rest. *utils.Sealer implements it.
type PayloadSealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// pipelineService implements the PipelineSvcFacade interface
type pipelineService struct {
	BaseService
	stepRepo portsrepo.StepRepository
	sealer   PayloadSealer
	now      func() time.Time
}

// PipelineServiceOption is a functional option for configuring the pipeline service
type PipelineServiceOption func(*pipelineService)

// WithPipelineClock sets the clock used to timestamp payloads and backups.
func WithPipelineClock(now func() time.Time) PipelineServiceOption {
	return func(s *pipelineService) {
		s.now = now
	}
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(repo portsrepo.StepRepository, sealer PayloadSealer, options ...PipelineServiceOption) portssvc.PipelineSvcFacade {
	svc := &pipelineService{
		stepRepo: repo,
		sealer:   sealer,
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func checkStep(step domain.Step) error {
	if !step.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownStep, step)
	}
	return nil
}

// Save seals and stores data for step
func (s *pipelineService) Save(ctx context.Context, step domain.Step, data json.RawMessage) (*domain.StepPayload, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, fmt.Errorf("%w: step data is not valid JSON", apperrors.ErrValidation)
	}
	if compact.Len() == 0 || compact.String() == "null" {
		return nil, fmt.Errorf("%w: step data is required", apperrors.ErrValidation)
	}

	payload := domain.StepPayload{
		Step:      step,
		Data:      json.RawMessage(compact.Bytes()),
		Timestamp: s.now().UTC(),
		Version:   domain.PipelineVersion,
		Checksum:  utils.Checksum(compact.Bytes()),
	}

	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode step payload: %w", err)
	}

	sealed, err := s.sealer.Seal(encoded.Bytes())
	if err != nil {
		s.LogError(ctx, err, "Failed to seal step payload", slog.String("step", string(step)))
		return nil, fmt.Errorf("failed to seal step payload: %w", err)
	}

	if err := s.stepRepo.SaveStep(ctx, step.StorageKey(), sealed); err != nil {
		s.LogError(ctx, err, "Failed to save step", slog.String("step", string(step)))
		return nil, fmt.Errorf("failed to save step %s: %w", step, err)
	}

	s.LogInfo(ctx, "Pipeline step saved",
		slog.String("step", string(step)),
		slog.String("checksum", payload.Checksum),
		slog.String("progress", s.Progress(step).String()))
	return &payload, nil
}

// Load returns the stored payload for step once its integrity has been verified
func (s *pipelineService) Load(ctx context.Context, step domain.Step) (*domain.StepPayload, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}

	sealed, err := s.stepRepo.FindStep(ctx, step.StorageKey())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("step %s: %w", step, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to read step", slog.String("step", string(step)))
		return nil, fmt.Errorf("failed to read step %s: %w", step, err)
	}

	plaintext, err := s.sealer.Open(sealed)
	if err != nil {
		s.LogWarn(ctx, "Stored step could not be decrypted", slog.String("step", string(step)))
		return nil, fmt.Errorf("step %s: %w", step, apperrors.ErrChecksumMismatch)
	}

	var payload domain.StepPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		s.LogWarn(ctx, "Stored step is not a valid payload", slog.String("step", string(step)))
		return nil, fmt.Errorf("step %s: %w", step, apperrors.ErrChecksumMismatch)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, payload.Data); err != nil ||
		payload.Step != step || !utils.VerifyChecksum(compact.Bytes(), payload.Checksum) {
		s.LogWarn(ctx, "Stored step failed checksum verification", slog.String("step", string(step)))
		return nil, fmt.Errorf("step %s: %w", step, apperrors.ErrChecksumMismatch)
	}

	return &payload, nil
}

// loadable reports whether step loads. Missing and corrupt steps are not errors here.
func (s *pipelineService) loadable(ctx context.Context, step domain.Step) (*domain.StepPayload, bool, error) {
	payload, err := s.Load(ctx, step)
	switch {
	case err == nil:
		return payload, true, nil
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrChecksumMismatch):
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// CanProceed reports whether every step before step has been stored and verifies
func (s *pipelineService) CanProceed(ctx context.Context, step domain.Step) (bool, error) {
	idx := step.Index()
	if idx < 0 {
		return false, nil
	}
	for _, prior := range domain.Steps[:idx] {
		_, ok, err := s.loadable(ctx, prior)
		if err != nil {
			return false, err
		}
		if !ok {
			s.LogDebug(ctx, "Pipeline step blocked",
				slog.String("step", string(step)),
				slog.String("missing", string(prior)))
			return false, nil
		}
	}
	return true, nil
}

// Progress is the completion percentage reached once step is done
func (s *pipelineService) Progress(step domain.Step) decimal.Decimal {
	idx := step.Index()
	if idx < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(idx + 1)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(domain.Steps))))
}

// ExportBackup collects every loadable step
func (s *pipelineService) ExportBackup(ctx context.Context) (*domain.Backup, error) {
	backup := &domain.Backup{
		ExportedAt: s.now().UTC(),
		Data:       make(map[domain.Step]json.RawMessage, len(domain.Steps)),
	}
	for _, step := range domain.Steps {
		payload, ok, err := s.loadable(ctx, step)
		if err != nil {
			return nil, err
		}
		if ok {
			backup.Data[step] = payload.Data
		}
	}

	s.LogInfo(ctx, "Pipeline backup exported", slog.Int("step_count", len(backup.Data)))
	return backup, nil
}

// LoadTrialBalance decodes the rows stored by the trial-balance step. The step data is
// either an array of rows or an object carrying them under "rows" or "trialBalance".
func (s *pipelineService) LoadTrialBalance(ctx context.Context) ([]domain.LedgerRow, error) {
	payload, err := s.Load(ctx, domain.StepTrialBalance)
	if err != nil {
		return nil, err
	}

	data := bytes.TrimSpace(payload.Data)
	var rows []domain.LedgerRow
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("%w: stored trial balance: %v", apperrors.ErrValidation, err)
		}
		return rows, nil
	}

	var wrapper struct {
		Rows         []domain.LedgerRow `json:"rows"`
		TrialBalance []domain.LedgerRow `json:"trialBalance"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: stored trial balance: %v", apperrors.ErrValidation, err)
	}
	if wrapper.Rows != nil {
		return wrapper.Rows, nil
	}
	if wrapper.TrialBalance != nil {
		return wrapper.TrialBalance, nil
	}
	return nil, fmt.Errorf("%w: stored trial balance has no rows", apperrors.ErrValidation)
}

// LoadClientInfo decodes the company header stored by the client-info step
func (s *pipelineService) LoadClientInfo(ctx context.Context) (*domain.ClientInfo, error) {
	payload, err := s.Load(ctx, domain.StepClientInfo)
	if err != nil {
		return nil, err
	}
	var info domain.ClientInfo
	if err := json.Unmarshal(payload.Data, &info); err != nil {
		return nil, fmt.Errorf("%w: stored client info: %v", apperrors.ErrValidation, err)
	}
	return &info, nil
}

// Delete removes the stored data for step
func (s *pipelineService) Delete(ctx context.Context, step domain.Step) error {
	if err := checkStep(step); err != nil {
		return err
	}
	if err := s.stepRepo.DeleteStep(ctx, step.StorageKey()); err != nil {
		s.LogError(ctx, err, "Failed to delete step", slog.String("step", string(step)))
		return fmt.Errorf("failed to delete step %s: %w", step, err)
	}
	s.LogInfo(ctx, "Pipeline step deleted", slog.String("step", string(step)))
	return nil
}
