package services

import (
	"fmt"

	"github.com/SscSPs/polaris_reporting/internal/core/engine"
	portsrepo "github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/platform/config"
	"github.com/SscSPs/polaris_reporting/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	taxonomies, err := config.LoadTaxonomies(cfg.TaxonomyDir)
	if err != nil {
		return nil, err
	}
	assumptions, err := config.LoadAssumptions(cfg.AssumptionsFile)
	if err != nil {
		return nil, err
	}
	sealer, err := utils.NewSealer(cfg.PipelineSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline sealer: %w", err)
	}

	container := &portssvc.ServiceContainer{}
	container.Reporting = NewReportingService(
		WithEngine(engine.New(taxonomies)),
		WithAssumptions(assumptions),
		WithMaxRows(cfg.MaxRows),
	)
	container.Pipeline = NewPipelineService(repos.StepRepo, sealer)

	return container, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ReportingService  = (*reportingService)(nil)
	_ portssvc.PipelineSvcFacade = (*pipelineService)(nil)
)
