package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the handlers.
type ServiceContainer struct {
	Reporting ReportingService
	Pipeline  PipelineSvcFacade
}
