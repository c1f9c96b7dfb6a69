package pgsql

import (
	portsrepo "github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StepRepo: newPgxStepRepository(dbPool),
	}
}
