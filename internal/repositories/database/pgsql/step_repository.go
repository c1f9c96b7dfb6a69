package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	portsrepo "github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStepRepository struct {
	BaseRepository
}

// newPgxStepRepository creates a new repository for sealed pipeline steps.
func newPgxStepRepository(pool *pgxpool.Pool) *PgxStepRepository {
	return &PgxStepRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StepRepository = (*PgxStepRepository)(nil)

// SaveStep inserts or replaces the sealed blob stored under key.
func (r *PgxStepRepository) SaveStep(ctx context.Context, key string, sealed []byte) error {
	query := `
		INSERT INTO pipeline_steps (step_key, sealed_payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (step_key) DO UPDATE SET
			sealed_payload = EXCLUDED.sealed_payload,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, key, sealed); err != nil {
		return storageError(fmt.Sprintf("failed to save step %s", key), err)
	}
	return nil
}

// FindStep retrieves the sealed blob stored under key.
func (r *PgxStepRepository) FindStep(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT sealed_payload FROM pipeline_steps WHERE step_key = $1;`

	var sealed []byte
	err := r.Pool.QueryRow(ctx, query, key).Scan(&sealed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageError(fmt.Sprintf("failed to find step %s", key), err)
	}
	return sealed, nil
}

// DeleteStep removes the row stored under key.
func (r *PgxStepRepository) DeleteStep(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM pipeline_steps WHERE step_key = $1;`, key); err != nil {
		return storageError(fmt.Sprintf("failed to delete step %s", key), err)
	}
	return nil
}
