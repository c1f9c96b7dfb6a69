package memory

import (
	"context"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	portsrepo "github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	"github.com/patrickmn/go-cache"
)

// StepRepository keeps sealed pipeline steps in process memory. Entries never expire.
type StepRepository struct {
	store *cache.Cache
}

// NewStepRepository creates an empty in-memory step repository.
func NewStepRepository() *StepRepository {
	return &StepRepository{store: cache.New(cache.NoExpiration, 0)}
}

// NewRepositoryProvider wires the in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StepRepo: NewStepRepository(),
	}
}

var _ portsrepo.StepRepository = (*StepRepository)(nil)

// SaveStep stores a copy of sealed under key.
func (r *StepRepository) SaveStep(_ context.Context, key string, sealed []byte) error {
	r.store.Set(key, append([]byte(nil), sealed...), cache.NoExpiration)
	return nil
}

// FindStep returns a copy of the blob stored under key.
func (r *StepRepository) FindStep(_ context.Context, key string) ([]byte, error) {
	v, ok := r.store.Get(key)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return append([]byte(nil), v.([]byte)...), nil
}

// DeleteStep removes key.
func (r *StepRepository) DeleteStep(_ context.Context, key string) error {
	r.store.Delete(key)
	return nil
}
