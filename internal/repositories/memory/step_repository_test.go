package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/SscSPs/polaris_reporting/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStepRepository()

	_, err := repo.FindStep(ctx, "polaris_step_reports")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	blob := []byte{1, 2, 3}
	require.NoError(t, repo.SaveStep(ctx, "polaris_step_reports", blob))
	blob[0] = 9

	got, err := repo.FindStep(ctx, "polaris_step_reports")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got, "stored value is isolated from the caller's slice")

	got[1] = 9
	again, err := repo.FindStep(ctx, "polaris_step_reports")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)

	require.NoError(t, repo.SaveStep(ctx, "polaris_step_reports", []byte{4}))
	got, err = repo.FindStep(ctx, "polaris_step_reports")
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, got)

	require.NoError(t, repo.DeleteStep(ctx, "polaris_step_reports"))
	require.NoError(t, repo.DeleteStep(ctx, "polaris_step_reports"))
	_, err = repo.FindStep(ctx, "polaris_step_reports")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
