package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// storageError wraps a database failure. Timeouts and cancellations are reported as
// 503 so callers can retry; everything else is a 500.
func storageError(message string, err error) *apperrors.AppError {
	code := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		code = http.StatusServiceUnavailable
	}
	return apperrors.NewAppError(code, message, err)
}
