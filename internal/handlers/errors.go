package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses. An AppError answers with its
// own code and message.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownStep):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrChecksumMismatch):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &appErr):
		code := appErr.Code
		if code < http.StatusBadRequest || code > 599 {
			code = http.StatusInternalServerError
		}
		if code >= http.StatusInternalServerError {
			logger.Error(msg, slog.String("error", err.Error()), slog.Int("status", code))
		} else {
			logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", code))
		}
		c.JSON(code, gin.H{"error": appErr.Message})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
