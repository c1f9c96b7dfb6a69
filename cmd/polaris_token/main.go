// Command polaris_token mints bearer tokens for the pipeline API, signed with the
// JWT_SECRET the server is configured with.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/platform/config"
	"github.com/SscSPs/polaris_reporting/internal/utils"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(os.Args[1:], cfg.JWTSecret, os.Stdout); err != nil {
		logger.Error("Failed to mint token", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, secret string, out io.Writer) error {
	fs := flag.NewFlagSet("polaris_token", flag.ContinueOnError)
	subject := fs.String("subject", "", "client the token is issued to")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if secret == "" {
		return errors.New("JWT_SECRET is not set; the server accepts every request without a token")
	}
	if *subject == "" {
		return errors.New("-subject is required")
	}
	if *ttl <= 0 {
		return fmt.Errorf("-ttl must be positive, got %s", *ttl)
	}

	token, err := utils.IssueAccessToken(*subject, secret, *ttl)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
