package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool

	// JWTSecret protects the pipeline routes. Empty disables authentication.
	JWTSecret string
	// PipelineSecret is the passphrase stored steps are sealed under.
	PipelineSecret string

	TaxonomyDir     string
	AssumptionsFile string

	RateLimit          string
	CORSAllowedOrigins []string
	MaxRows            int
}

const defaultPipelineSecret = "polaris-insecure-pipeline-secret-change-me"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("PIPELINE_SECRET", "")
	v.SetDefault("TAXONOMY_DIR", "")
	v.SetDefault("ASSUMPTIONS_FILE", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("MAX_ROWS", 50000)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		PipelineSecret:  v.GetString("PIPELINE_SECRET"),
		TaxonomyDir:     v.GetString("TAXONOMY_DIR"),
		AssumptionsFile: v.GetString("ASSUMPTIONS_FILE"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		MaxRows:         v.GetInt("MAX_ROWS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Pipeline steps are kept in memory only.")
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Pipeline routes are not authenticated.")
	}

	if cfg.PipelineSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("PIPELINE_SECRET must be set in production")
		}
		log.Println("Warning: PIPELINE_SECRET not set. Using default insecure secret. THIS IS NOT FOR PRODUCTION.")
		cfg.PipelineSecret = defaultPipelineSecret
	}

	if cfg.MaxRows <= 0 {
		return nil, fmt.Errorf("MAX_ROWS must be positive, got %d", cfg.MaxRows)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
