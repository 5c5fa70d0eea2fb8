package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Tuning TuningConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr        string
	ShutdownTimeout time.Duration
}

// StoreConfig holds job-history store configuration
type StoreConfig struct {
	Path string // sqlite file path; ":memory:" for in-memory
}

// TuningConfig exposes the pipeline's documented constants as env overrides.
type TuningConfig struct {
	AmbiguityThreshold float64
	ReconcileTolerance string // decimal string, e.g. "0.01"
	LowConfidenceFloor float64
	FieldSpecsPath     string // optional YAML field-spec override set
	DefaultLocale      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr:        getEnv("GRPC_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Path: getEnv("JOBS_DB_PATH", "./extract-jobs.db"),
		},
		Tuning: TuningConfig{
			AmbiguityThreshold: getEnvAsFloat64("AMBIGUITY_THRESHOLD", 0.05),
			ReconcileTolerance: getEnv("RECONCILE_TOLERANCE", "0.01"),
			LowConfidenceFloor: getEnvAsFloat64("LOW_CONFIDENCE_FLOOR", 0.60),
			FieldSpecsPath:     getEnv("FIELD_SPECS_PATH", ""),
			DefaultLocale:      getEnv("DEFAULT_LOCALE", "en-US"),
		},
	}
}

// PipelineTuning merges the env overrides over the pipeline defaults.
func (c *Config) PipelineTuning() (extract.Tuning, error) {
	t := extract.DefaultTuning()
	t.AmbiguityThreshold = c.Tuning.AmbiguityThreshold
	t.LowConfidenceFloor = c.Tuning.LowConfidenceFloor
	if c.Tuning.ReconcileTolerance != "" {
		tol, err := parseDecimalEnv(c.Tuning.ReconcileTolerance)
		if err != nil {
			return t, common.NewAppError("CONFIG_ERROR", "RECONCILE_TOLERANCE is not a decimal", err)
		}
		t.ReconcileTolerance = tol
	}
	return t, nil
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return common.NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", common.ErrInvalidInput)
	}
	if c.Tuning.AmbiguityThreshold < 0 || c.Tuning.AmbiguityThreshold > 1 {
		return common.NewAppError("CONFIG_ERROR", "AMBIGUITY_THRESHOLD must be in [0,1]", common.ErrInvalidInput)
	}
	if c.Tuning.LowConfidenceFloor < 0 || c.Tuning.LowConfidenceFloor > 1 {
		return common.NewAppError("CONFIG_ERROR", "LOW_CONFIDENCE_FLOOR must be in [0,1]", common.ErrInvalidInput)
	}
	return nil
}

func parseDecimalEnv(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
