// Package config holds typed runtime configuration for the scout server.
// Values come from environment variables with built-in defaults; see Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration object assembled at startup.
type Config struct {
	Scheduler *SchedulerConfig
	Gen       *GenConfig
	API       *APIConfig
}

// SchedulerConfig controls the batch scheduler's dispatch behavior.
type SchedulerConfig struct {
	// RetryInterval is how long the scheduler waits before re-polling when
	// every remaining pending test is blocked on a busy account.
	RetryInterval time.Duration
}

// GenConfig controls the AI generation job queue.
type GenConfig struct {
	// StaleJobThreshold is how long a running job may go without completing
	// before another worker may reclaim it.
	StaleJobThreshold time.Duration

	// AccountWaitInterval is the poll period while a job waits for its
	// account to become free.
	AccountWaitInterval time.Duration

	// AccountWaitDeadline bounds the total account wait; on expiry the job fails.
	AccountWaitDeadline time.Duration

	// DrainLimit is how many claimable jobs a status request may process
	// opportunistically.
	DrainLimit int
}

// APIConfig controls the HTTP surface.
type APIConfig struct {
	Port string

	// Per-caller sliding-window rate limits, in requests per minute.
	ExecuteRateLimit   int
	StopRateLimit      int
	GenerateRateLimit  int
	GenStatusRateLimit int

	ShutdownTimeout time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		RetryInterval: 350 * time.Millisecond,
	}
}

// DefaultGenConfig returns the built-in generation queue defaults.
func DefaultGenConfig() *GenConfig {
	return &GenConfig{
		StaleJobThreshold:   10 * time.Minute,
		AccountWaitInterval: 350 * time.Millisecond,
		AccountWaitDeadline: 10 * time.Minute,
		DrainLimit:          2,
	}
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Port:               "8080",
		ExecuteRateLimit:   20,
		StopRateLimit:      30,
		GenerateRateLimit:  20,
		GenStatusRateLimit: 120,
		ShutdownTimeout:    5 * time.Second,
	}
}

// Load assembles the configuration from environment variables, falling back
// to defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Scheduler: DefaultSchedulerConfig(),
		Gen:       DefaultGenConfig(),
		API:       DefaultAPIConfig(),
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		cfg.API.Port = port
	}
	if err := overrideDuration("SCHEDULER_RETRY_INTERVAL", &cfg.Scheduler.RetryInterval); err != nil {
		return nil, err
	}
	if err := overrideDuration("GEN_STALE_JOB_THRESHOLD", &cfg.Gen.StaleJobThreshold); err != nil {
		return nil, err
	}
	if err := overrideDuration("GEN_ACCOUNT_WAIT_DEADLINE", &cfg.Gen.AccountWaitDeadline); err != nil {
		return nil, err
	}
	if err := overrideInt("GEN_DRAIN_LIMIT", &cfg.Gen.DrainLimit); err != nil {
		return nil, err
	}

	return cfg, nil
}

func overrideDuration(key string, dst *time.Duration) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = d
	return nil
}

func overrideInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = n
	return nil
}
