package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	SelfPingURL           string
	SelfPingInterval      time.Duration
	HealthCheckInterval   time.Duration
	RolloverCheckInterval time.Duration
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress            = ":3001"
	defaultSelfPingInterval      = 4 * time.Minute
	defaultHealthCheckInterval   = 10 * time.Minute
	defaultRolloverCheckInterval = time.Hour
	defaultShutdownTimeout       = 10 * time.Second
)

// Load parses configuration from a local .env file (when present), flags and
// environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		SelfPingURL:           getString(lookup, "SELF_PING_URL", ""),
		SelfPingInterval:      getDuration(lookup, "SELF_PING_INTERVAL", defaultSelfPingInterval),
		HealthCheckInterval:   getDuration(lookup, "HEALTHCHECK_INTERVAL", defaultHealthCheckInterval),
		RolloverCheckInterval: getDuration(lookup, "ROLLOVER_CHECK_INTERVAL", defaultRolloverCheckInterval),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("tezkor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pingIntervalStr     = cfg.SelfPingInterval.String()
		healthIntervalStr   = cfg.HealthCheckInterval.String()
		rolloverIntervalStr = cfg.RolloverCheckInterval.String()
		shutdownTimeoutStr  = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SelfPingURL, "ping-url", cfg.SelfPingURL, "Public URL pinged to keep the host awake")
	fs.StringVar(&pingIntervalStr, "ping-interval", pingIntervalStr, "Interval between keep-alive pings")
	fs.StringVar(&healthIntervalStr, "health-interval", healthIntervalStr, "Interval between storage health checks")
	fs.StringVar(&rolloverIntervalStr, "rollover-interval", rolloverIntervalStr, "Interval between earnings rollover checks")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SelfPingInterval, err = time.ParseDuration(pingIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid ping interval: %w", err)
	}

	if cfg.HealthCheckInterval, err = time.ParseDuration(healthIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid health interval: %w", err)
	}

	if cfg.RolloverCheckInterval, err = time.ParseDuration(rolloverIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid rollover interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SelfPingInterval <= 0 {
		cfg.SelfPingInterval = defaultSelfPingInterval
	}

	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = defaultHealthCheckInterval
	}

	if cfg.RolloverCheckInterval <= 0 {
		cfg.RolloverCheckInterval = defaultRolloverCheckInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
