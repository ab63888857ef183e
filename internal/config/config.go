package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	// PermissiveArgs opts in to substituting declared defaults for missing
	// required tool parameters instead of rejecting the call.
	PermissiveArgs bool

	// RetentionDays controls the nightly purge of past reservations.
	// Zero disables the job.
	RetentionDays int

	DevMode bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:       envDefault("HTTP_ADDR", ":8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		PermissiveArgs: strings.TrimSpace(os.Getenv("PERMISSIVE_ARGS")) == "1",
		DevMode:        strings.TrimSpace(os.Getenv("DEV_MODE")) == "1",
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required")
	}

	days := envDefault("RETENTION_DAYS", "30")
	n, err := strconv.Atoi(days)
	if err != nil || n < 0 {
		return cfg, fmt.Errorf("RETENTION_DAYS must be a non-negative integer (got %q)", days)
	}
	cfg.RetentionDays = n

	return cfg, nil
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}
