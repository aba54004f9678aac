package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vipclub/vipclub-cli/internal/flagx"
)

// parseEnv overlays Config with values from environment variables.
//
// If a .env file is named via -e/-env-file it is loaded first; otherwise a
// ".env" in the working directory is loaded when present. Real environment
// variables win over .env entries (godotenv.Load never overrides).
func parseEnv(cfg *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		// an explicitly named file must exist
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("VIPCLUB_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("VIPCLUB_DB_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("VIPCLUB_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("VIPCLUB_ONLINE_CHECK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.OnlineCheckInterval = d
	}
}
