package discovery

import (
	"os"
	"strconv"

	"github.com/rebelice/lazystay/internal/models"
)

// ApplyEnvironment fills the fields cfg leaves empty from the standard
// PostgreSQL environment variables (PGHOST, PGPORT, PGDATABASE, PGUSER,
// PGPASSWORD, PGSSLMODE).
func ApplyEnvironment(cfg models.DatabaseConfig) models.DatabaseConfig {
	if cfg.Host == "" {
		cfg.Host = os.Getenv("PGHOST")
	}
	if cfg.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PGPORT")); err == nil && p > 0 && p <= 65535 {
			cfg.Port = p
		}
	}
	if cfg.Database == "" {
		cfg.Database = os.Getenv("PGDATABASE")
	}
	if cfg.User == "" {
		cfg.User = os.Getenv("PGUSER")
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv("PGPASSWORD")
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = os.Getenv("PGSSLMODE")
	}

	// Set defaults
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 5432
	}
	if cfg.User == "" {
		cfg.User = os.Getenv("USER")
	}
	if cfg.Database == "" {
		cfg.Database = cfg.User
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}
	return cfg
}
