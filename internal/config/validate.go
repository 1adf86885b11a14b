package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}

	if err := c.TMDB.validate(); err != nil {
		return fmt.Errorf("tmdb: %w", err)
	}

	if c.Edit.UnlockPerMinute <= 0 {
		return fmt.Errorf("edit.unlock_per_minute must be > 0 (got %d)", c.Edit.UnlockPerMinute)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	return nil
}

func (t *TMDBConfig) validate() error {
	if t.EnrichLimit <= 0 {
		return fmt.Errorf("enrich_limit must be > 0 (got %d)", t.EnrichLimit)
	}
	if t.EnrichConcurrency <= 0 {
		return fmt.Errorf("enrich_concurrency must be > 0 (got %d)", t.EnrichConcurrency)
	}
	if t.LookupTimeout < 0 {
		return fmt.Errorf("lookup_timeout must be >= 0 (got %v)", t.LookupTimeout)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	return nil
}
