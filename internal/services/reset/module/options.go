package module

import (
	"time"

	"eventdir/internal/platform/config"
)

// Options holds configuration options for the reset service
type Options struct {
	StatementTimeout time.Duration
	Analyze          bool
}

// FromConfig reads the reset options from config with CORE_RESET_ prefix
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("CORE_RESET_")
	return Options{
		StatementTimeout: rc.MayDuration("STATEMENT_TIMEOUT", 30*time.Second),
		Analyze:          rc.MayBool("ANALYZE", true),
	}
}
