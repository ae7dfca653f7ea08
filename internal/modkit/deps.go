// Package modkit provides module wiring and core deps
package modkit

import (
	"eventdir/internal/modkit/repokit"
	"eventdir/internal/platform/config"
	"eventdir/internal/platform/logger"
	"eventdir/internal/platform/metrics"
	"eventdir/internal/platform/store"
	ptime "eventdir/internal/platform/time"
)

// Deps is everything a module constructor may need, zero values included
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// exactly one of PG or Docs backs the read models
	PG   repokit.TxRunner
	Docs store.DocReader

	Clock   ptime.Clock
	Metrics *metrics.Registry
}

// UsesPG reports whether modules should bind their postgres repos
func (d Deps) UsesPG() bool { return d.PG != nil }
