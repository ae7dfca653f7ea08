package store

import (
	"context"
	"fmt"
	"time"

	"eventdir/internal/platform/logger"
	"eventdir/internal/platform/store/files"
	"eventdir/internal/platform/store/pg"

	"github.com/jackc/pgx/v5/pgxpool"
)

// postgres gets about half a minute to come up, compose starts it alongside us
const (
	pingAttempts = 20
	pingTimeout  = 3 * time.Second
	firstBackoff = 150 * time.Millisecond
	maxBackoff   = 2 * time.Second
)

func openPG(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		Slow:     time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond,
	}, tracer, appName(cfg.AppName))
	if err != nil {
		return nil, err
	}

	var pingErr error
	backoff := firstBackoff
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		// the pool itself, so boot probes stay out of the sql trace
		pingErr = p.Pool.Ping(pctx)
		cancel()
		if pingErr == nil {
			return newPGSeam(p), nil
		}
		log.Debug().Err(pingErr).Int("attempt", attempt).Dur("backoff", backoff).Msg("pg not ready")

		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", pingAttempts, pingErr)
}

// appName tags every pooled connection so pg_stat_activity shows who we are
func appName(name string) func(*pgxpool.Config) {
	if name == "" {
		return nil
	}
	return func(pc *pgxpool.Config) {
		if pc.ConnConfig.RuntimeParams == nil {
			pc.ConnConfig.RuntimeParams = map[string]string{}
		}
		pc.ConnConfig.RuntimeParams["application_name"] = name
	}
}

func openFiles(ctx context.Context, cfg FilesConfig, log logger.Logger) (DocReader, error) {
	src, err := files.Open(ctx, files.Config{Dir: cfg.Dir, Required: cfg.Required}, cfg.Seed)
	if err != nil {
		return nil, err
	}
	log.Info().Str("origin", src.Origin()).Msg("file source ready")
	return src, nil
}
