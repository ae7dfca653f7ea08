package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"eventdir/internal/modkit"
	"eventdir/internal/modkit/module"
	"eventdir/internal/modkit/repokit"
	"eventdir/internal/platform/config"
	"eventdir/internal/platform/logger"
	"eventdir/internal/platform/store"

	resetmod "eventdir/internal/services/reset/module"
)

func main() {
	fEnv := flag.String("env", ".env", "dotenv file read before the environment is consulted")
	flag.Parse()

	if _, err := config.LoadDotenv(*fEnv); err != nil {
		logger.Get().Panic().Err(err).Str("file", *fEnv).Msg("dotenv")
	}
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	libpq := root.Prefix("PG")

	// target info, no secrets
	l.Info().Str("host", libpq.MayString("HOST", "")).Str("database", libpq.MayString("DATABASE", "")).Msg("reset target")

	url := store.PGURL(pgCfg, libpq)
	if url == "" {
		l.Panic().Msg("reset needs SERVICE_PGSQL_DBURL or PGDATABASE")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		AppName: "eventdir-reset",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         url,
			MaxConns:    1,
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	pinger, ok := st.PG.(store.Pinger)
	if !ok {
		l.Panic().Msg("pg seam cannot ping")
	}
	repokit.MustPing(ctx, "pg", pinger)

	m := resetmod.New(modkit.Deps{Cfg: root, PG: st.PG, Log: l})
	runner := module.MustPortsOf[resetmod.Ports](m).Runner

	res, err := runner.Run(ctx)
	if err != nil {
		l.Error().Err(err).Str("run_id", res.RunID).Msg("reset failed")
		stop()
		os.Exit(1)
	}
	l.Info().Str("run_id", res.RunID).Str("database", res.Database).Msg("reset completed")
}
