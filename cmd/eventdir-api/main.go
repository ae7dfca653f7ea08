package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdir/internal/core/seed"
	"eventdir/internal/modkit/repokit"
	"eventdir/internal/platform/config"
	"eventdir/internal/platform/logger"
	"eventdir/internal/platform/metrics"
	phttp "eventdir/internal/platform/net/http"
	"eventdir/internal/platform/store"
	ptime "eventdir/internal/platform/time"

	"eventdir/internal/services/api"
)

func main() {
	// .env first so logger and config see it
	loaded, err := config.LoadDotenv(".env", "server/.env")
	logger.Init(logger.FromEnv())
	l := logger.Get()
	if err != nil {
		l.Panic().Err(err).Msg("dotenv")
	}
	if len(loaded) > 0 {
		l.Debug().Strs("files", loaded).Msg("dotenv loaded")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := apiCfg.MayEnum("SOURCE", "files", "files", "pg")
	cfg := store.Config{AppName: "eventdir-api"}
	switch source {
	case "pg":
		url := store.PGURL(pgCfg, root.Prefix("PG"))
		if url == "" {
			l.Panic().Msg("CORE_API_SOURCE=pg needs SERVICE_PGSQL_DBURL or PGDATABASE")
		}
		cfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         url,
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		}
	default:
		cfg.Files = store.FilesConfig{
			Enabled:  true,
			Dir:      apiCfg.MayString("DATA_DIR", ""),
			Seed:     seed.FS(),
			Required: []string{seed.LocationsDoc, seed.EventsDoc},
		}
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Str("source", source).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	gctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	repokit.MustGuard(gctx, st)
	cancel()

	var reg *metrics.Registry
	if apiCfg.MayBool("METRICS", true) {
		reg = metrics.New()
	}

	loc := apiCfg.MayLocation("TIMEZONE", time.Local)
	l.Info().Str("source", source).Str("tz", loc.String()).Msg("eventdir api starting")

	// http server (reads CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Metrics:        reg,
			Clock:          ptime.SystemClock(loc),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", []string{"http://localhost:5173"}),
			SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT or SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("eventdir api stopped")
}
