// Package api provides the HTTP API for the application
package api

import (
	"time"

	"eventdir/internal/core/version"
	"eventdir/internal/platform/config"
	"eventdir/internal/platform/logger"
	"eventdir/internal/platform/metrics"
	phttp "eventdir/internal/platform/net/http"
	"eventdir/internal/platform/store"
	ptime "eventdir/internal/platform/time"

	"eventdir/internal/modkit"
	"eventdir/internal/modkit/httpkit"
	"eventdir/internal/modkit/module"
	"eventdir/internal/modkit/swaggerkit"

	eventsmod "eventdir/internal/services/api/events/module"
	locationsmod "eventdir/internal/services/api/locations/module"
	metamod "eventdir/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Metrics *metrics.Registry
	Clock   ptime.Clock

	CORSOrigins    []string
	SlowRequest    time.Duration
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	st := opt.Store
	if st == nil {
		st = &store.Store{}
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		PG:      st.PG,
		Docs:    st.Docs,
		Clock:   opt.Clock,
		Metrics: opt.Metrics,
	}

	mods := []module.Module{
		metamod.New(deps),
		locationsmod.New(deps),
		eventsmod.New(deps),
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: opt.SlowRequest,
		Metrics:     opt.Metrics,
	})

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			if opt.Logger != nil {
				opt.Logger.Debug().Str("module", m.Name()).Msg("mounting module")
			}
			m.MountRoutes(api)
		}
	})

	if opt.EnableSwagger {
		swaggerkit.Register(func(spec map[string]any) {
			if info, ok := spec["info"].(map[string]any); ok {
				info["version"] = version.Info().Version
			}
		})
	}
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
}
