package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"eventdir/internal/platform/config"
	"eventdir/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ShutdownGrace bounds the drain once Run's context ends
const ShutdownGrace = 10 * time.Second

// Server owns the chi mux and the listener
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer reads ADDR, READ_HEADER_TIMEOUT and IDLE_TIMEOUT from cfg
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("ADDR", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router exposes the mux through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens until ctx ends or the listener fails
// on ctx end in flight requests get ShutdownGrace to finish and Run returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-served:
			return
		case <-ctx.Done():
		}
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownGrace)
		defer cancel()
		log.Info().Msg("http draining")
		if err := s.srv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
	}()

	log.Info().Str("addr", s.srv.Addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains the server, Run returns once it has
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
