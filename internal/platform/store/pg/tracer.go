package pg

import (
	"context"
	"strings"
	"time"

	"eventdir/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one finished statement
type QueryEvent struct {
	SQL     string
	Args    []any
	Elapsed time.Duration
	Err     error
	Slow    bool
}

// QueryTracer is told about every statement the store runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements at info, slow ones at warn
// the child logger pins its own level so turning the trace on is enough,
// LOG_LEVEL does not also need lowering
func Tracer(root logger.Logger) QueryTracer {
	return logTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type logTracer struct{ log logger.Logger }

func (t logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	e := t.log.Info()
	if ev.Slow {
		e = t.log.Warn()
	}
	e.Dur("elapsed", ev.Elapsed).
		Bool("slow", ev.Slow).
		Str("sql", oneLine(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// oneLine collapses every whitespace run to one space, the reset DDL spans many lines
func oneLine(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
