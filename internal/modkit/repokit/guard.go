package repokit

import (
	"context"
	"fmt"
	"time"

	"eventdir/internal/platform/store"
)

// PingTimeout bounds MustPing when ctx carries no deadline
const PingTimeout = 5 * time.Second

// Pinger is anything that can prove it is reachable
type Pinger = store.Pinger

type guarder interface {
	Guard(context.Context) error
}

// MustPing panics when p is nil or does not answer; startup only
func MustPing(ctx context.Context, name string, p Pinger) {
	if p == nil {
		panic(fmt.Sprintf("%s: nil dependency", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, PingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}

// MustGuard panics when the store's backing checks fail; startup only
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
