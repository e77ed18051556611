package view

import (
	"context"
	"sync"
)

// Loader scopes fetches to a component instance's lifetime. Each Begin call
// bumps a generation counter and cancels the previous request's context, so a
// completion that raced a newer request can never clobber its state: callers
// apply results only when the commit func reports true.
type Loader struct {
	parent context.Context

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewLoader binds the loader to the component's lifetime context. Cancelling
// that context aborts every request the loader ever issues.
func NewLoader(parent context.Context) *Loader {
	if parent == nil {
		parent = context.Background()
	}
	return &Loader{parent: parent}
}

// Begin starts a new request generation. It returns the request context and a
// commit func; commit reports whether this request is still the current one,
// and callers must apply fetched state only on true.
func (l *Loader) Begin() (context.Context, func() bool) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(l.parent)
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.mu.Unlock()

	commit := func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return gen == l.gen
	}
	return ctx, commit
}

// Close cancels any in-flight request and invalidates its commit.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}
