// Package errgroup wraps golang.org/x/sync/errgroup with panic capture,
// aligning errgroup-style code with the library's loud-failure policy:
// a panicking task is re-raised at Wait instead of tearing the process
// down from an anonymous goroutine.
package errgroup

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ergo-go/ergosync/thread"
)

// Group mirrors errgroup.Group. Tasks that return errors behave exactly
// as in errgroup; tasks that panic are recorded as a
// [*thread.PanicError] and re-panicked by [Group.Wait] after every task
// has settled.
//
// The zero value is valid and has no cancellation, as with errgroup;
// use [WithContext] to tie the group to a context.
type Group struct {
	g        *errgroup.Group
	initOnce sync.Once

	mu       sync.Mutex
	panicked *thread.PanicError
}

// group returns the inner errgroup, lazily created for the zero value.
func (g *Group) group() *errgroup.Group {
	g.initOnce.Do(func() {
		if g.g == nil {
			g.g = new(errgroup.Group)
		}
	})
	return g.g
}

// WithContext creates a Group bound to ctx. The returned context is
// canceled when any task returns a non-nil error or panics.
func WithContext(ctx context.Context) (*Group, context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	return &Group{g: g}, ctx
}

// Go starts f on a new goroutine.
func (g *Group) Go(f func() error) {
	g.group().Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				pe := thread.NewPanicError(r)
				g.mu.Lock()
				if g.panicked == nil {
					g.panicked = pe
				}
				g.mu.Unlock()
				// Cancel siblings through the group's error path; Wait
				// surfaces the panic, not this error.
				err = pe
			}
		}()
		return f()
	})
}

// Wait blocks until all tasks have settled. If any task panicked, Wait
// re-panics with the first captured [*thread.PanicError]; otherwise it
// returns the first non-nil error, as errgroup does.
func (g *Group) Wait() error {
	err := g.group().Wait()
	g.mu.Lock()
	pe := g.panicked
	g.mu.Unlock()
	if pe != nil {
		panic(pe)
	}
	return err
}
