package thread

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Join runs every body on its own goroutine and returns only after all
// of them have completed. Bodies may capture stack locals by reference:
// nothing spawned here outlives the call.
//
// If a body panics, the remaining bodies still run to completion; Join
// then re-panics the first captured [*PanicError] in the caller. Bodies
// run concurrently but are not guaranteed to run in parallel — that is
// the runtime scheduler's call.
func Join(bodies ...func()) {
	obs := currentObserver()
	start := time.Now()
	if obs != nil {
		obs.JoinStarted(len(bodies))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var first *PanicError
	for _, body := range bodies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					pe := NewPanicError(r)
					mu.Lock()
					if first == nil {
						first = pe
					}
					mu.Unlock()
				}
			}()
			body()
		}()
	}
	wg.Wait()

	if obs != nil {
		obs.JoinFinished(time.Since(start))
	}
	if first != nil {
		panic(first)
	}
}

// JoinErr is the fallible form of [Join]: every body runs to completion
// and the first non-nil error is returned. A panicking body does not
// become an error; JoinErr re-panics it after the others settle, keeping
// panics on the loud path.
func JoinErr(bodies ...func() error) error {
	obs := currentObserver()
	start := time.Now()
	if obs != nil {
		obs.JoinStarted(len(bodies))
	}

	var g errgroup.Group
	var mu sync.Mutex
	var first *PanicError
	for _, body := range bodies {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					pe := NewPanicError(r)
					mu.Lock()
					if first == nil {
						first = pe
					}
					mu.Unlock()
				}
			}()
			return body()
		})
	}
	err := g.Wait()

	if obs != nil {
		obs.JoinFinished(time.Since(start))
	}
	if first != nil {
		panic(first)
	}
	return err
}
