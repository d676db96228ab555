package thread

import (
	"sync/atomic"
	"time"
)

// Observer receives lifecycle notifications for goroutines spawned by
// [Go] and joins performed by [Join] and [JoinErr]. Implementations must
// be safe for concurrent use and must not panic.
type Observer interface {
	ThreadStarted()
	ThreadFinished(d time.Duration, panicked bool)
	JoinStarted(bodies int)
	JoinFinished(d time.Duration)
}

type observerBox struct{ obs Observer }

var installed atomic.Pointer[observerBox]

// SetObserver installs obs process-wide; nil removes the current
// observer. Goroutines already in flight keep the observer they were
// spawned under.
func SetObserver(obs Observer) {
	if obs == nil {
		installed.Store(nil)
		return
	}
	installed.Store(&observerBox{obs: obs})
}

func currentObserver() Observer {
	if b := installed.Load(); b != nil {
		return b.obs
	}
	return nil
}
