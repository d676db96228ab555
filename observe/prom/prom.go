// Package prom exports thread lifecycle metrics to Prometheus. It
// implements the thread.Observer interface; install it with
// thread.SetObserver.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a thread.Observer backed by Prometheus counters.
type Metrics struct {
	threadsStarted  prometheus.Counter
	threadsFinished prometheus.Counter
	threadsPanicked prometheus.Counter
	threadSeconds   prometheus.Counter

	joinsStarted  prometheus.Counter
	joinBodies    prometheus.Counter
	joinsFinished prometheus.Counter
	joinSeconds   prometheus.Counter
}

// New registers the ergosync metric set with reg and returns the
// observer. Registering twice against the same registerer panics, as
// usual with promauto.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		threadsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_threads_started_total",
			Help: "Goroutines spawned via thread.Go.",
		}),
		threadsFinished: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_threads_finished_total",
			Help: "Spawned goroutines that have terminated.",
		}),
		threadsPanicked: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_threads_panicked_total",
			Help: "Spawned goroutines that terminated by panic.",
		}),
		threadSeconds: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_thread_seconds_total",
			Help: "Cumulative run time of spawned goroutines.",
		}),
		joinsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_joins_started_total",
			Help: "thread.Join and thread.JoinErr invocations.",
		}),
		joinBodies: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_join_bodies_total",
			Help: "Bodies submitted across all joins.",
		}),
		joinsFinished: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_joins_finished_total",
			Help: "Joins that have returned.",
		}),
		joinSeconds: f.NewCounter(prometheus.CounterOpts{
			Name: "ergosync_join_seconds_total",
			Help: "Cumulative wall time spent blocked in joins.",
		}),
	}
}

// Default registers against the default Prometheus registry.
func Default() *Metrics { return New(prometheus.DefaultRegisterer) }

func (m *Metrics) ThreadStarted() { m.threadsStarted.Inc() }

func (m *Metrics) ThreadFinished(d time.Duration, panicked bool) {
	m.threadsFinished.Inc()
	if panicked {
		m.threadsPanicked.Inc()
	}
	m.threadSeconds.Add(d.Seconds())
}

func (m *Metrics) JoinStarted(bodies int) {
	m.joinsStarted.Inc()
	m.joinBodies.Add(float64(bodies))
}

func (m *Metrics) JoinFinished(d time.Duration) {
	m.joinsFinished.Inc()
	m.joinSeconds.Add(d.Seconds())
}
