package ch

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkerPipeline exercises the package's intended shape: a producer
// feeding 8 workers over a bounded channel, workers forwarding counts to
// a results channel, and an aggregator that terminates purely off
// sender reference counts. A forgotten results clone would deadlock the
// aggregation; correct Close discipline must make it converge.
func TestWorkerPipeline(t *testing.T) {
	t.Parallel()
	const workers = 8

	paths, pathRecv := Bounded[string](128)
	results, resultRecv := Bounded[int](128)
	errSend, errRecv := Bounded[error](128)

	// Error collector.
	var errCount int
	errDone := make(chan struct{})
	go func() {
		defer close(errDone)
		for range errRecv.All() {
			errCount++
		}
		errRecv.Close()
	}()

	// Producer: 100 synthetic documents, one per "path".
	want := 0
	docs := make(map[string]string, 100)
	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("doc-%03d", i)
		body := strings.Repeat("line\n", i%7)
		docs[name] = body
		want += i % 7
	}
	go func() {
		defer paths.Close()
		for name := range docs {
			paths.Send(name)
		}
	}()

	// Workers: receive paths, forward line counts.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		in := Own(pathRecv)
		out := Own(results)
		errs := Own(errSend)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer in.Close()
			defer out.Close()
			defer errs.Close()
			for name := range in.All() {
				body, ok := docs[name]
				if !ok {
					errs.Send(fmt.Errorf("unknown path %q", name))
					continue
				}
				out.Send(strings.Count(body, "\n"))
			}
		}()
	}
	// Parent drops its own handles; the workers' clones keep the
	// channels open until they finish.
	pathRecv.Close()
	results.Close()
	errSend.Close()

	got := 0
	for n := range resultRecv.All() {
		got += n
	}
	resultRecv.Close()

	wg.Wait()
	<-errDone
	require.Zero(t, errCount)
	assert.Equal(t, want, got)
}
