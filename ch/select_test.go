package ch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopDispatchesUntilAllClosed(t *testing.T) {
	t.Parallel()
	sendA, recvA := Bounded[int](4)
	sendB, recvB := Bounded[string](4)

	go func() {
		defer sendA.Close()
		for i := 0; i < 3; i++ {
			sendA.Send(i)
		}
	}()
	go func() {
		defer sendB.Close()
		sendB.Send("x")
		sendB.Send("y")
	}()

	var ints []int
	var strs []string
	l := NewLoop()
	On(l, recvA, func(v int) { ints = append(ints, v) })
	On(l, recvB, func(v string) { strs = append(strs, v) })
	l.Run()

	assert.Equal(t, []int{0, 1, 2}, ints)
	assert.Equal(t, []string{"x", "y"}, strs)
	recvA.Close()
	recvB.Close()
}

func TestLoopClosedAndBufferedArm(t *testing.T) {
	t.Parallel()
	sendA, recvA := Bounded[int](1)
	sendB, recvB := Bounded[int](1)
	sendA.Close() // A closed, nothing buffered
	sendB.Send(7) // B holds one buffered item
	sendB.Close()

	var got []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		l := NewLoop()
		On(l, recvA, func(v int) { got = append(got, v) })
		On(l, recvB, func(v int) { got = append(got, v) })
		l.Run()
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run blocked with both channels closed and drained")
	}
	assert.Equal(t, []int{7}, got)
	recvA.Close()
	recvB.Close()
}

func TestLoopNoArmsReturnsImmediately(t *testing.T) {
	t.Parallel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewLoop().Run()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("empty loop did not return")
	}
}

func TestLoopRunUntil(t *testing.T) {
	t.Parallel()
	send, recv := Bounded[int](8)
	for i := 0; i < 8; i++ {
		send.Send(i)
	}

	seen := 0
	l := NewLoop()
	On(l, recv, func(int) { seen++ })
	l.RunUntil(func() bool { return seen == 3 })

	require.Equal(t, 3, seen)
	send.Close()
	recv.Close()
}

func TestLoopReusableAfterRun(t *testing.T) {
	t.Parallel()
	send, recv := Bounded[int](2)
	send.Send(1)
	send.Send(2)

	count := 0
	l := NewLoop()
	On(l, recv, func(int) { count++ })
	l.RunUntil(func() bool { return count == 2 })
	assert.Equal(t, 2, count)

	// A second Run over the same arms picks up later traffic.
	go func() {
		send.Send(3)
		send.Close()
	}()
	l.Run()
	assert.Equal(t, 3, count)
	recv.Close()
}
