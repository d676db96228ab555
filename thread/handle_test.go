package thread

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFinishReturnsValue(t *testing.T) {
	t.Parallel()
	h := Go(func() int {
		SleepMS(10)
		return 42
	})
	if got := h.Finish(); got != 42 {
		t.Fatalf("Finish = %d, want 42", got)
	}
}

func TestFinishRepanicsThreadPanic(t *testing.T) {
	t.Parallel()
	h := Go(func() string {
		panic("exploded")
	})
	defer func() {
		r := recover()
		pe, ok := r.(*PanicError)
		if !ok {
			t.Fatalf("expected *PanicError, got %T (%v)", r, r)
		}
		if pe.Value != "exploded" {
			t.Fatalf("panic value = %v, want exploded", pe.Value)
		}
		if pe.Stack == "" {
			t.Fatal("expected captured stack")
		}
	}()
	h.Finish()
	t.Fatal("Finish returned from a panicked thread")
}

func TestFinishConsumesHandle(t *testing.T) {
	t.Parallel()
	h := Go(func() int { return 1 })
	_ = h.Finish()
	defer func() {
		if recover() == nil {
			t.Fatal("second Finish did not panic")
		}
	}()
	_ = h.Finish()
}

func TestDoneSignalsWithoutConsuming(t *testing.T) {
	t.Parallel()
	h := Go(func() int { return 9 })
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("Done did not close")
	}
	if got := h.Finish(); got != 9 {
		t.Fatalf("Finish after Done = %d, want 9", got)
	}
}
