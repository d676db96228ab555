package thread

import (
	"runtime"
	"time"
)

// NumCPU returns the number of logical CPUs usable by the process. Use
// it to size pools of CPU-bound workers; IO-bound stages usually want a
// small fixed count instead.
func NumCPU() int { return runtime.NumCPU() }

// SleepMS sleeps for the given number of milliseconds.
func SleepMS(ms int) { time.Sleep(time.Duration(ms) * time.Millisecond) }
