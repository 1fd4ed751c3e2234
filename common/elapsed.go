package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) String() string {
	return fmt.Sprintf("%.3f", time.Duration(it).Seconds())
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

// Report logs elapsed time in debug mode and returns it either way.
func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v seconds.", it.message, elapsed)
	return elapsed
}
