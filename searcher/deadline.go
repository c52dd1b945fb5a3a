package searcher

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout aborts a search once the deadline is exceeded. Callers must
// discard whatever the interrupted search had found.
var ErrTimeout = errors.New("search timed out")

// TimeLeft reports the time remaining in the current turn
type TimeLeft func() time.Duration

// Countdown returns a TimeLeft that runs out budget after the call
func Countdown(budget time.Duration) TimeLeft {
	start := time.Now()
	return func() time.Duration {
		return budget - time.Since(start)
	}
}

// Deadline is polled before every node expansion. It is exceeded once the
// remaining time drops below the threshold or the context is done.
type Deadline struct {
	ctx       context.Context
	timeLeft  TimeLeft
	threshold time.Duration
}

func NewDeadline(ctx context.Context, timeLeft TimeLeft, threshold time.Duration) Deadline {
	if ctx == nil {
		ctx = context.Background()
	}
	return Deadline{ctx: ctx, timeLeft: timeLeft, threshold: threshold}
}

// NoDeadline never expires
func NoDeadline() Deadline {
	return NewDeadline(context.Background(), nil, 0)
}

func (d Deadline) Exceeded() bool {
	if d.ctx != nil && d.ctx.Err() != nil {
		return true
	}
	if d.timeLeft == nil {
		return false
	}
	return d.timeLeft() < d.threshold
}

// Remains reports whether there is time left above the threshold to start new work
func (d Deadline) Remains() bool {
	if d.ctx != nil && d.ctx.Err() != nil {
		return false
	}
	if d.timeLeft == nil {
		return true
	}
	return d.timeLeft() > d.threshold
}

func (d Deadline) check() error {
	if d.Exceeded() {
		return ErrTimeout
	}
	return nil
}
