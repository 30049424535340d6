package throttle

import (
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/realpha/eitherway/internal/pending"
)

var (
	// ErrQueueFull settles a submission refused because the queue was at
	// capacity under the ErrorWhenFull strategy.
	ErrQueueFull = pending.ErrQueueFull
	// ErrClosed settles a submission that arrived after Close.
	ErrClosed = errors.New("throttle has been closed")
)

// Limit is a rate expressed as N admissions per second.
type Limit = rate.Limit

// Every converts a minimum interval between admissions into a Limit, for
// instance Every(100*time.Millisecond) yields 10 admissions per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// FullQueueStrategy is the behavior when MaxQueueDepth is exceeded.
type FullQueueStrategy pending.FullQueueStrategy

const (
	// BlockWhenFull exerts backpressure by blocking Submit until space
	// frees up or the submission context ends.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(pending.BlockWhenFull)
	// ErrorWhenFull settles the submission as Err(ErrQueueFull) immediately.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(pending.ErrorWhenFull)
)

// Opts configures a Throttle via New.
type Opts struct {
	// Limit is the admission rate in items per second.
	Limit Limit
	// Burst is the token bucket size.
	Burst int
	// MaxQueueDepth is the number of submissions that may wait for a token.
	MaxQueueDepth int
	// FullQueueStrategy determines behavior when MaxQueueDepth is exceeded.
	// The default blocks the submitter.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("throttle limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("throttle burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("throttle max queue depth must be 0 or greater")
	}
}
