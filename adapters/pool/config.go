package pool

import "github.com/realpha/eitherway/internal/pending"

// FullQueueStrategy is the behavior when MaxQueueDepth is exceeded.
type FullQueueStrategy pending.FullQueueStrategy

const (
	// BlockWhenFull exerts backpressure by blocking Submit until space
	// frees up or the submission context ends.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(pending.BlockWhenFull)
	// ErrorWhenFull settles the submission as Err(ErrQueueFull) immediately.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(pending.ErrorWhenFull)
)

// Opts configures a Pool via New.
type Opts struct {
	// MaxWorkers is the number of worker goroutines. Must be at least 1.
	MaxWorkers int
	// MaxQueueDepth is the number of submissions that may wait for a worker.
	MaxQueueDepth int
	// FullQueueStrategy determines behavior when MaxQueueDepth is exceeded.
	// The default blocks the submitter.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("pool max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("pool max queue depth must be 0 or greater")
	}
}
