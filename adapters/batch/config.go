package batch

import "time"

// Opts configures an Executor via NewExecutor.
type Opts struct {
	// MaxSize is the item count at which a batch is dispatched immediately.
	MaxSize int
	// MaxLinger is how long the oldest item may wait before its batch is
	// dispatched regardless of size.
	MaxLinger time.Duration
}

func (o Opts) validate() {
	if o.MaxSize <= 1 {
		panic("maximum batch size must be greater than 1")
	}

	if o.MaxLinger <= 0 {
		panic("batch linger must be greater than 0")
	}
}
