package pool

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	require := require.New(t)

	maxWorkers := 3
	wg := sync.WaitGroup{}

	run := func(ctx context.Context, item int) (int, error) {
		workerID, ok := WorkerIDFromContext(ctx)
		require.True(ok)
		require.True(isValidWorkerID(workerID, maxWorkers))
		return item * 2, nil
	}

	p := New(Opts{MaxWorkers: maxWorkers, MaxQueueDepth: 10}, run)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			val, err := p.SubmitAwait(context.Background(), n)
			require.NoError(err)
			require.Equal(n*2, val)
		}(i)
	}

	wg.Wait()
	p.Close()
}

func TestPoolSubmitReturnsTask(t *testing.T) {
	require := require.New(t)

	run := func(ctx context.Context, item int) (int, error) {
		return item + 1, nil
	}

	p := New(Opts{MaxWorkers: 1, MaxQueueDepth: 4}, run)
	defer p.Close()

	task := p.Submit(context.Background(), 41)
	r, err := task.Await(context.Background())
	require.NoError(err)
	require.Equal(42, r.Value())

	// The settled Task replays for later awaiters.
	r2, err := task.Await(context.Background())
	require.NoError(err)
	require.Equal(r, r2)
}

func TestPoolSubmissionContextCancellation(t *testing.T) {
	require := require.New(t)

	run := func(ctx context.Context, item int) (int, error) {
		return item, nil
	}

	p := New(Opts{MaxWorkers: 1, MaxQueueDepth: 10, FullQueueStrategy: BlockWhenFull}, run)
	defer p.Close()

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r, err := p.Submit(ctx, i).Await(context.Background())
		require.NoError(err)
		require.ErrorIs(r.Err(), context.Canceled)
	}
}

func TestPoolSubmitAfterClose(t *testing.T) {
	require := require.New(t)

	p := New(Opts{MaxWorkers: 1, MaxQueueDepth: 1}, func(ctx context.Context, item int) (int, error) {
		return item, nil
	})
	p.Close()

	r, err := p.Submit(context.Background(), 1).Await(context.Background())
	require.NoError(err)
	require.ErrorIs(r.Err(), ErrClosed)
}

func TestPoolQueueFull(t *testing.T) {
	require := require.New(t)

	started := make(chan struct{}, 1)
	block := make(chan struct{})
	run := func(ctx context.Context, item int) (int, error) {
		started <- struct{}{}
		<-block
		return item, nil
	}

	p := New(Opts{MaxWorkers: 1, MaxQueueDepth: 1, FullQueueStrategy: ErrorWhenFull}, run)

	// Occupy the single worker, then fill the queue slot; the third
	// submission has nowhere to go and must be refused.
	first := p.Submit(context.Background(), 1)
	<-started
	second := p.Submit(context.Background(), 2)

	r, err := p.Submit(context.Background(), 3).Await(context.Background())
	require.NoError(err)
	require.ErrorIs(r.Err(), ErrQueueFull)

	close(block)
	r, err = first.Await(context.Background())
	require.NoError(err)
	require.Equal(1, r.Value())

	r, err = second.Await(context.Background())
	require.NoError(err)
	require.Equal(2, r.Value())

	p.Close()
}

func TestOptsValidate(t *testing.T) {
	failIfNoPanic := func(f func()) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected validation panic")
			}
		}()

		f()
	}

	failIfNoPanic(Opts{MaxWorkers: 0, MaxQueueDepth: 1}.validate)
	failIfNoPanic(Opts{MaxWorkers: 1, MaxQueueDepth: -1}.validate)
}

func isValidWorkerID(id string, maxWorkers int) bool {
	for i := 0; i < maxWorkers; i++ {
		if id == "worker-"+strconv.Itoa(i) {
			return true
		}
	}
	return false
}
