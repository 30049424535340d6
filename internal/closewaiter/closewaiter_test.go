package closewaiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDoAfterCloseRefused(t *testing.T) {
	require := require.New(t)

	w := New()
	w.Close(func() {})

	err := w.Do(func() {
		t.Fatal("fn must not run after close")
	})
	require.ErrorIs(err, ErrClosed)
}

func TestCloseWaitsForInFlight(t *testing.T) {
	require := require.New(t)

	w := New()

	started := make(chan struct{})
	var finished atomic.Bool

	go func() {
		_ = w.Do(func() {
			close(started)
			time.Sleep(20 * time.Millisecond)
			finished.Store(true)
		})
	}()

	<-started
	w.Close(func() {
		require.True(finished.Load())
	})
}

func TestCloseRunsOnce(t *testing.T) {
	require := require.New(t)

	w := New()
	var closes atomic.Int32

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Close(func() {
				closes.Add(1)
			})
		}()
	}
	wg.Wait()

	require.Equal(int32(1), closes.Load())
}
