package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/realpha/eitherway/faults"
	"github.com/realpha/eitherway/results"
	"github.com/stretchr/testify/require"
)

var ErrTest = errors.New("test error")

func TestSucceed(t *testing.T) {
	require := require.New(t)

	task := Succeed(42)
	require.True(task.IsSettled())

	r, err := task.Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(42), r)
}

func TestFail(t *testing.T) {
	require := require.New(t)

	task := Fail[int](ErrTest)

	r, err := task.Await(context.Background())
	require.NoError(err)
	require.True(r.IsErr())
	require.ErrorIs(r.Err(), ErrTest)
}

func TestOf(t *testing.T) {
	require := require.New(t)

	task := Of(results.Ok("ready"))
	require.True(task.IsSettled())

	r, err := task.Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok("ready"), r)
}

func TestFrom(t *testing.T) {
	require := require.New(t)

	task := From(func() results.Result[int] {
		time.Sleep(10 * time.Millisecond)
		return results.Ok(7)
	})

	r, err := task.Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(7), r)
}

func TestFromFallibleNeverRejects(t *testing.T) {
	require := require.New(t)

	wrap := func(e error) error { return fmt.Errorf("lifted: %w", e) }

	ok := FromFallible(func() (int, error) { return 1, nil }, wrap)
	r, err := ok.Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(1), r)

	failed := FromFallible(func() (int, error) { return 0, ErrTest }, wrap)
	r, err = failed.Await(context.Background())
	require.NoError(err)
	require.ErrorIs(r.Err(), ErrTest)

	panicked := FromFallible(func() (int, error) { panic("kaboom") }, wrap)
	r, err = panicked.Await(context.Background())
	require.NoError(err)
	require.True(r.IsErr())
	require.Contains(r.Err().Error(), "kaboom")

	pe := &faults.PanicError{}
	require.ErrorAs(r.Err(), &pe)
}

func TestLiftFallible(t *testing.T) {
	require := require.New(t)

	half := LiftFallible(func(n int) (int, error) {
		if n%2 != 0 {
			return 0, ErrTest
		}
		return n / 2, nil
	}, func(e error) error { return e })

	r, err := half(4).Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(2), r)

	r, err = half(3).Await(context.Background())
	require.NoError(err)
	require.ErrorIs(r.Err(), ErrTest)
}

func TestAwaitReplay(t *testing.T) {
	require := require.New(t)

	task := From(func() results.Result[int] {
		time.Sleep(5 * time.Millisecond)
		return results.Ok(9)
	})

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := task.Await(context.Background())
			require.NoError(err)
			require.Equal(results.Ok(9), r)
		}()
	}
	wg.Wait()

	// Awaiting again after settlement yields the same Result.
	r, err := task.Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(9), r)
}

func TestAwaitContextCanceled(t *testing.T) {
	require := require.New(t)

	d := Deferred[int]()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := d.Task().Await(ctx)
	require.ErrorIs(err, context.Canceled)

	// The Task itself is unaffected by the abandoned wait.
	d.Succeed(1)
	r, err := d.Task().Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(1), r)
}

func TestUnwrap(t *testing.T) {
	require := require.New(t)

	v, err := Succeed(3).Unwrap(context.Background())
	require.NoError(err)
	require.Equal(3, v)

	_, err = Fail[int](ErrTest).Unwrap(context.Background())
	require.ErrorIs(err, ErrTest)

	require.Equal(3, Succeed(3).UnwrapOr(context.Background(), 9))
	require.Equal(9, Fail[int](ErrTest).UnwrapOr(context.Background(), 9))

	got := Fail[int](ErrTest).UnwrapOrElse(context.Background(), func(e error) int {
		require.ErrorIs(e, ErrTest)
		return -1
	})
	require.Equal(-1, got)
}

func TestIsSettled(t *testing.T) {
	require := require.New(t)

	d := Deferred[int]()
	require.False(d.Task().IsSettled())

	d.Succeed(1)
	require.True(d.Task().IsSettled())
}
