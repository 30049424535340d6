package operators

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/realpha/eitherway/results"
	"github.com/realpha/eitherway/tasks"
	"github.com/stretchr/testify/require"
)

var ErrTest = errors.New("test error")

func TestResultPipeline(t *testing.T) {
	require := require.New(t)

	pipeline := Pipe3(
		AndThen(func(s string) results.Result[int] {
			return results.From(strconv.Atoi(s))
		}),
		Map(func(n int) int { return n * 2 }),
		UnwrapOr[int](-1),
	)

	require.Equal(42, pipeline(results.Ok("21")))
	require.Equal(-1, pipeline(results.Ok("no number")))
	require.Equal(-1, pipeline(results.Err[string](ErrTest)))
}

func TestOperatorMethodParity(t *testing.T) {
	require := require.New(t)

	wrap := func(e error) error { return fmt.Errorf("wrapped: %w", e) }
	start := results.Err[int](ErrTest)

	viaMethod := start.MapErr(wrap)
	viaOperator := MapErr[int](wrap)(start)
	require.Equal(viaMethod.Err().Error(), viaOperator.Err().Error())

	recoverFn := func(error) results.Result[int] { return results.Ok(7) }
	require.Equal(start.OrElse(recoverFn), OrElse(recoverFn)(start))

	check := func(n int) error {
		if n < 0 {
			return ErrTest
		}
		return nil
	}
	require.Equal(results.Ok(5).Trip(check), Trip(check)(results.Ok(5)))
	require.Equal(results.Ok(-5).Trip(check), Trip(check)(results.Ok(-5)))

	rise := func(error) results.Result[int] { return results.Err[int](errors.New("again")) }
	require.Equal(start.Rise(rise).Err(), Rise(rise)(start).Err())
}

func TestSideEffectOperators(t *testing.T) {
	require := require.New(t)

	var okSeen, errSeen bool
	var tapped bool

	out := Pipe3(
		Tap(func(results.Result[int]) { tapped = true }),
		Inspect(func(int) { okSeen = true }),
		InspectErr[int](func(error) { errSeen = true }),
	)(results.Ok(1))

	require.Equal(results.Ok(1), out)
	require.True(tapped)
	require.True(okSeen)
	require.False(errSeen)
}

func TestTaskOperators(t *testing.T) {
	require := require.New(t)

	pipeline := Pipe2(
		TaskMap(func(n int) int { return n + 1 }),
		TaskAndThen(func(n int) results.Result[string] {
			return results.Ok(strconv.Itoa(n))
		}),
	)

	r, err := pipeline(tasks.Succeed(41)).Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok("42"), r)

	recovered := Pipe2(
		TaskMapErr[int](func(e error) error { return fmt.Errorf("wrapped: %w", e) }),
		TaskOrElse(func(error) results.Result[int] { return results.Ok(0) }),
	)

	r2, err := recovered(tasks.Fail[int](ErrTest)).Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(0), r2)

	var tapped bool
	r2, err = TaskTap[int](func(results.Result[int]) { tapped = true })(tasks.Succeed(1)).Await(context.Background())
	require.NoError(err)
	require.Equal(results.Ok(1), r2)
	require.True(tapped)
}
