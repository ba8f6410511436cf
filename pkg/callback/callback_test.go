package callback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAwait_ResolvesWithValue(t *testing.T) {
	v, err := Await(context.Background(), func(done func(error, int)) {
		done(nil, 42)
	})
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAwait_RejectsWithError(t *testing.T) {
	boom := errors.New("boom")
	v, err := Await(context.Background(), func(done func(error, int)) {
		done(boom, 0)
	})
	require.ErrorIs(t, err, boom)
	require.Zero(t, v)
}

func TestAwait_ForwardsLeadingArguments(t *testing.T) {
	// an operation with positional arguments ahead of its handler is
	// adapted by closing over them
	concat := func(a, b string, done func(error, string)) {
		done(nil, a+b)
	}
	v, err := Await(context.Background(), func(done func(error, string)) {
		concat("age", "book", done)
	})
	require.NoError(t, err)
	require.Equal(t, "agebook", v)
}

func TestAwait_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// the operation never invokes its handler
	_, err := Await(ctx, func(done func(error, int)) {})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPromise_OnlyFirstInvocationCounts(t *testing.T) {
	p := Go(func(done func(error, int)) {
		done(nil, 1)
		done(nil, 2)
		done(errors.New("late"), 3)
	})
	v, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)

	// repeated Wait observes the same outcome
	v2, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v2)
}
