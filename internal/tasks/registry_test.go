package tasks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRegistry_StartSupersedesSamePurpose(t *testing.T) {
	r := NewRegistry()

	first, tok1 := r.Start(context.Background(), "search")
	second, tok2 := r.Start(context.Background(), "search")

	require.ErrorIs(t, first.Err(), context.Canceled, "older task must be cancelled")
	require.NoError(t, second.Err())

	assert.False(t, r.current(tok1))
	assert.True(t, r.current(tok2))
	assert.False(t, r.Finish(tok1), "stale task must not commit")
	assert.True(t, r.Finish(tok2))
	assert.ErrorIs(t, second.Err(), context.Canceled, "finished task context is released")
	assert.Equal(t, 0, r.inFlight())
}

func TestRegistry_PurposesAreIndependent(t *testing.T) {
	r := NewRegistry()

	searchCtx, searchTok := r.Start(context.Background(), "search")
	_, detailTok := r.Start(context.Background(), "details")

	require.NoError(t, searchCtx.Err())
	assert.True(t, r.current(searchTok))
	assert.True(t, r.current(detailTok))
	assert.Equal(t, 2, r.inFlight())

	r.CancelAll()
	assert.Equal(t, 0, r.inFlight())
	assert.ErrorIs(t, searchCtx.Err(), context.Canceled)
}

func TestRegistry_Cancel(t *testing.T) {
	r := NewRegistry()

	ctx, tok := r.Start(context.Background(), "details")
	r.Cancel("details")

	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
	assert.False(t, r.Finish(tok))

	// cancelling an unknown purpose is a no-op
	r.Cancel("unknown")
}

func TestRegistry_ConcurrentStartsLeaveOneWinner(t *testing.T) {
	r := NewRegistry()

	const n = 50
	tokens := make([]Token, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, tokens[i] = r.Start(context.Background(), "search")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, tok := range tokens {
		if r.Finish(tok) {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}
