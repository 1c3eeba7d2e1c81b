package godux_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/godux"
	"github.com/hupe1980/godux/internal/testutil"
)

func TestObservable_PushesCurrentStateOnSubscribe(t *testing.T) {
	store, err := godux.NewStore(testutil.Counter())
	require.NoError(t, err)

	var states []any
	_, err = store.Observable().Subscribe(godux.ObserverFunc(func(state any) {
		states = append(states, state)
	}))
	require.NoError(t, err)

	assert.Equal(t, []any{0}, states, "the current state is pushed synchronously on subscribe")
}

func TestObservable_PushesEveryCommittedState(t *testing.T) {
	store, err := godux.NewStore(testutil.Counter())
	require.NoError(t, err)

	var states []any
	subscription, err := store.Observable().Subscribe(godux.ObserverFunc(func(state any) {
		states = append(states, state)
	}))
	require.NoError(t, err)

	_, err = store.Dispatch(godux.Action{Type: testutil.ActionIncrement})
	require.NoError(t, err)
	_, err = store.Dispatch(godux.Action{Type: testutil.ActionIncrement})
	require.NoError(t, err)

	require.NoError(t, subscription.Unsubscribe())

	_, err = store.Dispatch(godux.Action{Type: testutil.ActionIncrement})
	require.NoError(t, err)

	assert.Equal(t, []any{0, 1, 2}, states)

	// Unsubscribe is idempotent, like every unsubscribe.
	require.NoError(t, subscription.Unsubscribe())
}

func TestObservable_SelfReference(t *testing.T) {
	store, err := godux.NewStore(testutil.Counter())
	require.NoError(t, err)

	observable := store.Observable()
	assert.Same(t, observable, observable.Observable())
}

func TestObservable_NilObserverRejected(t *testing.T) {
	store, err := godux.NewStore(testutil.Counter())
	require.NoError(t, err)

	_, err = store.Observable().Subscribe(nil)
	require.ErrorIs(t, err, godux.ErrNilObserver)
}
