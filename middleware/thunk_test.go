package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/godux"
	"github.com/hupe1980/godux/internal/testutil"
)

func newThunkStore(t *testing.T) *godux.Store {
	t.Helper()
	store, err := godux.NewStore(testutil.Counter(), godux.WithEnhancer(godux.ApplyMiddleware(Thunk())))
	require.NoError(t, err)
	return store
}

func TestThunk_InvokesThunkFunc(t *testing.T) {
	store := newThunkStore(t)

	result, err := store.Dispatch(ThunkFunc(func(dispatch godux.Dispatcher, getState func() any) (any, error) {
		if _, err := dispatch(godux.Action{Type: testutil.ActionIncrement}); err != nil {
			return nil, err
		}
		return getState(), nil
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, result)
	assert.Equal(t, 1, store.GetState())
}

func TestThunk_AcceptsBareFunction(t *testing.T) {
	store := newThunkStore(t)

	_, err := store.Dispatch(func(dispatch godux.Dispatcher, getState func() any) (any, error) {
		return dispatch(godux.Action{Type: testutil.ActionIncrement})
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.GetState())
}

func TestThunk_ForwardsPlainActions(t *testing.T) {
	store := newThunkStore(t)

	action := godux.Action{Type: testutil.ActionIncrement}
	result, err := store.Dispatch(action)
	require.NoError(t, err)

	assert.Equal(t, action, result)
	assert.Equal(t, 1, store.GetState())
}

func TestThunk_OtherFunctionsStillRejected(t *testing.T) {
	store := newThunkStore(t)

	// A function with a different shape is not a thunk and reaches the base
	// dispatch, which rejects it.
	_, err := store.Dispatch(func() {})
	require.ErrorIs(t, err, godux.ErrInvalidAction)
}
