package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/godux"
	"github.com/hupe1980/godux/internal/testutil"
)

func TestRecovery_LogsAndRepanics(t *testing.T) {
	capture := &testutil.CaptureLogger{}

	reducer := godux.CombineReducers(map[string]godux.Reducer{
		"a": testutil.Counter(),
		"fragile": func(state, action any) any {
			if actionType, _ := godux.TypeOf(action); actionType == "BOOM" {
				return nil
			}
			if state == nil {
				return 0
			}
			return state
		},
	})

	store, err := godux.NewStore(reducer, godux.WithEnhancer(godux.ApplyMiddleware(Recovery(capture))))
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = store.Dispatch(godux.Action{Type: "BOOM"})
	})

	require.Len(t, capture.Errors, 1)
	assert.Contains(t, capture.Errors[0], "dispatch panicked")
	assert.Contains(t, capture.Errors[0], "BOOM")
}

func TestRecovery_PassesThroughCleanDispatches(t *testing.T) {
	capture := &testutil.CaptureLogger{}
	store, err := godux.NewStore(testutil.Counter(), godux.WithEnhancer(godux.ApplyMiddleware(Recovery(capture))))
	require.NoError(t, err)

	_, err = store.Dispatch(godux.Action{Type: testutil.ActionIncrement})
	require.NoError(t, err)
	assert.Equal(t, 1, store.GetState())
	assert.Empty(t, capture.Errors)
}
