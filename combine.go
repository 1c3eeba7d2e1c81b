package godux

import (
	"fmt"
	"sort"

	"github.com/hupe1980/godux/internal/util"
	"github.com/hupe1980/godux/logging"
)

// CombineOptions configures CombineReducers.
type CombineOptions struct {
	// Logger receives the combiner's development warnings (unexpected state
	// keys, missing reducers, empty reducer sets). Defaults to
	// logging.NoOpLogger, which silences them.
	Logger logging.Logger
}

// WithCombineLogger sets the warning sink for a combined reducer.
func WithCombineLogger(logger logging.Logger) func(*CombineOptions) {
	return func(o *CombineOptions) { o.Logger = logger }
}

// CombineReducers folds a mapping of slice name to reducer into a single
// reducer over a map-shaped state: each slice reducer owns the state under
// its key. Slice names are iterated in sorted order so per-dispatch behavior
// is deterministic.
//
// At construction every reducer is probed: fed nil state with the bootstrap
// action and with a freshly randomized unknown type, it must return defined
// state. A failed probe is captured and re-raised on every call of the
// combined reducer.
//
// The combined reducer preserves reference identity: when no slice changes,
// it returns the previous state reference untouched, which is the contract
// downstream consumers rely on to short-circuit.
func CombineReducers(reducers map[string]Reducer, optFns ...func(*CombineOptions)) Reducer {
	opts := CombineOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	finalReducers := make(map[string]Reducer, len(reducers))
	for key, reducer := range reducers {
		if reducer == nil {
			logger.Warn("no reducer provided for state key", "key", key)
			continue
		}
		finalReducers[key] = reducer
	}

	finalKeys := make([]string, 0, len(finalReducers))
	for key := range finalReducers {
		finalKeys = append(finalKeys, key)
	}
	sort.Strings(finalKeys)

	shapeErr := assertReducerShape(finalKeys, finalReducers)

	// Unexpected keys are warned about once each.
	unexpectedKeyCache := map[string]struct{}{}

	return func(state, action any) any {
		if shapeErr != nil {
			panic(shapeErr)
		}

		stateMap, _ := state.(map[string]any)
		switch {
		case state == nil:
			stateMap = map[string]any{}
			state = stateMap
		case stateMap == nil:
			logger.Warn("combined reducer received non-record state",
				"expected", "map[string]any",
				"got", util.DescribeKind(state),
			)
			stateMap = map[string]any{}
		}

		actionType, _ := TypeOf(action)

		if len(finalKeys) == 0 {
			logger.Warn("store does not have a valid reducer; pass a non-empty map of reducers to CombineReducers")
		}

		// Replace actions are allowed to carry keys the new composition has
		// not declared yet.
		if t, _ := actionType.(string); t != ActionTypeReplace {
			for key := range stateMap {
				if _, ok := finalReducers[key]; ok {
					continue
				}
				if _, warned := unexpectedKeyCache[key]; warned {
					continue
				}
				unexpectedKeyCache[key] = struct{}{}
				logger.Warn("unexpected key in state will be ignored",
					"key", key,
					"expected_keys", finalKeys,
				)
			}
		}

		hasChanged := false
		nextState := make(map[string]any, len(finalKeys))
		for _, key := range finalKeys {
			reducer := finalReducers[key]
			prev := stateMap[key]
			next := reducer(prev, action)
			if next == nil {
				panic(fmt.Errorf("the reducer for key %q returned nil when handling the action type %v; to ignore an action you must return the previous state (for unknown previous state, return the initial state, which may not be nil)", key, actionType))
			}
			nextState[key] = next
			hasChanged = hasChanged || !util.SameRef(next, prev)
		}
		hasChanged = hasChanged || len(finalKeys) != len(stateMap)

		if !hasChanged {
			return state
		}
		return nextState
	}
}

// assertReducerShape verifies every reducer yields defined state both for
// the bootstrap action and for a type it cannot know about.
func assertReducerShape(keys []string, reducers map[string]Reducer) error {
	for _, key := range keys {
		reducer := reducers[key]

		if initial := reducer(nil, Action{Type: ActionTypeInit}); initial == nil {
			return fmt.Errorf("the reducer for key %q returned nil during initialization: when fed nil state it must explicitly return its initial state, which may not be nil; if the state for this reducer is meant to be absent, use a dedicated sentinel value instead of nil", key)
		}

		if probed := reducer(nil, Action{Type: ProbeUnknownAction()}); probed == nil {
			return fmt.Errorf("the reducer for key %q returned nil when probed with a random type: don't try to handle %s or other actions in the %q namespace; unrecognized actions must fall through to the current state (or the initial state for nil state)", key, ActionTypeInit, "@@godux/")
		}
	}
	return nil
}
