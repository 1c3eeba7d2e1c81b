package godux

import "fmt"

// ActionCreator builds an action from its arguments.
type ActionCreator func(args ...any) any

// BoundActionCreator is an action creator wired to a dispatcher: calling it
// dispatches the produced action and returns the dispatch result.
type BoundActionCreator func(args ...any) (any, error)

// BindActionCreator wraps a single action creator so that calling it
// dispatches the action it produces.
func BindActionCreator(creator ActionCreator, dispatch Dispatcher) (BoundActionCreator, error) {
	if creator == nil {
		return nil, fmt.Errorf("bind action creator: %w", ErrNilActionCreator)
	}
	if dispatch == nil {
		return nil, fmt.Errorf("bind action creator: %w", ErrNilDispatcher)
	}
	return func(args ...any) (any, error) {
		return dispatch(creator(args...))
	}, nil
}

// BindActionCreators wraps every creator in the map, preserving its shape.
// nil entries are skipped. The typical use is handing dispatch-ignorant
// components a bundle of ready-to-call mutators without passing them the
// store itself.
func BindActionCreators(creators map[string]ActionCreator, dispatch Dispatcher) (map[string]BoundActionCreator, error) {
	if dispatch == nil {
		return nil, fmt.Errorf("bind action creators: %w", ErrNilDispatcher)
	}
	bound := make(map[string]BoundActionCreator, len(creators))
	for name, creator := range creators {
		if creator == nil {
			continue
		}
		b, err := BindActionCreator(creator, dispatch)
		if err != nil {
			return nil, err
		}
		bound[name] = b
	}
	return bound, nil
}
