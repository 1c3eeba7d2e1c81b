package godux

import "errors"

var (
	// ErrNilReducer is returned when a store is created or re-seeded
	// without a reducer.
	ErrNilReducer = errors.New("reducer must not be nil")

	// ErrNilListener is returned by Subscribe for a nil listener.
	ErrNilListener = errors.New("listener must not be nil")

	// ErrNilEnhancer is returned when a nil enhancer is supplied.
	ErrNilEnhancer = errors.New("enhancer must not be nil")

	// ErrEnhancerStacking is returned when more than one enhancer is
	// supplied to NewStore. Compose them into a single enhancer instead.
	ErrEnhancerStacking = errors.New("multiple enhancers supplied; compose them into a single enhancer with Compose")

	// ErrInvalidAction is returned by the base dispatch for values that are
	// not plain records.
	ErrInvalidAction = errors.New("actions must be plain records")

	// ErrUndefinedActionType is returned for actions without a defined
	// type tag.
	ErrUndefinedActionType = errors.New("actions must carry a defined type")

	// ErrDispatchInProgress is returned when dispatch, subscribe or
	// unsubscribe re-enter the store while the reducer is executing.
	ErrDispatchInProgress = errors.New("not allowed while the reducer is executing")

	// ErrNilObserver is returned by the observable bridge for nil
	// observers.
	ErrNilObserver = errors.New("observer must not be nil")

	// ErrNilActionCreator is returned when binding a nil action creator.
	ErrNilActionCreator = errors.New("action creator must not be nil")

	// ErrNilDispatcher is returned when binding action creators to a nil
	// dispatch function.
	ErrNilDispatcher = errors.New("dispatcher must not be nil")
)
