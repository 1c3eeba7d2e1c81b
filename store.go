package godux

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/godux/internal/util"
	"github.com/hupe1980/godux/logging"
)

// Reducer is a pure state transition function. It must never return nil;
// given nil state it must return its initial state; and it must return the
// previous state unchanged (same reference) when it ignores an action.
type Reducer func(state, action any) any

// Listener is a nullary callback invoked after each committed dispatch.
// Duplicate registrations create independent subscriptions.
type Listener func()

// UnsubscribeFunc removes a subscription. It is idempotent: calls after the
// first are no-ops. It fails if invoked while the reducer is executing.
type UnsubscribeFunc func() error

// Dispatcher submits an action to the store and returns it (or, for
// middleware-handled values, whatever the handling layer produced).
type Dispatcher func(action any) (any, error)

// StoreCreator builds a store from a reducer and optional preloaded state.
// Enhancers receive and return this signature.
type StoreCreator func(reducer Reducer, preloadedState any) (*Store, error)

// Enhancer is a higher-order store creator. Compose multiple enhancers into
// one with Compose before handing them to NewStore.
type Enhancer func(next StoreCreator) StoreCreator

// Options configures store construction.
type Options struct {
	// PreloadedState seeds the state tree before the bootstrap dispatch.
	// Slices present in it are handed to their reducers as previous state.
	PreloadedState any

	// Enhancers holds at most one enhancer. Supplying several is rejected;
	// compose them instead.
	Enhancers []Enhancer

	// Logger receives the store's debug messages and, when it implements
	// logging.DispatchTracer, per-dispatch traces. Development warnings of a
	// combined reducer go to the logger given to CombineReducers, not here.
	// Defaults to logging.NoOpLogger.
	Logger logging.Logger
}

// WithPreloadedState seeds the store with existing state.
func WithPreloadedState(state any) func(*Options) {
	return func(o *Options) { o.PreloadedState = state }
}

// WithEnhancer wraps store creation with an enhancer.
func WithEnhancer(enhancer Enhancer) func(*Options) {
	return func(o *Options) { o.Enhancers = append(o.Enhancers, enhancer) }
}

// WithLogger sets the store's debug and tracing sink.
func WithLogger(logger logging.Logger) func(*Options) {
	return func(o *Options) { o.Logger = logger }
}

type listenerEntry struct {
	fn Listener
}

// Store holds the state tree. The only way to change its state is to
// dispatch an action; read it with GetState and react to changes with
// Subscribe. A Store is owned by a single goroutine.
type Store struct {
	id      string
	logger  logging.Logger
	reducer Reducer
	state   any

	dispatch Dispatcher

	// Copy-on-write listener bookkeeping: while shared, currentListeners
	// and nextListeners are the same slice; the first mutation between two
	// dispatches clones it, and the next dispatch adopts the clone.
	currentListeners []*listenerEntry
	nextListeners    []*listenerEntry
	listenersShared  bool

	isDispatching bool
}

// NewStore creates a store holding the state tree managed by reducer.
//
// The bootstrap dispatch happens before NewStore returns: every reducer has
// produced its initial slice by then. When an enhancer is configured,
// creation is delegated to it with the base creator.
func NewStore(reducer Reducer, optFns ...func(*Options)) (*Store, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(opts.Enhancers) > 1 {
		return nil, fmt.Errorf("new store: %w", ErrEnhancerStacking)
	}

	create := newStoreCreator(opts.Logger)

	if len(opts.Enhancers) == 1 {
		enhancer := opts.Enhancers[0]
		if enhancer == nil {
			return nil, fmt.Errorf("new store: %w", ErrNilEnhancer)
		}
		create = enhancer(create)
	}

	return create(reducer, opts.PreloadedState)
}

// newStoreCreator returns the base StoreCreator that enhancers wrap.
func newStoreCreator(logger logging.Logger) StoreCreator {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return func(reducer Reducer, preloadedState any) (*Store, error) {
		if reducer == nil {
			return nil, fmt.Errorf("new store: %w", ErrNilReducer)
		}

		s := &Store{
			id:              uuid.NewString(),
			logger:          logger,
			reducer:         reducer,
			state:           preloadedState,
			listenersShared: true,
		}
		s.dispatch = s.baseDispatch

		// Seed every slice with its initial state.
		if _, err := s.baseDispatch(Action{Type: ActionTypeInit}); err != nil {
			return nil, err
		}

		logger.Debug("store created", "store_id", s.id)
		return s, nil
	}
}

// ID returns the store's instance identifier, as attached to log records.
func (s *Store) ID() string { return s.id }

// GetState returns the current state tree. No defensive copy is made: the
// reference is the one the last reducer call returned.
//
// GetState panics when called from inside a reducer; the reducer has
// already received the state as an argument. Pass it down the call chain
// instead of reading it from the store.
func (s *Store) GetState() any {
	if s.isDispatching {
		panic("godux: Store.GetState may not be called while the reducer is executing; the reducer already receives the state as an argument")
	}
	return s.state
}

// Dispatch submits an action through the store's current dispatch
// implementation (the base dispatch, or the middleware-augmented one on an
// enhanced store) and returns its result: the dispatched action from the
// base dispatch, or whatever a middleware layer that handled it produced.
func (s *Store) Dispatch(action any) (any, error) {
	return s.dispatch(action)
}

// Dispatcher returns the current dispatch implementation. Enhancers capture
// it as the innermost layer of whatever they build.
func (s *Store) Dispatcher() Dispatcher {
	return s.dispatch
}

// SetDispatcher replaces the dispatch implementation. Enhancers use this to
// layer additional behavior over the base dispatch; it is not meant for
// application code.
func (s *Store) SetDispatcher(dispatch Dispatcher) {
	if dispatch == nil {
		panic("godux: Store.SetDispatcher called with a nil dispatcher")
	}
	s.dispatch = dispatch
}

// baseDispatch is the innermost dispatch: validate the action, run the
// reducer, commit the state, notify the listener snapshot.
func (s *Store) baseDispatch(action any) (any, error) {
	if !util.IsPlainRecord(action) {
		return nil, fmt.Errorf("dispatch: %w; got %s (use middleware to dispatch other values)", ErrInvalidAction, util.DescribeKind(action))
	}
	actionType, ok := TypeOf(action)
	if !ok {
		return nil, fmt.Errorf("dispatch: %w; the dispatched %s has no type entry (did you misspell a constant?)", ErrUndefinedActionType, util.DescribeKind(action))
	}
	if s.isDispatching {
		return nil, fmt.Errorf("dispatch: reducers may not dispatch actions: %w", ErrDispatchInProgress)
	}

	prev := s.state
	start := time.Now()

	func() {
		s.isDispatching = true
		defer func() { s.isDispatching = false }()
		s.state = s.reducer(s.state, action)
	}()

	if !s.listenersShared {
		s.currentListeners = s.nextListeners
		s.listenersShared = true
	}
	listeners := s.currentListeners
	for _, entry := range listeners {
		entry.fn()
	}

	if tracer, ok := s.logger.(logging.DispatchTracer); ok {
		changed := !util.SameRef(prev, s.state)
		tracer.LogDispatch(actionType, time.Since(start), changed)
		if changed {
			tracer.LogStateChange(actionType, len(listeners))
		}
	}

	return action, nil
}

// Subscribe registers a change listener, invoked after every committed
// dispatch. It returns an idempotent unsubscribe function.
//
// Subscriptions and unsubscriptions performed inside a listener do not
// affect the dispatch currently notifying: each dispatch walks the snapshot
// of listeners taken when it began, and mutations target the pending list
// adopted by the next dispatch.
func (s *Store) Subscribe(listener Listener) (UnsubscribeFunc, error) {
	if listener == nil {
		return nil, fmt.Errorf("subscribe: %w", ErrNilListener)
	}
	if s.isDispatching {
		return nil, fmt.Errorf("subscribe: %w; subscribe before dispatching and read the state in the listener via Store.GetState", ErrDispatchInProgress)
	}

	entry := &listenerEntry{fn: listener}
	isSubscribed := true

	s.ensureCanMutateNextListeners()
	s.nextListeners = append(s.nextListeners, entry)

	return func() error {
		if !isSubscribed {
			return nil
		}
		if s.isDispatching {
			return fmt.Errorf("unsubscribe: %w", ErrDispatchInProgress)
		}
		isSubscribed = false

		s.ensureCanMutateNextListeners()
		for i, e := range s.nextListeners {
			if e == entry {
				s.nextListeners = append(s.nextListeners[:i], s.nextListeners[i+1:]...)
				break
			}
		}
		return nil
	}, nil
}

// ensureCanMutateNextListeners clones the listener list on first mutation
// after a dispatch, so an in-flight notification loop never observes the
// change.
func (s *Store) ensureCanMutateNextListeners() {
	if s.listenersShared {
		s.nextListeners = make([]*listenerEntry, len(s.currentListeners))
		copy(s.nextListeners, s.currentListeners)
		s.listenersShared = false
	}
}

// ReplaceReducer swaps the reducer the store uses to compute state, then
// dispatches a replace action through the base dispatch so the new
// composition can seed any previously absent slices. Needed for dynamic
// code loading and for hot reloading reducer registrations.
func (s *Store) ReplaceReducer(next Reducer) error {
	if next == nil {
		return fmt.Errorf("replace reducer: %w", ErrNilReducer)
	}

	s.reducer = next

	// The replace action bypasses middleware the same way the bootstrap
	// dispatch does.
	if _, err := s.baseDispatch(Action{Type: ActionTypeReplace}); err != nil {
		return err
	}

	s.logger.Debug("reducer replaced", "store_id", s.id)
	return nil
}
