package godux

// MiddlewareAPI is the restricted store surface handed to each middleware:
// reading state and dispatching. Its Dispatch is a forwarding reference to
// whatever the fully composed dispatch ends up being, so a middleware may
// capture it during setup and still reach the complete chain at call time —
// actions it dispatches restart at the outermost layer.
type MiddlewareAPI struct {
	GetState func() any
	Dispatch Dispatcher
}

// Middleware is a curried dispatch interceptor: given the restricted store
// API it returns a layer that, given the next dispatcher inward, returns the
// augmented dispatcher. Layers run left to right on the way in; return
// values unwind in reverse order.
type Middleware func(api MiddlewareAPI) func(next Dispatcher) Dispatcher

// ApplyMiddleware builds the enhancer that layers the given middlewares
// around the store's dispatch:
//
//	store, err := godux.NewStore(reducer,
//	    godux.WithEnhancer(godux.ApplyMiddleware(middleware.Thunk(), middleware.Logger(logger))),
//	)
//
// Dispatching from a middleware's setup phase — before it has returned its
// inner layer — panics: the chain is not installed yet, so other middleware
// would never see that action.
func ApplyMiddleware(middlewares ...Middleware) Enhancer {
	return func(createStore StoreCreator) StoreCreator {
		return func(reducer Reducer, preloadedState any) (*Store, error) {
			store, err := createStore(reducer, preloadedState)
			if err != nil {
				return nil, err
			}

			var dispatch Dispatcher = func(any) (any, error) {
				panic("godux: dispatching while constructing your middleware is not allowed; other middleware would not be applied to this dispatch")
			}

			api := MiddlewareAPI{
				GetState: store.GetState,
				Dispatch: func(action any) (any, error) { return dispatch(action) },
			}

			chain := make([]func(Dispatcher) Dispatcher, 0, len(middlewares))
			for _, middleware := range middlewares {
				chain = append(chain, middleware(api))
			}

			dispatch = Compose(chain...)(store.Dispatcher())
			store.SetDispatcher(dispatch)

			return store, nil
		}
	}
}
