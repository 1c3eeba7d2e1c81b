// Package middleware ships stock dispatch interceptors for godux stores:
//
//   - Logger: traces every action type and dispatch duration around next
//   - Thunk: dispatches deferred computations that receive (dispatch, getState)
//   - Recovery: logs a panicking dispatch with a stack snapshot, then re-panics
//
// Middlewares compose left to right on the way in:
//
//	store, err := godux.NewStore(reducer,
//	    godux.WithEnhancer(godux.ApplyMiddleware(
//	        middleware.Recovery(logger),
//	        middleware.Thunk(),
//	        middleware.Logger(logger),
//	    )),
//	)
package middleware
