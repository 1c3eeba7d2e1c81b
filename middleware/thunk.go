package middleware

import "github.com/hupe1980/godux"

// ThunkFunc is a deferred computation dispatched in place of a plain action.
// It receives the store's dispatch and getState and may dispatch any number
// of plain actions; its return value becomes the dispatch result.
type ThunkFunc func(dispatch godux.Dispatcher, getState func() any) (any, error)

// Thunk returns a middleware that intercepts function-shaped actions: a
// dispatched ThunkFunc (or a bare function of the same signature) is invoked
// with (dispatch, getState) instead of being forwarded, keeping
// function-typed values away from the base dispatch's plain-record check.
func Thunk() godux.Middleware {
	return func(api godux.MiddlewareAPI) func(next godux.Dispatcher) godux.Dispatcher {
		return func(next godux.Dispatcher) godux.Dispatcher {
			return func(action any) (any, error) {
				switch thunk := action.(type) {
				case ThunkFunc:
					return thunk(api.Dispatch, api.GetState)
				case func(godux.Dispatcher, func() any) (any, error):
					return thunk(api.Dispatch, api.GetState)
				default:
					return next(action)
				}
			}
		}
	}
}
