package middleware

import (
	"runtime"

	"github.com/hupe1980/godux"
	"github.com/hupe1980/godux/logging"
)

// Recovery returns a middleware that logs a panicking downstream dispatch —
// a reducer shape violation, a listener blowing up — together with a stack
// snapshot, then re-panics so dispatch semantics are unchanged. Place it
// first so it wraps the whole chain.
func Recovery(logger logging.Logger) godux.Middleware {
	return func(api godux.MiddlewareAPI) func(next godux.Dispatcher) godux.Dispatcher {
		return func(next godux.Dispatcher) godux.Dispatcher {
			return func(action any) (any, error) {
				defer func() {
					if r := recover(); r != nil {
						actionType, _ := godux.TypeOf(action)
						stack := make([]byte, 4096)
						n := runtime.Stack(stack, false)
						logger.Error("dispatch panicked",
							"action_type", actionType,
							"panic", r,
							"stack_trace", string(stack[:n]),
						)
						panic(r)
					}
				}()
				return next(action)
			}
		}
	}
}
