package middleware

import (
	"time"

	"github.com/hupe1980/godux"
	"github.com/hupe1980/godux/logging"
)

// Logger returns a middleware that traces every action flowing through
// dispatch: the type on the way in, the duration and outcome on the way out.
// Place it last so it observes the actions the other layers actually forward.
func Logger(logger logging.Logger) godux.Middleware {
	return func(api godux.MiddlewareAPI) func(next godux.Dispatcher) godux.Dispatcher {
		return func(next godux.Dispatcher) godux.Dispatcher {
			return func(action any) (any, error) {
				actionType, _ := godux.TypeOf(action)
				start := time.Now()

				result, err := next(action)
				if err != nil {
					logger.Error("dispatch failed",
						"action_type", actionType,
						"duration", time.Since(start),
						"error", err,
					)
					return result, err
				}

				logger.Debug("action dispatched",
					"action_type", actionType,
					"duration", time.Since(start),
				)
				return result, nil
			}
		}
	}
}
