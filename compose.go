package godux

// Compose combines unary functions from right to left:
// Compose(f, g, h)(x) is f(g(h(x))).
//
// With no arguments it returns the identity function; with a single argument
// it returns that function unchanged rather than wrapping it, so callers
// relying on function identity pay no extra frame. ApplyMiddleware uses it
// to fold the middleware chain into one dispatch function.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(x T) T { return x }
	case 1:
		return fns[0]
	default:
		return func(x T) T {
			for i := len(fns) - 1; i >= 0; i-- {
				x = fns[i](x)
			}
			return x
		}
	}
}
