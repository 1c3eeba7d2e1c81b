// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing canonical reducers (counter,
// toggle), ordered trace recorders for listener and middleware ordering
// assertions, and a capturing logger for warning-sink tests. These helpers
// are intentionally minimal and are not intended for production usage.
package testutil
