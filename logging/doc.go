// Package logging provides a minimal logging interface and the structured
// sink used throughout godux.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the store, the reducer combiner and the stock
// middlewares use for warnings and tracing. This package includes:
//
//   - Logger interface for dependency injection
//   - DispatchTracer, the optional extension through which the store emits
//     structured dispatch traces (LogDispatch, LogStateChange)
//   - StoreLogger, a leveled slog-backed implementation of both
//   - NoOpLogger for silent operation (the default everywhere)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	store, err := godux.NewStore(reducer, godux.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
