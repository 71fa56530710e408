// Package logging provides the diagnostic side channel for the kernel.
// Every operator invocation and insertion emits a structured trace line
// through the global slog logger configured here; tracing has no effect
// on correctness and defaults to INFO-level text on stdout.
package logging
