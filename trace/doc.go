// Package trace carries structured diagnostics out of the analyses.
//
// Analyses never log through a global. They accept a Recorder and emit one
// Event per algorithmic step (flare birth, merge, death, collapse, entity
// classified, ...). Nop discards everything and is the default; LogRecorder
// forwards events to a charmbracelet/log logger; Collector keeps them in
// memory for tests; Multi fans out to several recorders.
//
// Every top-level run is stamped with a RunID (a random UUID) so events from
// concurrent runs can be told apart. Span wraps OpenTelemetry span handling;
// with no provider installed the global tracer is a no-op.
package trace
