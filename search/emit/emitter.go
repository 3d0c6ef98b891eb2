package emit

// Emitter receives and processes observability events from search runs.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files, syslog
//   - Distributed tracing: OpenTelemetry, Jaeger, Zipkin
//   - In-memory capture for tests and debugging
//
// Implementations should be:
//   - Non-blocking: a slow emitter slows the search loop directly
//   - Resilient: handle failures gracefully (don't crash the search)
type Emitter interface {
	// Emit sends an observability event to the configured backend.
	//
	// Emit should not panic. Errors should be logged internally.
	Emit(event Event)
}
