package otel

import (
	"os"
	"strconv"
)

const instrumentationName = "github.com/adrianliechti/suggest"

var (
	// EnableDebug adds queries and suggestions to spans.
	EnableDebug = enabled("DEBUG")

	// EnableTelemetry turns on the OTLP exporters and HTTP instrumentation.
	EnableTelemetry = enabled("TELEMETRY")
)

// enabled reports whether the environment variable key is set to a truthy
// value. Unparsable non-empty values count as enabled.
func enabled(key string) bool {
	val := os.Getenv(key)

	if val == "" {
		return false
	}

	b, err := strconv.ParseBool(val)

	if err != nil {
		return true
	}

	return b
}

// Observable is implemented by providers that are already instrumented.
type Observable interface {
	otelSetup()
}
