package otel

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtocol(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_PROTOCOL", "")

	require.Equal(t, "http/protobuf", protocol(signalTraces))

	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "GRPC")
	require.Equal(t, "grpc", protocol(signalTraces))
	require.Equal(t, "grpc", protocol(signalLogs))

	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_PROTOCOL", "http/protobuf")
	require.Equal(t, "http/protobuf", protocol(signalLogs))
	require.Equal(t, "grpc", protocol(signalTraces))
}

func TestEnabled(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true,
	}

	for val, expected := range tests {
		t.Setenv("SUGGEST_TEST_FLAG", val)
		require.Equal(t, expected, enabled("SUGGEST_TEST_FLAG"), val)
	}
}

func TestSetupDisabled(t *testing.T) {
	if EnableTelemetry {
		t.Skip("telemetry enabled in environment")
	}

	shutdown, err := Setup(context.Background(), "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	h := http.NotFoundHandler()
	require.Equal(t, http.DefaultTransport, Transport(nil))
	require.NotNil(t, Handler(h, "test"))
}
