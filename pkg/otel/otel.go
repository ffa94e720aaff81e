package otel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
)

// ShutdownFunc flushes and stops the installed telemetry providers.
type ShutdownFunc func(ctx context.Context) error

// Setup installs OTLP exporters for traces, metrics and logs and routes the
// default slog logger through the log exporter. Without TELEMETRY it does
// nothing and returns a no-op shutdown.
func Setup(ctx context.Context, service string) (ShutdownFunc, error) {
	var shutdowns []ShutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error

		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}

		return errors.Join(errs...)
	}

	if !EnableTelemetry {
		return shutdown, nil
	}

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewSchemaless(attribute.String("service.name", service)),
	)

	if err != nil {
		return nil, err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracerProvider, err := newTracerProvider(ctx, resource)

	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tracerProvider)
	shutdowns = append(shutdowns, tracerProvider.Shutdown)

	meterProvider, err := newMeterProvider(ctx, resource)

	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	otel.SetMeterProvider(meterProvider)
	shutdowns = append(shutdowns, meterProvider.Shutdown)

	loggerProvider, err := newLoggerProvider(ctx, resource)

	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	global.SetLoggerProvider(loggerProvider)
	shutdowns = append(shutdowns, loggerProvider.Shutdown)

	slog.SetDefault(otelslog.NewLogger(instrumentationName, otelslog.WithLoggerProvider(loggerProvider)))

	return shutdown, nil
}

// Handler instruments an inbound HTTP handler if telemetry is enabled.
func Handler(h http.Handler, operation string) http.Handler {
	if !EnableTelemetry {
		return h
	}

	return otelhttp.NewHandler(h, operation)
}

// Transport instruments an outbound HTTP transport if telemetry is enabled.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	if !EnableTelemetry {
		return base
	}

	return otelhttp.NewTransport(base)
}
