package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/suggest/pkg/suggester"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Suggester interface {
	Observable
	suggester.Provider
}

type observableSuggester struct {
	name     string
	provider string

	suggester suggester.Provider

	requestMetric  metric.Int64Counter
	durationMetric metric.Float64Histogram
}

func NewSuggester(provider, name string, p suggester.Provider) Suggester {
	meter := otel.Meter(instrumentationName)

	requestMetric, _ := meter.Int64Counter("suggester.requests",
		metric.WithDescription("Number of upstream suggestion requests"),
	)

	durationMetric, _ := meter.Float64Histogram("suggester.duration",
		metric.WithDescription("Duration of upstream suggestion requests"),
		metric.WithUnit("s"),
	)

	return &observableSuggester{
		suggester: p,

		name:     name,
		provider: provider,

		requestMetric:  requestMetric,
		durationMetric: durationMetric,
	}
}

func (p *observableSuggester) otelSetup() {
}

func (p *observableSuggester) Suggest(ctx context.Context, query string, options *suggester.SuggestOptions) (*suggester.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "suggest "+p.name)
	defer span.End()

	timestamp := time.Now()

	result, err := p.suggester.Suggest(ctx, query, options)

	status := "ok"

	if err != nil {
		status = "error"

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String("suggester.provider", p.provider),
		attribute.String("suggester.name", p.name),
		attribute.String("status", status),
	)

	if p.requestMetric != nil {
		p.requestMetric.Add(ctx, 1, attrs)
	}

	if p.durationMetric != nil {
		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), attrs)
	}

	if EnableDebug {
		span.SetAttributes(attribute.String("query", query))

		if result != nil && len(result.Suggestions) > 0 {
			span.SetAttributes(attribute.StringSlice("suggestions", result.Suggestions))
		}
	}

	return result, err
}
