package main

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

var meter = otel.Meter("github.com/icco/reversi/cmd/server")

var (
	evaluations metric.Int64Counter
	legalMoves  metric.Int64Histogram
)

func init() {
	var err error
	evaluations, err = meter.Int64Counter("reversi.evaluations",
		metric.WithDescription("Moves evaluated, by verdict"))
	if err != nil {
		log.Panicw("could not create counter", zap.Error(err))
	}

	legalMoves, err = meter.Int64Histogram("reversi.legal_moves",
		metric.WithDescription("Number of legal moves found per listing"))
	if err != nil {
		log.Panicw("could not create histogram", zap.Error(err))
	}
}

// setupMetrics exports otel instruments through the default prometheus
// registry served on /metrics.
func setupMetrics() (*sdkmetric.MeterProvider, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	return provider, nil
}

func recordEvaluation(ctx context.Context, valid bool) {
	evaluations.Add(ctx, 1, metric.WithAttributes(attribute.Bool("valid", valid)))
}

func recordLegalMoves(ctx context.Context, color string, n int) {
	legalMoves.Record(ctx, int64(n), metric.WithAttributes(attribute.String("color", color)))
}
