package cmd

import (
	"context"
	"fmt"
	"io"

	"packagedsl/internal/version"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// newMeterProvider returns the provider extraction metrics are recorded on. When metrics
// are disabled it is a no-op provider. Otherwise the metrics are written to w as JSON when
// the returned shutdown function runs.
func newMeterProvider(
	ctx context.Context,
	enabled bool,
	w io.Writer,
) (metric.MeterProvider, func(context.Context) error, error) {
	if !enabled {
		return noop.NewMeterProvider(), func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", version.ApplicationName),
			attribute.String("service.version", version.GetVersion().Version),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create metrics resource: %w", err)
	}

	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create metrics exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	return provider, provider.Shutdown, nil
}
