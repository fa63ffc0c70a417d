package cmd

import (
	"context"
	"io"

	"packagedsl/internal/adapter/outbound/extraction"
	"packagedsl/internal/adapter/outbound/filesystem"
	"packagedsl/internal/adapter/outbound/swiftwriter"
	"packagedsl/internal/adapter/outbound/treesitter"
	"packagedsl/internal/application/service"
	"packagedsl/internal/config"
	"packagedsl/internal/port/outbound"
)

// newPackageService wires the adapters selected by c into a PackageService. Metrics go
// to metricsOut when enabled and are flushed by Execute.
func newPackageService(ctx context.Context, c *config.Config, metricsOut io.Writer) (*service.PackageService, error) {
	provider, shutdown, err := newMeterProvider(ctx, c.Metrics.Enabled, metricsOut)
	if err != nil {
		return nil, err
	}
	shutdownTelemetry = shutdown

	metrics, err := service.NewExtractionMetrics(provider)
	if err != nil {
		return nil, err
	}

	var checker outbound.SyntaxChecker
	if c.Extraction.SyntaxCheck {
		checker = treesitter.NewSyntaxChecker(0)
	}

	store := filesystem.NewFragmentStore(c.Extraction.Extension)
	extractionService, err := service.NewExtractionService(store, extraction.NewExtractor(), checker, metrics,
		service.ExtractionServiceConfig{
			Workers:   c.Extraction.Workers,
			CacheSize: c.Extraction.CacheSize,
		})
	if err != nil {
		return nil, err
	}

	return service.NewPackageService(store, extractionService, swiftwriter.NewRenderer(), service.PackageServiceConfig{
		IndexFile:   c.Package.IndexFile,
		SupportFile: c.Package.SupportFile,
	}), nil
}
