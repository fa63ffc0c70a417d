package service

import (
	"context"
	"time"

	"packagedsl/internal/version"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names for fragment extraction.
const (
	FragmentsExtractedCounterName = "packagedsl_fragments_extracted_total"
	ExtractionWarningsCounterName = "packagedsl_extraction_warnings_total"
	ExtractionCacheCounterName    = "packagedsl_extraction_cache_lookups_total"
	ExtractionDurationName        = "packagedsl_extraction_duration_seconds"
)

// Attribute keys used by the extraction metrics.
const (
	AttrOutcome     = "outcome"
	AttrCacheResult = "cache_result"
	AttrWarningKind = "warning_kind"
)

// Attribute values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	CacheHit       = "hit"
	CacheMiss      = "miss"
	WarningDropped = "dropped_property"
	WarningSyntax  = "syntax"
)

const meterName = "packagedsl/service"

// ExtractionMetrics records per-fragment extraction outcomes. A nil *ExtractionMetrics
// records nothing.
type ExtractionMetrics struct {
	fragments metric.Int64Counter
	warnings  metric.Int64Counter
	cache     metric.Int64Counter
	duration  metric.Float64Histogram
}

// NewExtractionMetrics creates the extraction instruments on provider.
func NewExtractionMetrics(provider metric.MeterProvider) (*ExtractionMetrics, error) {
	meter := provider.Meter(meterName, metric.WithInstrumentationVersion(version.GetVersion().Version))

	fragments, err := meter.Int64Counter(FragmentsExtractedCounterName,
		metric.WithDescription("Total number of fragments extracted"),
	)
	if err != nil {
		return nil, err
	}

	warnings, err := meter.Int64Counter(ExtractionWarningsCounterName,
		metric.WithDescription("Total number of warnings raised while extracting fragments"),
	)
	if err != nil {
		return nil, err
	}

	cache, err := meter.Int64Counter(ExtractionCacheCounterName,
		metric.WithDescription("Total number of extraction cache lookups"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(ExtractionDurationName,
		metric.WithDescription("Time spent extracting one fragment in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ExtractionMetrics{
		fragments: fragments,
		warnings:  warnings,
		cache:     cache,
		duration:  duration,
	}, nil
}

// RecordExtraction records one fragment and how long it took.
func (m *ExtractionMetrics) RecordExtraction(ctx context.Context, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	attrs := metric.WithAttributes(attribute.String(AttrOutcome, outcome))
	m.fragments.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordWarnings records count warnings of one kind.
func (m *ExtractionMetrics) RecordWarnings(ctx context.Context, kind string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.warnings.Add(ctx, int64(count), metric.WithAttributes(attribute.String(AttrWarningKind, kind)))
}

// RecordCacheLookup records a cache hit or miss.
func (m *ExtractionMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	m.cache.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrCacheResult, result)))
}
