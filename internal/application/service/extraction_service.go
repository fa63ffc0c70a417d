package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"packagedsl/internal/application/common/slogger"
	"packagedsl/internal/domain/valueobject"
	"packagedsl/internal/port/outbound"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// ExtractionServiceConfig tunes an ExtractionService.
type ExtractionServiceConfig struct {
	Workers   int // Fragments extracted concurrently
	CacheSize int // Extractions cached by content hash, 0 disables the cache
}

// FragmentExtraction is the extraction of one fragment file.
type FragmentExtraction struct {
	Path       string
	Source     []byte
	Extraction valueobject.Extraction
}

// ExtractionService reads fragments from a store and extracts them in parallel.
type ExtractionService struct {
	store     outbound.FragmentStore
	extractor outbound.FragmentExtractor
	checker   outbound.SyntaxChecker
	metrics   *ExtractionMetrics
	cache     *lru.Cache[string, valueobject.Extraction]
	workers   int
}

// NewExtractionService creates an ExtractionService. checker and metrics may be nil.
func NewExtractionService(
	store outbound.FragmentStore,
	extractor outbound.FragmentExtractor,
	checker outbound.SyntaxChecker,
	metrics *ExtractionMetrics,
	config ExtractionServiceConfig,
) (*ExtractionService, error) {
	s := &ExtractionService{
		store:     store,
		extractor: extractor,
		checker:   checker,
		metrics:   metrics,
		workers:   config.Workers,
	}
	if s.workers <= 0 {
		s.workers = defaultWorkers
	}
	if config.CacheSize > 0 {
		cache, err := lru.New[string, valueobject.Extraction](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create extraction cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// ExtractAll extracts every path under root. Results are returned in the order of paths
// regardless of which worker finished first. The first failure cancels the rest.
func (s *ExtractionService) ExtractAll(ctx context.Context, root string, paths []string) ([]FragmentExtraction, error) {
	start := time.Now()
	results := make([]FragmentExtraction, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			fe, err := s.ExtractFile(gctx, root, path)
			if err != nil {
				return err
			}
			results[i] = fe
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slogger.LogPerformance(ctx, "extract_fragments", time.Since(start), slogger.Fields{
		"root":      root,
		"fragments": len(paths),
		"workers":   s.workers,
	})
	return results, nil
}

// ExtractFile reads and extracts a single fragment. Warnings carry the fragment path.
func (s *ExtractionService) ExtractFile(ctx context.Context, root, path string) (FragmentExtraction, error) {
	content, err := s.store.Read(ctx, root, path)
	if err != nil {
		return FragmentExtraction{}, err
	}

	start := time.Now()
	extraction, err := s.extract(ctx, content)
	s.metrics.RecordExtraction(ctx, time.Since(start), err)
	if err != nil {
		slogger.Error(ctx, "Failed to extract fragment", slogger.Fields{"path": path, "error": err.Error()})
		return FragmentExtraction{}, fmt.Errorf("failed to extract %s: %w", path, err)
	}
	s.metrics.RecordWarnings(ctx, WarningDropped, len(extraction.Warnings))

	warnings, err := s.checkSyntax(ctx, content)
	if err != nil {
		return FragmentExtraction{}, fmt.Errorf("failed to check syntax of %s: %w", path, err)
	}
	if len(warnings) > 0 {
		extraction.Warnings = append(slices.Clip(extraction.Warnings), warnings...)
	}

	extraction = extraction.WithPath(path)
	for _, w := range extraction.Warnings {
		slogger.Warn(ctx, w.Message, slogger.Fields{"path": w.Path, "declaration": w.Declaration})
	}

	return FragmentExtraction{Path: path, Source: content, Extraction: extraction}, nil
}

func (s *ExtractionService) extract(ctx context.Context, content []byte) (valueobject.Extraction, error) {
	if s.cache == nil {
		return s.extractor.Extract(ctx, content)
	}

	key := contentKey(content)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.RecordCacheLookup(ctx, true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(ctx, false)

	extraction, err := s.extractor.Extract(ctx, content)
	if err != nil {
		return valueobject.Extraction{}, err
	}
	s.cache.Add(key, extraction)
	return extraction, nil
}

func (s *ExtractionService) checkSyntax(ctx context.Context, content []byte) ([]valueobject.Warning, error) {
	if s.checker == nil {
		return nil, nil
	}
	issues, err := s.checker.Check(ctx, content)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordWarnings(ctx, WarningSyntax, len(issues))

	warnings := make([]valueobject.Warning, len(issues))
	for i, issue := range issues {
		warnings[i] = valueobject.Warning{Message: "syntax: " + issue.String()}
	}
	return warnings, nil
}

func contentKey(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
