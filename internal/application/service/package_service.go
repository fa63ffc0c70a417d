package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"time"

	"packagedsl/internal/application/common/slogger"
	"packagedsl/internal/domain/entity"
	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"
	"packagedsl/internal/port/outbound"
)

const defaultIndexFile = "Package.swift"

// PackageServiceConfig names the special files of a package directory.
type PackageServiceConfig struct {
	IndexFile   string // Path the index is written to, relative to the package root
	SupportFile string // Free-form Swift appended by Assemble and never extracted
}

// LoadResult is a loaded package configuration and the warnings raised while extracting it.
type LoadResult struct {
	Configuration *entity.Configuration
	Warnings      []valueobject.Warning
	Fragments     []FragmentExtraction
}

// PackageService loads, writes and assembles a package made of manifest fragments.
type PackageService struct {
	store      outbound.FragmentStore
	extraction *ExtractionService
	renderer   outbound.SourceRenderer
	config     PackageServiceConfig
}

// NewPackageService creates a PackageService.
func NewPackageService(
	store outbound.FragmentStore,
	extraction *ExtractionService,
	renderer outbound.SourceRenderer,
	config PackageServiceConfig,
) *PackageService {
	if config.IndexFile == "" {
		config.IndexFile = defaultIndexFile
	}
	return &PackageService{
		store:      store,
		extraction: extraction,
		renderer:   renderer,
		config:     config,
	}
}

// Load extracts every fragment under root, aggregates the results in discovery order and
// validates the configuration. Structural errors return no result. A validation failure
// returns the result together with the *entity.ValidationError so callers can still
// inspect what was loaded.
func (s *PackageService) Load(ctx context.Context, root string) (*LoadResult, error) {
	start := time.Now()

	paths, err := s.fragmentPaths(ctx, root)
	if err != nil {
		return nil, err
	}

	fragments, err := s.extraction.ExtractAll(ctx, root, paths)
	if err != nil {
		return nil, err
	}

	var (
		results  []valueobject.ParsingResult
		warnings []valueobject.Warning
	)
	for _, f := range fragments {
		results = append(results, f.Extraction.Results...)
		warnings = append(warnings, f.Extraction.Warnings...)
	}

	cfg, err := entity.Aggregate(results)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", root, err)
	}

	result := &LoadResult{Configuration: cfg, Warnings: warnings, Fragments: fragments}
	if err := cfg.Validate(); err != nil {
		slogger.Warn(ctx, "Package validation failed", slogger.Fields{"root": root, "error": err.Error()})
		return result, err
	}

	slogger.LogPerformance(ctx, "load_package", time.Since(start), slogger.Fields{
		"root":      root,
		"fragments": len(fragments),
		"entities":  len(cfg.Entities()),
		"warnings":  len(warnings),
	})
	return result, nil
}

// Write validates cfg and writes it below root: the index to the index file and every
// entity to <kind directory>/<name>.swift. It returns the written paths in write order.
func (s *PackageService) Write(ctx context.Context, cfg *entity.Configuration, root string) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	written := []string{s.config.IndexFile}
	if err := s.store.Write(ctx, root, s.config.IndexFile, []byte(s.renderer.RenderIndex(cfg.Index()))); err != nil {
		return nil, err
	}

	for _, e := range cfg.Entities() {
		p := EntityPath(e)
		if err := s.store.Write(ctx, root, p, []byte(s.renderer.RenderComponent(e.Component()))); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	slogger.Info(ctx, "Wrote package", slogger.Fields{"root": root, "files": len(written)})
	return written, nil
}

// FormatResult lists what Format wrote and which stale fragments it removed.
type FormatResult struct {
	Written []string
	Removed []string
}

// Format loads the package under root and writes it canonically to output. When output is
// root itself, every loaded fragment that contributed to the configuration but was not
// rewritten in place is removed, so the package keeps a single copy of each declaration.
// Fragments that produced no results are left alone.
func (s *PackageService) Format(ctx context.Context, root, output string) (*FormatResult, error) {
	loaded, err := s.Load(ctx, root)
	if err != nil {
		return nil, err
	}

	written, err := s.Write(ctx, loaded.Configuration, output)
	if err != nil {
		return nil, err
	}
	result := &FormatResult{Written: written}

	inPlace, err := samePath(root, output)
	if err != nil || !inPlace {
		return result, err
	}

	rewritten := make(map[string]bool, len(written))
	for _, p := range written {
		rewritten[path.Clean(p)] = true
	}
	for _, f := range loaded.Fragments {
		if rewritten[path.Clean(f.Path)] || len(f.Extraction.Results) == 0 {
			continue
		}
		if err := s.store.Remove(ctx, root, f.Path); err != nil {
			return result, err
		}
		result.Removed = append(result.Removed, f.Path)
	}

	if len(result.Removed) > 0 {
		slogger.Info(ctx, "Removed superseded fragments", slogger.Fields{"root": root, "files": result.Removed})
	}
	return result, nil
}

// Init writes a new package with one product named name. It refuses to touch a root
// that already holds fragments.
func (s *PackageService) Init(
	ctx context.Context,
	root, name string,
	productType valueobject.ProductType,
) ([]string, error) {
	existing, err := s.store.List(ctx, root)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%s: %w", root, domainerrors.ErrPackageExists)
	}

	index := valueobject.Index{Entries: []string{name}}
	product := entity.Product{Name: name, ProductType: productType}
	return s.Write(ctx, entity.NewConfiguration(index, product), root)
}

// Assemble loads the package under root and joins its fragments into a single manifest
// headed by the swift-tools-version line. The support file, when configured, goes last.
func (s *PackageService) Assemble(ctx context.Context, root string, version valueobject.SwiftVersion) (string, error) {
	loaded, err := s.Load(ctx, root)
	if err != nil {
		return "", err
	}

	sources := make([]string, len(loaded.Fragments))
	for i, f := range loaded.Fragments {
		sources[i] = string(f.Source)
	}

	var support string
	if s.config.SupportFile != "" {
		content, err := s.store.Read(ctx, root, s.config.SupportFile)
		if err != nil {
			return "", fmt.Errorf("failed to read support file: %w", err)
		}
		support = string(content)
	}

	return s.renderer.RenderManifest(version, sources, support), nil
}

func (s *PackageService) fragmentPaths(ctx context.Context, root string) ([]string, error) {
	all, err := s.store.List(ctx, root)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(all))
	for _, p := range all {
		if s.config.SupportFile != "" && path.Clean(p) == path.Clean(s.config.SupportFile) {
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", b, err)
	}
	return absA == absB, nil
}

// EntityPath is the fragment path an entity is written to.
func EntityPath(e entity.Entity) string {
	return path.Join(e.Kind().Directory(), e.Identifier()+".swift")
}
