package entity

import (
	"fmt"
	"strings"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"
)

// OriginKind says where a missing name was referenced from.
type OriginKind int

const (
	OriginIndex OriginKind = iota
	OriginProduct
	OriginTarget
)

func (k OriginKind) String() string {
	switch k {
	case OriginIndex:
		return "index"
	case OriginProduct:
		return "product"
	case OriginTarget:
		return "target"
	}
	return "unknown"
}

// Origin is the index or the named entity that holds a reference.
type Origin struct {
	Kind OriginKind
	Name string
}

func (o Origin) String() string {
	if o.Kind == OriginIndex {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Name)
}

// MissingSource reports a name that is referenced but never declared.
type MissingSource struct {
	Source Origin
	Kind   Kind
	Name   string
}

func (m MissingSource) String() string {
	return fmt.Sprintf("%s references missing %s %q", m.Source, m.Kind, m.Name)
}

// ValidationError carries every MissingSource found by Validate.
type ValidationError struct {
	Missing []MissingSource
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		lines[i] = m.String()
	}
	return fmt.Sprintf("%d missing source(s): %s", len(e.Missing), strings.Join(lines, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domainerrors.ErrValidationFailure
}

// Validate checks that every dependency reference resolves and that every name listed in the
// index has a declaration. Declarations missing from the index are not reported.
func (c *Configuration) Validate() error {
	var missing []MissingSource
	missing = append(missing, c.missingDependencies()...)
	missing = append(missing, c.missingIndexDefinitions()...)
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (c *Configuration) missingDependencies() []MissingSource {
	declared := make(map[string]bool)
	for _, d := range c.dependencies {
		declared[d.Name] = true
	}
	for _, t := range c.targets {
		declared[t.Name] = true
	}

	var missing []MissingSource
	check := func(origin Origin, refs []string) {
		reported := make(map[string]bool)
		for _, ref := range refs {
			if declared[ref] || reported[ref] {
				continue
			}
			reported[ref] = true
			missing = append(missing, MissingSource{Source: origin, Kind: KindDependency, Name: ref})
		}
	}

	for _, p := range c.products {
		check(Origin{Kind: OriginProduct, Name: p.Name}, p.Dependencies)
	}
	for _, t := range c.targets {
		check(Origin{Kind: OriginTarget, Name: t.Name}, t.Dependencies)
	}
	return missing
}

func (c *Configuration) missingIndexDefinitions() []MissingSource {
	products := make(map[string]bool)
	for _, p := range c.products {
		products[p.Name] = true
	}
	dependencies := make(map[string]bool)
	for _, d := range c.dependencies {
		dependencies[d.Name] = true
	}
	testTargets := make(map[string]bool)
	for _, t := range c.testTargets {
		testTargets[t.Name] = true
	}

	checks := []struct {
		category valueobject.Category
		kind     Kind
		declared map[string]bool
	}{
		{valueobject.CategoryEntries, KindProduct, products},
		{valueobject.CategoryDependencies, KindDependency, dependencies},
		{valueobject.CategoryTestTargets, KindTestTarget, testTargets},
	}

	var missing []MissingSource
	origin := Origin{Kind: OriginIndex}
	for _, check := range checks {
		reported := make(map[string]bool)
		for _, name := range c.index.Names(check.category) {
			if check.declared[name] || reported[name] {
				continue
			}
			reported[name] = true
			missing = append(missing, MissingSource{Source: origin, Kind: check.kind, Name: name})
		}
	}
	return missing
}
