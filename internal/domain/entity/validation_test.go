package entity

import (
	"testing"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMissing(t *testing.T, err error) []MissingSource {
	t.Helper()
	require.ErrorIs(t, err, domainerrors.ErrValidationFailure)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	return validation.Missing
}

func TestValidate_IndexEntryWithoutProduct(t *testing.T) {
	cfg := NewConfiguration(valueobject.Index{Entries: []string{"Foo"}})

	missing := requireMissing(t, cfg.Validate())
	assert.Equal(t, []MissingSource{
		{Source: Origin{Kind: OriginIndex}, Kind: KindProduct, Name: "Foo"},
	}, missing)
}

func TestValidate_RepeatedIndexNameReportedOnce(t *testing.T) {
	cfg := NewConfiguration(valueobject.Index{
		Entries:      []string{"Foo", "Foo"},
		Dependencies: []string{"Foo", "Bar", "Foo", "Bar"},
	})

	missing := requireMissing(t, cfg.Validate())
	assert.Equal(t, []MissingSource{
		{Source: Origin{Kind: OriginIndex}, Kind: KindProduct, Name: "Foo"},
		{Source: Origin{Kind: OriginIndex}, Kind: KindDependency, Name: "Foo"},
		{Source: Origin{Kind: OriginIndex}, Kind: KindDependency, Name: "Bar"},
	}, missing)
}

func TestValidate_ProductAbsentFromIndexIsAccepted(t *testing.T) {
	cfg := NewConfiguration(valueobject.Index{}, Product{Name: "Bar"})
	assert.NoError(t, cfg.Validate())
}

func TestValidate_DependencyExistence(t *testing.T) {
	index := valueobject.Index{Entries: []string{"App"}}
	app := Product{Name: "App", Dependencies: []string{"Lib"}}

	cfg := NewConfiguration(index, app)
	missing := requireMissing(t, cfg.Validate())
	assert.Equal(t, []MissingSource{
		{Source: Origin{Kind: OriginProduct, Name: "App"}, Kind: KindDependency, Name: "Lib"},
	}, missing)

	withTarget := cfg.WithTargets(func(targets []Target) []Target {
		return append(targets, Target{Name: "Lib"})
	})
	assert.NoError(t, withTarget.Validate())

	withDependency := cfg.WithDependencies(func(deps []Dependency) []Dependency {
		return append(deps, Dependency{Name: "Lib", Capabilities: valueobject.DependencyKindPackage})
	})
	assert.NoError(t, withDependency.Validate())

	// the receiver is unchanged
	assert.Error(t, cfg.Validate())
}

func TestValidate_CollectsEveryViolationInOrder(t *testing.T) {
	index := valueobject.Index{
		Entries:       []string{"App", "Missing"},
		Dependencies:  []string{"ArgumentParser", "Yams"},
		TestTargets:   []string{"AppTests", "GhostTests"},
		SwiftSettings: []string{"StrictConcurrency"},
	}
	cfg := NewConfiguration(index,
		Product{Name: "App", Dependencies: []string{"Core", "Network", "Core"}},
		Dependency{Name: "ArgumentParser", Capabilities: valueobject.DependencyKindPackage},
		Target{Name: "Core", Dependencies: []string{"Yams"}},
		TestTarget{Name: "AppTests", Dependencies: []string{"Undeclared"}},
	)

	missing := requireMissing(t, cfg.Validate())
	assert.Equal(t, []MissingSource{
		{Source: Origin{Kind: OriginProduct, Name: "App"}, Kind: KindDependency, Name: "Network"},
		{Source: Origin{Kind: OriginTarget, Name: "Core"}, Kind: KindDependency, Name: "Yams"},
		{Source: Origin{Kind: OriginIndex}, Kind: KindProduct, Name: "Missing"},
		{Source: Origin{Kind: OriginIndex}, Kind: KindDependency, Name: "Yams"},
		{Source: Origin{Kind: OriginIndex}, Kind: KindTestTarget, Name: "GhostTests"},
	}, missing)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Missing: []MissingSource{
		{Source: Origin{Kind: OriginProduct, Name: "App"}, Kind: KindDependency, Name: "Lib"},
		{Source: Origin{Kind: OriginIndex}, Kind: KindProduct, Name: "Foo"},
	}}
	assert.Equal(t,
		`2 missing source(s): product App references missing dependency "Lib"; index references missing product "Foo"`,
		err.Error())
}
