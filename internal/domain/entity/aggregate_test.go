package entity

import (
	"testing"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	index := valueobject.Index{Entries: []string{"App"}}
	results := []valueobject.ParsingResult{
		component("Lib", []string{"Target"}),
		index,
		component("App", []string{"Product", "Target"},
			property("dependencies", "any Dependencies", "Lib()")),
	}

	cfg, err := Aggregate(results)
	require.NoError(t, err)
	assert.Equal(t, index, cfg.Index())
	assert.Equal(t, []Product{{Name: "App", Dependencies: []string{"Lib"}}}, cfg.Products())
	assert.Equal(t, []Target{{Name: "Lib"}}, cfg.Targets())
	assert.NoError(t, cfg.Validate())
}

func TestAggregate_IndexCardinality(t *testing.T) {
	full := valueobject.Index{Entries: []string{"App"}}
	other := valueobject.Index{TestTargets: []string{"AppTests"}}
	empty := valueobject.Index{}

	tests := []struct {
		name      string
		results   []valueobject.ParsingResult
		wantErr   error
		wantIndex valueobject.Index
	}{
		{name: "no index", results: nil, wantErr: domainerrors.ErrMissingIndex},
		{
			name:    "components only",
			results: []valueobject.ParsingResult{component("Lib", []string{"Target"})},
			wantErr: domainerrors.ErrMissingIndex,
		},
		{
			name:    "two non-empty indexes",
			results: []valueobject.ParsingResult{full, other},
			wantErr: domainerrors.ErrMultipleIndexes,
		},
		{name: "empty then full", results: []valueobject.ParsingResult{empty, full}, wantIndex: full},
		{name: "full then empty", results: []valueobject.ParsingResult{full, empty}, wantIndex: full},
		{name: "only empty", results: []valueobject.ParsingResult{empty, empty}, wantIndex: empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Aggregate(tt.results)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, cfg.Index())
		})
	}
}

func TestAggregate_UnsupportedComponentAborts(t *testing.T) {
	results := []valueobject.ParsingResult{
		valueobject.Index{},
		component("Helper", []string{"Codable"}),
	}
	cfg, err := Aggregate(results)
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedComponent)
	assert.Nil(t, cfg)
}

func TestConfiguration_CopyOnWrite(t *testing.T) {
	cfg := NewConfiguration(valueobject.Index{}, Product{Name: "App"}, Target{Name: "Core"})

	renamed := cfg.WithProducts(func(products []Product) []Product {
		products[0].Name = "Renamed"
		return products
	})

	assert.Equal(t, "App", cfg.Products()[0].Name)
	assert.Equal(t, "Renamed", renamed.Products()[0].Name)
	assert.Equal(t, cfg.Targets(), renamed.Targets())

	products := cfg.Products()
	products[0].Name = "Mutated"
	assert.Equal(t, "App", cfg.Products()[0].Name)

	assert.Equal(t, []Entity{Product{Name: "App"}, Target{Name: "Core"}}, cfg.Entities())

	withIndex := cfg.WithIndex(valueobject.Index{Entries: []string{"App"}})
	assert.Empty(t, cfg.Index().Entries)
	assert.Equal(t, []string{"App"}, withIndex.Index().Entries)
}
