package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"packagedsl/internal/domain/entity"
	"packagedsl/internal/domain/valueobject"
)

func sampleConfiguration() *entity.Configuration {
	index := valueobject.Index{
		Entries:      []string{"Cli"},
		Dependencies: []string{"Yams"},
		Modifiers: map[valueobject.ModifierKey][]string{
			valueobject.ModifierName: {`"Tool"`},
		},
	}
	return entity.NewConfiguration(index,
		entity.Product{
			Name:         "Cli",
			Dependencies: []string{"Yams"},
			ProductType:  valueobject.ProductTypeExecutable,
		},
		entity.Dependency{
			Name:         "Yams",
			Capabilities: valueobject.DependencyKindPackage | valueobject.DependencyKindTarget,
			Declaration:  `.package(url: "https://github.com/jpsim/Yams.git", from: "5.0.0")`,
		},
		entity.NewPlatformSet("Apple", valueobject.SupportedPlatform{OS: "macOS", Version: 14}),
	)
}

func TestNewConfigurationResponse(t *testing.T) {
	warnings := []valueobject.Warning{{Path: "Products/Cli.swift", Declaration: "Cli", Message: "dropped property"}}

	resp := NewConfigurationResponse(sampleConfiguration(), warnings)

	assert.Equal(t, []string{"Cli"}, resp.Index.Entries)
	assert.Equal(t, map[string][]string{"name": {`"Tool"`}}, resp.Index.Modifiers)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, ProductResponse{Name: "Cli", Type: "executable", Dependencies: []string{"Yams"}}, resp.Products[0])
	require.Len(t, resp.Dependencies, 1)
	assert.Equal(t, "package|target", resp.Dependencies[0].Kind)
	require.Len(t, resp.PlatformSets, 1)
	assert.Equal(t, []string{"SupportedPlatform.macOS(.v14)"}, resp.PlatformSets[0].Platforms)
	assert.Empty(t, resp.Targets)
	assert.Equal(t, []WarningResponse{{Path: "Products/Cli.swift", Declaration: "Cli", Message: "dropped property"}}, resp.Warnings)
}

func TestConfigurationResponse_Encoding(t *testing.T) {
	resp := NewConfigurationResponse(sampleConfiguration(), nil)

	t.Run("yaml", func(t *testing.T) {
		out, err := yaml.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(out), "products:\n")
		assert.Contains(t, string(out), "- name: Cli\n")
		assert.NotContains(t, string(out), "warnings:")
		assert.NotContains(t, string(out), "test_targets:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := json.Marshal(resp)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Contains(t, decoded, "index")
		assert.Contains(t, decoded, "platform_sets")
		assert.NotContains(t, decoded, "targets")
	})
}

func TestNewMissingSourceResponses(t *testing.T) {
	missing := []entity.MissingSource{
		{Source: entity.Origin{Kind: entity.OriginIndex}, Kind: entity.KindProduct, Name: "Cli"},
		{Source: entity.Origin{Kind: entity.OriginTarget, Name: "Core"}, Kind: entity.KindDependency, Name: "Yams"},
	}

	assert.Equal(t, []MissingSourceResponse{
		{Source: "index", Kind: "product", Name: "Cli"},
		{Source: "target Core", Kind: "dependency", Name: "Yams"},
	}, NewMissingSourceResponses(missing))
}
