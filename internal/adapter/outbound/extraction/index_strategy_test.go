package extraction

import (
	"context"
	"testing"

	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractSource(t *testing.T, src string) valueobject.Extraction {
	t.Helper()
	extraction, err := NewExtractor().Extract(context.Background(), []byte(src))
	require.NoError(t, err)
	return extraction
}

func singleIndex(t *testing.T, src string) valueobject.Index {
	t.Helper()
	extraction := extractSource(t, src)
	require.Len(t, extraction.Results, 1)
	index, ok := extraction.Results[0].(valueobject.Index)
	require.True(t, ok, "expected an index, got %T", extraction.Results[0])
	return index
}

func TestIndexStrategy_Categories(t *testing.T) {
	index := singleIndex(t, `import PackageDescription

let package = Package(
  entries: {
    Core()
    Cli()
  },
  dependencies: {
    Yams()
    ArgumentParser()
  },
  testTargets: {
    CoreTests()
  },
  swiftSettings: {
    StrictConcurrency()
  }
)
`)

	assert.Equal(t, []string{"Core", "Cli"}, index.Entries)
	assert.Equal(t, []string{"Yams", "ArgumentParser"}, index.Dependencies)
	assert.Equal(t, []string{"CoreTests"}, index.TestTargets)
	assert.Equal(t, []string{"StrictConcurrency"}, index.SwiftSettings)
	assert.Nil(t, index.Modifiers)
}

func TestIndexStrategy_IgnoresNestedArguments(t *testing.T) {
	index := singleIndex(t, `let package = Package(
  name: "Ignored",
  entries: {
    Core(entries: Other())
    Cli()
  }
)`)

	assert.Equal(t, []string{"Core", "Cli"}, index.Entries)
	assert.Nil(t, index.Dependencies)
}

func TestIndexStrategy_Modifiers(t *testing.T) {
	index := singleIndex(t, `let package = Package(
  entries: {
    App()
  }
)
.supportedPlatforms {
  SupportedPlatform.macOS(.v14)
  SupportedPlatform.iOS(.v17)
}
.defaultLocalization(.english)
.swiftLanguageVersions(.v5, .v6)
.name()
`)

	assert.Equal(t, []string{"App"}, index.Entries)
	assert.Equal(t, map[valueobject.ModifierKey][]string{
		valueobject.ModifierSupportedPlatforms:    {"SupportedPlatform.macOS(.v14)", "SupportedPlatform.iOS(.v17)"},
		valueobject.ModifierDefaultLocalization:   {".english"},
		valueobject.ModifierSwiftLanguageVersions: {".v5", ".v6"},
		valueobject.ModifierName:                  {},
	}, index.Modifiers)
}

func TestIndexStrategy_UnknownModifierIgnored(t *testing.T) {
	index := singleIndex(t, `let package = Package(entries: { App() })
.somethingElse(.value)`)

	assert.Equal(t, []string{"App"}, index.Entries)
	assert.Nil(t, index.Modifiers)
}

func TestIndexStrategy_EmptyPackage(t *testing.T) {
	index := singleIndex(t, `let package = Package()`)
	assert.True(t, index.IsEmpty())
}

func TestIndexStrategy_OtherBindingsIgnored(t *testing.T) {
	extraction := extractSource(t, `let settings = Package(entries: { App() })`)
	assert.Empty(t, extraction.Results)
}
