package swiftwriter

import (
	"context"
	"testing"

	"packagedsl/internal/adapter/outbound/extraction"
	"packagedsl/internal/domain/entity"
	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, src string) []valueobject.ParsingResult {
	t.Helper()
	result, err := extraction.NewExtractor().Extract(context.Background(), []byte(src))
	require.NoError(t, err, src)
	return result.Results
}

func TestWriteIndex_CommaPlacement(t *testing.T) {
	got := WriteIndex(valueobject.Index{
		Entries:      []string{"A"},
		Dependencies: []string{"B", "C"},
	})

	want := `import PackageDescription

let package = Package(
  entries: {
    A()
  },
  dependencies: {
    B()
    C()
  }
)
`
	assert.Equal(t, want, got)
}

func TestWriteIndex_Empty(t *testing.T) {
	assert.Equal(t, "import PackageDescription\n\nlet package = Package()\n", WriteIndex(valueobject.Index{}))
}

func TestWriteIndex_Modifiers(t *testing.T) {
	got := WriteIndex(valueobject.Index{
		SwiftSettings: []string{"StrictConcurrency"},
		Modifiers: map[valueobject.ModifierKey][]string{
			valueobject.ModifierDefaultLocalization: {".english"},
			valueobject.ModifierSupportedPlatforms:  {"SupportedPlatform.macOS(.v14)"},
		},
	})

	want := `import PackageDescription

let package = Package(
  swiftSettings: {
    StrictConcurrency()
  }
)
.supportedPlatforms {
  SupportedPlatform.macOS(.v14)
}
.defaultLocalization(.english)
`
	assert.Equal(t, want, got)
}

func TestWriteIndex_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		index valueobject.Index
	}{
		{"empty", valueobject.Index{}},
		{"entries only", valueobject.Index{Entries: []string{"App"}}},
		{
			name: "all categories",
			index: valueobject.Index{
				Entries:       []string{"App", "Cli", "App"},
				Dependencies:  []string{"Yams"},
				TestTargets:   []string{"AppTests"},
				SwiftSettings: []string{"Upcoming", "Strict"},
			},
		},
		{
			name: "modifiers",
			index: valueobject.Index{
				Entries: []string{"App"},
				Modifiers: map[valueobject.ModifierKey][]string{
					valueobject.ModifierName:                  {`"Demo"`},
					valueobject.ModifierSupportedPlatforms:    {"SupportedPlatform.macOS(.v14)", "SupportedPlatform.iOS(.v17)"},
					valueobject.ModifierSwiftLanguageVersions: {".v5", ".v6"},
					valueobject.ModifierProviders:             {},
				},
			},
		},
		{
			name: "modifiers without categories",
			index: valueobject.Index{
				Modifiers: map[valueobject.ModifierKey][]string{
					valueobject.ModifierCxxLanguageStandard: {".cxx20"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := extract(t, WriteIndex(tt.index))
			require.Len(t, results, 1)
			assert.Equal(t, tt.index, results[0])
		})
	}
}

func TestWriteComponent(t *testing.T) {
	got := WriteComponent(valueobject.Component{
		Name:           "Core",
		InheritedTypes: []string{"Product", "Target"},
		Properties: map[string]valueobject.Property{
			"productType":  {Name: "productType", Type: "ProductType", Code: []string{".library"}},
			"dependencies": {Name: "dependencies", Type: "any Dependencies", Code: []string{"Utils()", "Yams()"}},
		},
	})

	want := `import PackageDescription

struct Core: Product, Target {
  var dependencies: any Dependencies {
    Utils()
    Yams()
  }

  var productType: ProductType {
    .library
  }
}
`
	assert.Equal(t, want, got)
}

func TestWriteComponent_RoundTrip(t *testing.T) {
	component := valueobject.Component{
		Name:           "Networking",
		InheritedTypes: []string{"PackageDependency", "TargetDependency"},
		Properties: map[string]valueobject.Property{
			"dependency": {
				Name: "dependency",
				Type: "Package.Dependency",
				Code: []string{".package(\n    url: \"https://example.com/networking.git\",\n    from: \"1.0.0\"\n)"},
			},
			"package": {Name: "package", Type: "PackageDependency", Code: []string{"Networking()"}},
		},
	}

	results := extract(t, WriteComponent(component))
	require.Len(t, results, 1)
	assert.Equal(t, component, results[0])
}

func TestWrite_EntityRoundTrip(t *testing.T) {
	entities := []entity.Entity{
		entity.Product{
			Name:         "App",
			DisplayName:  `"App"`,
			Dependencies: []string{"Core", "Yams"},
			ProductType:  valueobject.ProductTypeExecutable,
		},
		entity.Dependency{
			Name:         "Yams",
			Capabilities: valueobject.DependencyKindPackage | valueobject.DependencyKindTarget,
			Declaration:  `.package(url: "https://github.com/jpsim/Yams.git", from: "5.0.0")`,
			Package:      "Yams",
		},
		entity.Target{Name: "Core", Dependencies: []string{"Yams"}},
		entity.TestTarget{Name: "CoreTests", Dependencies: []string{"Core"}},
		entity.NewPlatformSet("Apple",
			valueobject.SupportedPlatform{OS: "macOS", Version: 14},
			valueobject.SupportedPlatform{OS: "iOS", Version: 17},
		),
	}

	for _, e := range entities {
		t.Run(e.Kind().String(), func(t *testing.T) {
			results := extract(t, WriteComponent(e.Component()))
			require.Len(t, results, 1)

			component, ok := results[0].(valueobject.Component)
			require.True(t, ok)
			got, err := entity.Classify(component)
			require.NoError(t, err)
			assert.Equal(t, e, got)
		})
	}
}

func TestRenderer(t *testing.T) {
	r := NewRenderer()
	index := valueobject.Index{Entries: []string{"A"}}
	component := valueobject.Component{Name: "A", InheritedTypes: []string{"Target"}}

	assert.Equal(t, WriteIndex(index), r.RenderIndex(index))
	assert.Equal(t, WriteComponent(component), r.RenderComponent(component))
	assert.Equal(t,
		AssembleManifest(valueobject.SwiftVersion{Major: 6}, []string{"let a = 1"}, ""),
		r.RenderManifest(valueobject.SwiftVersion{Major: 6}, []string{"let a = 1"}, ""))
}
