package extraction

import (
	"context"
	"errors"
	"testing"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureStrategy_Component(t *testing.T) {
	extraction := extractSource(t, `import PackageDescription

struct Core: Product, Target {
    var name: String {
        "Core"
    }

    var dependencies: any Dependencies {
        Utils()
        Yams()
    }

    var productType: ProductType {
        .library
    }
}
`)

	require.Len(t, extraction.Results, 1)
	assert.Empty(t, extraction.Warnings)

	component, ok := extraction.Results[0].(valueobject.Component)
	require.True(t, ok)
	assert.Equal(t, "Core", component.Name)
	assert.Equal(t, []string{"Product", "Target"}, component.InheritedTypes)
	assert.Equal(t, map[string]valueobject.Property{
		"name":         {Name: "name", Type: "String", Code: []string{`"Core"`}},
		"dependencies": {Name: "dependencies", Type: "any Dependencies", Code: []string{"Utils()", "Yams()"}},
		"productType":  {Name: "productType", Type: "ProductType", Code: []string{".library"}},
	}, component.Properties)
}

func TestStructureStrategy_PropertyTypes(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want valueobject.Property
	}{
		{
			name: "member type",
			decl: "var dependency: Package.Dependency {\n .package(url: \"u\", from: \"1.0.0\")\n}",
			want: valueobject.Property{
				Name: "dependency",
				Type: "Package.Dependency",
				Code: []string{`.package(url: "u", from: "1.0.0")`},
			},
		},
		{
			name: "some type",
			decl: "var body: some SupportedPlatforms { SupportedPlatform.macOS(.v14) }",
			want: valueobject.Property{
				Name: "body",
				Type: "some SupportedPlatforms",
				Code: []string{"SupportedPlatform.macOS(.v14)"},
			},
		},
		{
			name: "explicit getter",
			decl: "var name: String {\n  get { \"A\" }\n  set { }\n}",
			want: valueobject.Property{Name: "name", Type: "String", Code: []string{`"A"`}},
		},
		{
			name: "nested statements stay in their fragment",
			decl: "var dependencies: any Dependencies {\n  Lib(option: {\n    inner()\n  })\n}",
			want: valueobject.Property{
				Name: "dependencies",
				Type: "any Dependencies",
				Code: []string{"Lib(option: {\n    inner()\n  })"},
			},
		},
		{
			name: "stored property",
			decl: "let name: String",
			want: valueobject.Property{Name: "name", Type: "String"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extraction := extractSource(t, "struct A: Target {\n"+tt.decl+"\n}")
			require.Len(t, extraction.Results, 1)
			component := extraction.Results[0].(valueobject.Component)
			assert.Equal(t, map[string]valueobject.Property{tt.want.Name: tt.want}, component.Properties)
		})
	}
}

func TestStructureStrategy_DropsPropertyWithoutType(t *testing.T) {
	extraction := extractSource(t, `struct A: Target {
  var name = "A"
  var dependencies: any Dependencies { B() }
}`)

	require.Len(t, extraction.Results, 1)
	component := extraction.Results[0].(valueobject.Component)
	assert.Equal(t, []string{"dependencies"}, component.PropertyNames())

	require.Len(t, extraction.Warnings, 1)
	assert.Equal(t, "A", extraction.Warnings[0].Declaration)
	assert.Contains(t, extraction.Warnings[0].Message, "missing type")
}

func TestStructureStrategy_DuplicateProperty(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), []byte(`struct A: Target {
  var name: String { "A" }
  var name: String { "B" }
}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateProperty)

	var dup *DuplicatePropertyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "A", dup.Component)
	assert.Equal(t, "name", dup.Property)
}

func TestStructureStrategy_NestedDeclarationsSkipped(t *testing.T) {
	extraction := extractSource(t, `struct Outer: Target {
  struct Inner: Product {
    var name: String { "Inner" }
  }
  var name: String { "Outer" }
}`)

	require.Len(t, extraction.Results, 1)
	component := extraction.Results[0].(valueobject.Component)
	assert.Equal(t, "Outer", component.Name)
	assert.Equal(t, []string{"name"}, component.PropertyNames())
}

func TestStructureStrategy_IgnoresPlainStructs(t *testing.T) {
	extraction := extractSource(t, `struct Helper {
  var name: String { "x" }
}`)
	assert.Empty(t, extraction.Results)
}

func TestExtract_SiblingDeclarationsInOrder(t *testing.T) {
	extraction := extractSource(t, `import PackageDescription

struct A: Target {
  var name: String { "A" }
}

let package = Package(entries: { A() })

struct B: TestTarget {
  var dependencies: any Dependencies { A() }
}
`)

	require.Len(t, extraction.Results, 3)
	assert.Equal(t, "A", extraction.Results[0].(valueobject.Component).Name)
	assert.Equal(t, []string{"A"}, extraction.Results[1].(valueobject.Index).Entries)
	assert.Equal(t, "B", extraction.Results[2].(valueobject.Component).Name)
}

func TestExtractor_ParseError(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), []byte("struct A: Target {"))
	assert.ErrorIs(t, err, domainerrors.ErrSyntax)
}

func TestExtractor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor().Extract(ctx, []byte("let package = Package()"))
	assert.ErrorIs(t, err, context.Canceled)
}
