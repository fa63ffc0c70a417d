package swiftwriter

import (
	"testing"

	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
)

func TestAssembleManifest(t *testing.T) {
	fragments := []string{
		"import PackageDescription\n\nlet package = Package(entries: { App() })\n",
		"// swift-tools-version: 5.9\nimport PackageDescription\nimport Foundation\n\nstruct App: Product {\n  var name: String {\n    \"App\"\n  }\n}\n",
	}
	support := "import PackageDescription\n\nprotocol Product {}   \n"

	got := AssembleManifest(valueobject.SwiftVersion{Major: 6, Minor: 0}, fragments, support)

	want := `// swift-tools-version: 6.0

import PackageDescription
import Foundation

let package = Package(entries: { App() })

struct App: Product {
  var name: String {
    "App"
  }
}

protocol Product {}
`
	assert.Equal(t, want, got)
}

func TestAssembleManifest_NoImportsOrSupport(t *testing.T) {
	got := AssembleManifest(valueobject.SwiftVersion{Major: 5, Minor: 10, Patch: 1}, []string{"let a = 1"}, "")
	assert.Equal(t, "// swift-tools-version: 5.10.1\n\nlet a = 1\n", got)
}

func TestWithSeparators(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"single", []string{"A"}, []string{"A"}},
		{"many", []string{"A", "B", "C"}, []string{"A,", "B,", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withSeparators(tt.items, ","))
		})
	}
}
