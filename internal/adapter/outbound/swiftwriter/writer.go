// Package swiftwriter renders indexes, components and assembled manifests as Swift source.
package swiftwriter

import (
	"fmt"
	"strings"

	"packagedsl/internal/domain/valueobject"
)

const (
	indent        = "  "
	defaultImport = "import PackageDescription"
)

// Renderer renders fragments with the package functions of this package.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderIndex(index valueobject.Index) string {
	return WriteIndex(index)
}

func (r *Renderer) RenderComponent(component valueobject.Component) string {
	return WriteComponent(component)
}

func (r *Renderer) RenderManifest(version valueobject.SwiftVersion, fragments []string, support string) string {
	return AssembleManifest(version, fragments, support)
}

// withSeparators appends sep to every item except the last one.
func withSeparators(items []string, sep string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if i < len(items)-1 {
			item += sep
		}
		out[i] = item
	}
	return out
}

// writeLines writes each fragment on its own line. Only the first line of a multi-line
// fragment is indented so that its text is reproduced exactly.
func writeLines(b *strings.Builder, prefix string, fragments []string) {
	for _, f := range fragments {
		b.WriteString(prefix)
		b.WriteString(f)
		b.WriteByte('\n')
	}
}

// WriteIndex renders the package root. Categories without names are left out and the
// modifiers are chained after the Package call in vocabulary order.
func WriteIndex(index valueobject.Index) string {
	var blocks []string
	for _, category := range valueobject.Categories() {
		names := index.Names(category)
		if len(names) == 0 {
			continue
		}
		var block strings.Builder
		fmt.Fprintf(&block, "%s%s: {\n", indent, category)
		for _, name := range names {
			fmt.Fprintf(&block, "%s%s()\n", indent+indent, name)
		}
		block.WriteString(indent + "}")
		blocks = append(blocks, block.String())
	}

	var b strings.Builder
	b.WriteString(defaultImport + "\n\n")
	if len(blocks) == 0 {
		b.WriteString("let package = Package()")
	} else {
		b.WriteString("let package = Package(\n")
		writeLines(&b, "", withSeparators(blocks, ","))
		b.WriteString(")")
	}

	for _, key := range valueobject.ModifierKeys() {
		fragments, ok := index.Modifiers[key]
		if !ok {
			continue
		}
		if key.UsesBuilder() {
			fmt.Fprintf(&b, "\n.%s {\n", key)
			writeLines(&b, indent, fragments)
			b.WriteString("}")
			continue
		}
		fmt.Fprintf(&b, "\n.%s(%s)", key, strings.Join(fragments, ", "))
	}
	b.WriteByte('\n')
	return b.String()
}

// WriteComponent renders a struct with one computed property per Property, sorted by name.
func WriteComponent(component valueobject.Component) string {
	var b strings.Builder
	b.WriteString(defaultImport + "\n\n")
	b.WriteString("struct " + component.Name)
	if len(component.InheritedTypes) > 0 {
		b.WriteString(": " + strings.Join(withSeparators(component.InheritedTypes, ","), " "))
	}
	b.WriteString(" {\n")

	for i, name := range component.PropertyNames() {
		if i > 0 {
			b.WriteByte('\n')
		}
		p := component.Properties[name]
		fmt.Fprintf(&b, "%svar %s: %s {\n", indent, p.Name, p.Type)
		writeLines(&b, indent+indent, p.Code)
		b.WriteString(indent + "}\n")
	}

	b.WriteString("}\n")
	return b.String()
}
