package valueobject

import (
	"slices"
	"sort"
)

// Component is the raw record extracted from one type declaration with an inheritance clause.
type Component struct {
	Name           string
	InheritedTypes []string
	Properties     map[string]Property
}

// Inherits reports whether the declaration lists the given type.
func (c Component) Inherits(typeName string) bool {
	return slices.Contains(c.InheritedTypes, typeName)
}

// Property looks up a property by name.
func (c Component) Property(name string) (Property, bool) {
	p, ok := c.Properties[name]
	return p, ok
}

// PropertyNames returns the property names sorted lexically.
func (c Component) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (Component) parsingResult() {}
