package valueobject

import "fmt"

// Category names one of the lists held by the package index.
type Category string

// Index categories, in the order they are written.
const (
	CategoryEntries       Category = "entries"
	CategoryDependencies  Category = "dependencies"
	CategoryTestTargets   Category = "testTargets"
	CategorySwiftSettings Category = "swiftSettings"
)

// Categories returns every index category in write order.
func Categories() []Category {
	return []Category{CategoryEntries, CategoryDependencies, CategoryTestTargets, CategorySwiftSettings}
}

// ParseCategory maps an argument label to its category.
func ParseCategory(label string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == label {
			return c, true
		}
	}
	return "", false
}

// ModifierKey names a configuration call chained onto the package root.
type ModifierKey string

// Recognized modifiers, in the order they are written.
const (
	ModifierName                  ModifierKey = "name"
	ModifierSupportedPlatforms    ModifierKey = "supportedPlatforms"
	ModifierDefaultLocalization   ModifierKey = "defaultLocalization"
	ModifierSwiftLanguageVersions ModifierKey = "swiftLanguageVersions"
	ModifierCLanguageStandard     ModifierKey = "cLanguageStandard"
	ModifierCxxLanguageStandard   ModifierKey = "cxxLanguageStandard"
	ModifierPkgConfig             ModifierKey = "pkgConfig"
	ModifierProviders             ModifierKey = "providers"
)

// ModifierKeys returns the modifier vocabulary in write order.
func ModifierKeys() []ModifierKey {
	return []ModifierKey{
		ModifierName,
		ModifierSupportedPlatforms,
		ModifierDefaultLocalization,
		ModifierSwiftLanguageVersions,
		ModifierCLanguageStandard,
		ModifierCxxLanguageStandard,
		ModifierPkgConfig,
		ModifierProviders,
	}
}

// NewModifierKey creates a ModifierKey with validation.
func NewModifierKey(name string) (ModifierKey, error) {
	for _, k := range ModifierKeys() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown package modifier: %s", name)
}

// UsesBuilder reports whether the modifier takes a result-builder closure
// rather than an argument list.
func (k ModifierKey) UsesBuilder() bool {
	return k == ModifierSupportedPlatforms
}

// Index is the package root: which entities exist, by category, plus raw modifier fragments.
type Index struct {
	Entries       []string
	Dependencies  []string
	TestTargets   []string
	SwiftSettings []string
	Modifiers     map[ModifierKey][]string
}

// Names returns the names listed under a category.
func (i Index) Names(c Category) []string {
	switch c {
	case CategoryEntries:
		return i.Entries
	case CategoryDependencies:
		return i.Dependencies
	case CategoryTestTargets:
		return i.TestTargets
	case CategorySwiftSettings:
		return i.SwiftSettings
	}
	return nil
}

// Append adds a name to a category.
func (i *Index) Append(c Category, name string) {
	switch c {
	case CategoryEntries:
		i.Entries = append(i.Entries, name)
	case CategoryDependencies:
		i.Dependencies = append(i.Dependencies, name)
	case CategoryTestTargets:
		i.TestTargets = append(i.TestTargets, name)
	case CategorySwiftSettings:
		i.SwiftSettings = append(i.SwiftSettings, name)
	}
}

// IsEmpty reports whether the index names nothing and carries no modifiers.
func (i Index) IsEmpty() bool {
	for _, c := range Categories() {
		if len(i.Names(c)) > 0 {
			return false
		}
	}
	return len(i.Modifiers) == 0
}

func (Index) parsingResult() {}
