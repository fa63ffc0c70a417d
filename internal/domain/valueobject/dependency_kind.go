package valueobject

import "strings"

// DependencyKind is a capability mask derived from the marker types a dependency inherits.
type DependencyKind uint8

const (
	DependencyKindPackage DependencyKind = 1 << iota
	DependencyKindTarget
)

// Marker types that contribute to the mask.
const (
	PackageDependencyMarker = "PackageDependency"
	TargetDependencyMarker  = "TargetDependency"
)

var dependencyMarkers = []struct {
	kind   DependencyKind
	marker string
}{
	{DependencyKindPackage, PackageDependencyMarker},
	{DependencyKindTarget, TargetDependencyMarker},
}

// DependencyKindFromTypes builds the mask from an inherited-type list. Unrelated
// types are ignored; a result of zero means the list names no marker.
func DependencyKindFromTypes(types []string) DependencyKind {
	var kind DependencyKind
	for _, t := range types {
		for _, m := range dependencyMarkers {
			if t == m.marker {
				kind |= m.kind
			}
		}
	}
	return kind
}

// Has reports whether every bit of other is set.
func (k DependencyKind) Has(other DependencyKind) bool {
	return other != 0 && k&other == other
}

// IsValid reports whether at least one capability is set.
func (k DependencyKind) IsValid() bool {
	return k&(DependencyKindPackage|DependencyKindTarget) != 0
}

// InheritedTypes returns the marker types for the mask in bit order.
func (k DependencyKind) InheritedTypes() []string {
	var types []string
	for _, m := range dependencyMarkers {
		if k&m.kind != 0 {
			types = append(types, m.marker)
		}
	}
	return types
}

func (k DependencyKind) String() string {
	var parts []string
	if k.Has(DependencyKindPackage) {
		parts = append(parts, "package")
	}
	if k.Has(DependencyKindTarget) {
		parts = append(parts, "target")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
