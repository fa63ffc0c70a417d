package entity

import "packagedsl/internal/domain/valueobject"

// Dependency is a package or target dependency declaration.
type Dependency struct {
	Name         string
	Capabilities valueobject.DependencyKind
	// Declaration is the raw package declaration, e.g. `.package(url: "...", from: "1.0.0")`.
	Declaration string
	// Package names the package dependency a target dependency is vended from.
	Package string
}

func matchDependency(c valueobject.Component) (valueobject.DependencyKind, bool) {
	kind := valueobject.DependencyKindFromTypes(c.InheritedTypes)
	return kind, kind.IsValid()
}

func newDependency(c valueobject.Component, kind valueobject.DependencyKind) Dependency {
	dep := Dependency{Name: c.Name, Capabilities: kind}
	if p, ok := c.Property("dependency"); ok {
		dep.Declaration, _ = p.FirstCode()
	}
	for _, name := range []string{"package", "dependencies"} {
		if refs := referencesFrom(c, name); len(refs) > 0 {
			dep.Package = refs[0]
			break
		}
	}
	return dep
}

func (d Dependency) Kind() Kind { return KindDependency }
func (d Dependency) Identifier() string { return d.Name }

func (d Dependency) Component() valueobject.Component {
	props := make(map[string]valueobject.Property)
	if d.Declaration != "" {
		putProperty(props, "dependency", "Package.Dependency", d.Declaration)
	}
	if d.Package != "" {
		putProperty(props, "package", "PackageDependency", d.Package+"()")
	}
	return valueobject.Component{
		Name:           d.Name,
		InheritedTypes: d.Capabilities.InheritedTypes(),
		Properties:     props,
	}
}
