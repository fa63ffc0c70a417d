package entity

import "packagedsl/internal/domain/valueobject"

const (
	targetMarker     = "Target"
	testTargetMarker = "TestTarget"
)

// Target is a buildable module of the package.
type Target struct {
	Name         string
	Dependencies []string
}

func matchTarget(c valueobject.Component) (struct{}, bool) {
	return struct{}{}, c.Inherits(targetMarker)
}

func newTarget(c valueobject.Component, _ struct{}) Target {
	return Target{Name: c.Name, Dependencies: referencesFrom(c, "dependencies")}
}

func (t Target) Kind() Kind { return KindTarget }
func (t Target) Identifier() string { return t.Name }

func (t Target) Component() valueobject.Component {
	return dependencyListComponent(t.Name, targetMarker, t.Dependencies)
}

// TestTarget is a test module of the package.
type TestTarget struct {
	Name         string
	Dependencies []string
}

func matchTestTarget(c valueobject.Component) (struct{}, bool) {
	return struct{}{}, c.Inherits(testTargetMarker)
}

func newTestTarget(c valueobject.Component, _ struct{}) TestTarget {
	return TestTarget{Name: c.Name, Dependencies: referencesFrom(c, "dependencies")}
}

func (t TestTarget) Kind() Kind { return KindTestTarget }
func (t TestTarget) Identifier() string { return t.Name }

func (t TestTarget) Component() valueobject.Component {
	return dependencyListComponent(t.Name, testTargetMarker, t.Dependencies)
}

func dependencyListComponent(name, marker string, deps []string) valueobject.Component {
	props := make(map[string]valueobject.Property)
	putProperty(props, "dependencies", "any Dependencies", asFunctionCalls(deps)...)
	return valueobject.Component{
		Name:           name,
		InheritedTypes: []string{marker},
		Properties:     props,
	}
}
