package entity

import (
	"fmt"
	"strings"

	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"
)

// UnsupportedComponentError is returned when a component matches no entity kind.
type UnsupportedComponentError struct {
	Name           string
	InheritedTypes []string
}

func (e *UnsupportedComponentError) Error() string {
	return fmt.Sprintf("unsupported component %s: %s", e.Name, strings.Join(e.InheritedTypes, ", "))
}

func (e *UnsupportedComponentError) Unwrap() error {
	return domainerrors.ErrUnsupportedComponent
}

// classifier is one row of the classification table.
type classifier interface {
	kind() Kind
	classify(c valueobject.Component) (Entity, bool, error)
}

// descriptor pairs a predicate producing requirements R with a constructor consuming them.
// A predicate returns an error when the component is recognisably of its kind but malformed.
// The inverse direction is each entity's Component method.
type descriptor[E Entity, R any] struct {
	k         Kind
	matches   func(valueobject.Component) (R, bool, error)
	construct func(valueobject.Component, R) E
}

func (d descriptor[E, R]) kind() Kind { return d.k }

func (d descriptor[E, R]) classify(c valueobject.Component) (Entity, bool, error) {
	req, ok, err := d.matches(c)
	if err != nil || !ok {
		return nil, false, err
	}
	return d.construct(c, req), true, nil
}

// infallible adapts a predicate that cannot reject a component outright.
func infallible[R any](match func(valueobject.Component) (R, bool)) func(valueobject.Component) (R, bool, error) {
	return func(c valueobject.Component) (R, bool, error) {
		req, ok := match(c)
		return req, ok, nil
	}
}

// classifiers is tried in order; the first match wins. Product precedes Target
// because products also inherit the Target marker.
var classifiers = []classifier{
	descriptor[Product, struct{}]{k: KindProduct, matches: infallible(matchProduct), construct: newProduct},
	descriptor[Dependency, valueobject.DependencyKind]{
		k: KindDependency, matches: infallible(matchDependency), construct: newDependency,
	},
	descriptor[Target, struct{}]{k: KindTarget, matches: infallible(matchTarget), construct: newTarget},
	descriptor[TestTarget, struct{}]{k: KindTestTarget, matches: infallible(matchTestTarget), construct: newTestTarget},
	descriptor[PlatformSet, []valueobject.SupportedPlatform]{
		k: KindPlatformSet, matches: matchPlatformSet, construct: newPlatformSet,
	},
}

// Kinds returns the entity kinds in classification order.
func Kinds() []Kind {
	kinds := make([]Kind, len(classifiers))
	for i, c := range classifiers {
		kinds[i] = c.kind()
	}
	return kinds
}

// Classify converts a component into the first entity kind that accepts it. A component
// that a kind recognises but cannot convert fails with that kind's error.
func Classify(c valueobject.Component) (Entity, error) {
	for _, cl := range classifiers {
		e, ok, err := cl.classify(c)
		if err != nil {
			return nil, err
		}
		if ok {
			return e, nil
		}
	}
	return nil, &UnsupportedComponentError{Name: c.Name, InheritedTypes: c.InheritedTypes}
}
