package extraction

import (
	"fmt"
	"slices"
	"strings"

	"packagedsl/internal/adapter/outbound/swiftsyntax"
	domainerrors "packagedsl/internal/domain/errors/domain"
	"packagedsl/internal/domain/valueobject"
)

// DuplicatePropertyError is returned when a declaration defines a property name twice.
type DuplicatePropertyError struct {
	Component string
	Property  string
}

func (e *DuplicatePropertyError) Error() string {
	return fmt.Sprintf("%s declares property %q more than once", e.Component, e.Property)
}

func (e *DuplicatePropertyError) Unwrap() error {
	return domainerrors.ErrDuplicateProperty
}

// WarningFunc receives recoverable problems found during extraction.
type WarningFunc func(valueobject.Warning)

// StructureStrategy captures a struct declaration with an inheritance clause as a Component.
// Nested declarations are not captured.
type StructureStrategy struct {
	warn       WarningFunc
	root       *swiftsyntax.Node
	name       string
	inherited  []string
	properties []valueobject.Property
	done       bool
}

// NewStructureStrategy creates an inactive structure strategy. warn may be nil.
func NewStructureStrategy(warn WarningFunc) *StructureStrategy {
	if warn == nil {
		warn = func(valueobject.Warning) {}
	}
	return &StructureStrategy{warn: warn}
}

func (s *StructureStrategy) Kind() StrategyKind { return StrategyStructure }

func (s *StructureStrategy) ShouldActivate(node *swiftsyntax.Node) bool {
	return node.Kind == swiftsyntax.KindStructDecl && node.Child(swiftsyntax.KindInheritedType) != nil
}

func (s *StructureStrategy) Visit(node *swiftsyntax.Node) swiftsyntax.VisitAction {
	switch node.Kind {
	case swiftsyntax.KindStructDecl:
		if s.root != nil {
			return swiftsyntax.SkipChildren
		}
		s.root = node
		s.name = node.Name
	case swiftsyntax.KindInheritedType:
		s.inherited = append(s.inherited, strings.TrimSpace(node.Text))
		return swiftsyntax.SkipChildren
	case swiftsyntax.KindVariableDecl:
		s.addProperty(node)
		return swiftsyntax.SkipChildren
	}
	return swiftsyntax.VisitChildren
}

func (s *StructureStrategy) addProperty(decl *swiftsyntax.Node) {
	property, err := extractProperty(decl)
	if err != nil {
		s.warn(valueobject.Warning{
			Declaration: s.name,
			Message:     fmt.Sprintf("dropped property at %s: %v", decl.Start, err),
		})
		return
	}
	s.properties = append(s.properties, property)
}

func (s *StructureStrategy) Leave(node *swiftsyntax.Node) {
	if node == s.root {
		s.done = true
	}
}

func (s *StructureStrategy) Done() bool { return s.done }

func (s *StructureStrategy) Finalize() (valueobject.ParsingResult, error) {
	if s.root == nil {
		return nil, nil
	}

	properties := make(map[string]valueobject.Property, len(s.properties))
	for _, p := range s.properties {
		if _, exists := properties[p.Name]; exists {
			return nil, &DuplicatePropertyError{Component: s.name, Property: p.Name}
		}
		properties[p.Name] = p
	}

	return valueobject.Component{
		Name:           s.name,
		InheritedTypes: slices.Clone(s.inherited),
		Properties:     properties,
	}, nil
}

func (s *StructureStrategy) Reset() {
	*s = StructureStrategy{warn: s.warn}
}
