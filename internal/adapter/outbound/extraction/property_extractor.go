package extraction

import (
	"strings"

	"packagedsl/internal/adapter/outbound/swiftsyntax"
	"packagedsl/internal/domain/valueobject"
)

// propertyExtractor collects the name, type and getter body of one variable declaration.
type propertyExtractor struct {
	name string
	typ  string
	code []string
}

func extractProperty(decl *swiftsyntax.Node) (valueobject.Property, error) {
	e := &propertyExtractor{}
	swiftsyntax.Walk(decl, e)
	return valueobject.NewProperty(e.name, e.typ, e.code)
}

func (e *propertyExtractor) Visit(node *swiftsyntax.Node) swiftsyntax.VisitAction {
	switch node.Kind {
	case swiftsyntax.KindIdentifierPattern:
		if e.name == "" {
			e.name = node.Name
		}
		return swiftsyntax.SkipChildren
	case swiftsyntax.KindTypeAnnotation, swiftsyntax.KindMemberType, swiftsyntax.KindSomeOrAnyType:
		if e.typ == "" {
			e.typ = strings.TrimSpace(node.Text)
		}
		return swiftsyntax.SkipChildren
	case swiftsyntax.KindInitializer:
		return swiftsyntax.SkipChildren
	case swiftsyntax.KindAccessor:
		if node.Name != "get" {
			return swiftsyntax.SkipChildren
		}
	case swiftsyntax.KindCodeBlockItem:
		e.code = append(e.code, strings.TrimSpace(node.Text))
		return swiftsyntax.SkipChildren
	}
	return swiftsyntax.VisitChildren
}

func (e *propertyExtractor) Leave(*swiftsyntax.Node) {}
