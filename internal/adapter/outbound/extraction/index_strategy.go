package extraction

import (
	"strings"

	"packagedsl/internal/adapter/outbound/swiftsyntax"
	"packagedsl/internal/domain/valueobject"
)

// RootBindingName is the variable that holds the package index.
const RootBindingName = "package"

type indexState int

const (
	indexStateRoot indexState = iota
	indexStateVariable
	indexStateLabeledExpr
	indexStateCodeBlock
	indexStateModifier
)

// IndexStrategy captures the category lists and modifiers of the package root binding.
type IndexStrategy struct {
	state    indexState
	root     *swiftsyntax.Node
	labeled  *swiftsyntax.Node
	category valueobject.Category
	modifier valueobject.ModifierKey
	index    valueobject.Index

	// callDepth counts the calls entered below the root; a modifier ends when the
	// walker leaves the call at modifierDepth.
	callDepth     int
	modifierDepth int
	done          bool
}

// NewIndexStrategy creates an inactive index strategy.
func NewIndexStrategy() *IndexStrategy {
	return &IndexStrategy{}
}

func (s *IndexStrategy) Kind() StrategyKind { return StrategyIndex }

func (s *IndexStrategy) ShouldActivate(node *swiftsyntax.Node) bool {
	return node.Kind == swiftsyntax.KindVariableDecl && node.BoundName() == RootBindingName
}

func (s *IndexStrategy) Visit(node *swiftsyntax.Node) swiftsyntax.VisitAction {
	switch node.Kind {
	case swiftsyntax.KindVariableDecl:
		if s.root == nil {
			s.root = node
			s.state = indexStateVariable
			return swiftsyntax.VisitChildren
		}
		return swiftsyntax.SkipChildren

	case swiftsyntax.KindFunctionCall:
		s.callDepth++
		return swiftsyntax.VisitChildren

	case swiftsyntax.KindLabeledExpr:
		if s.state != indexStateVariable {
			return swiftsyntax.SkipChildren
		}
		category, ok := valueobject.ParseCategory(node.Name)
		if !ok {
			return swiftsyntax.SkipChildren
		}
		s.state = indexStateLabeledExpr
		s.labeled = node
		s.category = category
		return swiftsyntax.VisitChildren

	case swiftsyntax.KindCodeBlockItem:
		switch s.state {
		case indexStateLabeledExpr, indexStateCodeBlock:
			s.state = indexStateCodeBlock
			return swiftsyntax.VisitChildren
		case indexStateModifier:
			s.appendModifier(node.Text)
		}
		return swiftsyntax.SkipChildren

	case swiftsyntax.KindDeclReference:
		switch s.state {
		case indexStateCodeBlock:
			s.index.Append(s.category, node.Name)
			s.state = indexStateLabeledExpr
		case indexStateVariable, indexStateModifier:
			if key, err := valueobject.NewModifierKey(node.Name); err == nil {
				s.openModifier(key)
			}
		}
		return swiftsyntax.SkipChildren
	}
	return swiftsyntax.VisitChildren
}

func (s *IndexStrategy) Leave(node *swiftsyntax.Node) {
	switch node.Kind {
	case swiftsyntax.KindLabeledExpr:
		switch s.state {
		case indexStateLabeledExpr, indexStateCodeBlock:
			if node == s.labeled {
				s.state = indexStateVariable
				s.labeled = nil
			}
		case indexStateModifier:
			s.appendModifier(node.Text)
		}

	case swiftsyntax.KindFunctionCall:
		if s.state == indexStateModifier && s.callDepth == s.modifierDepth {
			s.state = indexStateVariable
		}
		s.callDepth--

	case swiftsyntax.KindVariableDecl:
		if node == s.root {
			s.done = true
		}
	}
}

func (s *IndexStrategy) openModifier(key valueobject.ModifierKey) {
	if s.index.Modifiers == nil {
		s.index.Modifiers = make(map[valueobject.ModifierKey][]string)
	}
	s.index.Modifiers[key] = []string{}
	s.modifier = key
	s.modifierDepth = s.callDepth
	s.state = indexStateModifier
}

func (s *IndexStrategy) appendModifier(text string) {
	s.index.Modifiers[s.modifier] = append(s.index.Modifiers[s.modifier], strings.TrimSpace(text))
}

func (s *IndexStrategy) Done() bool { return s.done }

func (s *IndexStrategy) Finalize() (valueobject.ParsingResult, error) {
	if s.root == nil {
		return nil, nil
	}
	return s.index, nil
}

func (s *IndexStrategy) Reset() {
	*s = IndexStrategy{}
}
