// Package swiftsyntax parses the declarative subset of Swift used by package manifest
// fragments into a tree of typed nodes.
package swiftsyntax

import (
	"fmt"

	domainerrors "packagedsl/internal/domain/errors/domain"
)

// Kind is the closed set of node kinds produced by the parser.
type Kind int

const (
	KindSourceFile Kind = iota
	KindCodeBlockItem
	KindImportDecl
	KindVariableDecl
	KindIdentifierPattern
	KindTypeAnnotation
	KindIdentifierType
	KindMemberType
	KindSomeOrAnyType
	KindOtherType
	KindInitializer
	KindAccessorBlock
	KindAccessor
	KindStructDecl
	KindInheritedType
	KindMemberBlock
	KindOpaqueDecl
	KindFunctionCall
	KindLabeledExpr
	KindClosure
	KindDeclReference
	KindMemberAccess
	KindLiteral
	KindCollection
	KindTuple
	KindSequence
	KindPrefix
	KindSubscript
	KindOpaqueStmt
)

var kindNames = [...]string{
	KindSourceFile:        "SourceFile",
	KindCodeBlockItem:     "CodeBlockItem",
	KindImportDecl:        "ImportDecl",
	KindVariableDecl:      "VariableDecl",
	KindIdentifierPattern: "IdentifierPattern",
	KindTypeAnnotation:    "TypeAnnotation",
	KindIdentifierType:    "IdentifierType",
	KindMemberType:        "MemberType",
	KindSomeOrAnyType:     "SomeOrAnyType",
	KindOtherType:         "OtherType",
	KindInitializer:       "Initializer",
	KindAccessorBlock:     "AccessorBlock",
	KindAccessor:          "Accessor",
	KindStructDecl:        "StructDecl",
	KindInheritedType:     "InheritedType",
	KindMemberBlock:       "MemberBlock",
	KindOpaqueDecl:        "OpaqueDecl",
	KindFunctionCall:      "FunctionCall",
	KindLabeledExpr:       "LabeledExpr",
	KindClosure:           "Closure",
	KindDeclReference:     "DeclReference",
	KindMemberAccess:      "MemberAccess",
	KindLiteral:           "Literal",
	KindCollection:        "Collection",
	KindTuple:             "Tuple",
	KindSequence:          "Sequence",
	KindPrefix:            "Prefix",
	KindSubscript:         "Subscript",
	KindOpaqueStmt:        "OpaqueStmt",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsType reports whether the node is one of the type kinds.
func (k Kind) IsType() bool {
	switch k {
	case KindIdentifierType, KindMemberType, KindSomeOrAnyType, KindOtherType:
		return true
	}
	return false
}

// Position is a location in the source. Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is one element of the syntax tree.
//
// Name holds the identifier of declarations, patterns and references, the label of a
// labeled expression, and the keyword of opaque declarations and statements. Text is the
// node's source without surrounding trivia.
type Node struct {
	Kind     Kind
	Name     string
	Text     string
	Start    Position
	End      Position
	Children []*Node
}

// Child returns the first direct child of the given kind.
func (n *Node) Child(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// First returns the first node of the given kind in pre-order, including n itself.
func (n *Node) First(kinds ...Kind) *Node {
	var found *Node
	Walk(n, VisitorFunc(func(node *Node) VisitAction {
		for _, k := range kinds {
			if node.Kind == k {
				found = node
				return Stop
			}
		}
		return VisitChildren
	}))
	return found
}

// BoundName returns the identifier bound by a variable declaration's first pattern.
func (n *Node) BoundName() string {
	if n.Kind != KindVariableDecl {
		return ""
	}
	if p := n.Child(KindIdentifierPattern); p != nil {
		return p.Name
	}
	return ""
}

// Callee returns the called expression of a function call.
func (n *Node) Callee() *Node {
	if n.Kind != KindFunctionCall || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// VisitAction tells Walk how to continue after visiting a node.
type VisitAction int

const (
	VisitChildren VisitAction = iota
	SkipChildren
	Stop
)

// Visitor receives nodes in pre-order. Leave is called after a node's children,
// including when they were skipped.
type Visitor interface {
	Visit(node *Node) VisitAction
	Leave(node *Node)
}

// VisitorFunc adapts a function to a Visitor with no post-visit.
type VisitorFunc func(node *Node) VisitAction

func (f VisitorFunc) Visit(node *Node) VisitAction { return f(node) }
func (f VisitorFunc) Leave(*Node) {}

// Walk traverses the tree rooted at n. It returns false if the visitor stopped the walk.
func Walk(n *Node, v Visitor) bool {
	if n == nil {
		return true
	}
	switch v.Visit(n) {
	case Stop:
		return false
	case VisitChildren:
		for _, c := range n.Children {
			if !Walk(c, v) {
				return false
			}
		}
	}
	v.Leave(n)
	return true
}

// SyntaxError reports input the parser cannot handle.
type SyntaxError struct {
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return domainerrors.ErrSyntax
}
