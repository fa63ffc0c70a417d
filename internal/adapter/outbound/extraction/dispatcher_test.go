package extraction

import (
	"errors"
	"testing"

	"packagedsl/internal/adapter/outbound/swiftsyntax"
	"packagedsl/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStrategy activates on a named struct and counts the nodes routed to it.
type countingStrategy struct {
	kind      StrategyKind
	trigger   string
	root      *swiftsyntax.Node
	visited   int
	resets    int
	failWith error
}

func (s *countingStrategy) Kind() StrategyKind { return s.kind }

func (s *countingStrategy) ShouldActivate(n *swiftsyntax.Node) bool {
	return n.Kind == swiftsyntax.KindStructDecl && n.Name == s.trigger
}

func (s *countingStrategy) Visit(n *swiftsyntax.Node) swiftsyntax.VisitAction {
	if s.root == nil {
		s.root = n
	}
	s.visited++
	return swiftsyntax.VisitChildren
}

func (s *countingStrategy) Leave(*swiftsyntax.Node) {}

func (s *countingStrategy) Done() bool { return false }

func (s *countingStrategy) Finalize() (valueobject.ParsingResult, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if s.root == nil {
		return nil, nil
	}
	return valueobject.Component{Name: s.root.Name}, nil
}

func (s *countingStrategy) Reset() {
	s.root = nil
	s.resets++
}

func parse(t *testing.T, src string) *swiftsyntax.Node {
	t.Helper()
	file, err := swiftsyntax.Parse([]byte(src))
	require.NoError(t, err)
	return file
}

func TestDispatcher_FinalizesAtEndOfWalk(t *testing.T) {
	s := &countingStrategy{kind: StrategyStructure, trigger: "A"}
	results, err := NewDispatcher(s).Run(parse(t, "struct A { var x: Int }\nlet y = 1"))

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].(valueobject.Component).Name)
	assert.Equal(t, 1, s.resets)
	assert.Greater(t, s.visited, 1)
}

func TestDispatcher_FirstMatchingStrategyWins(t *testing.T) {
	first := &countingStrategy{kind: StrategyIndex, trigger: "A"}
	second := &countingStrategy{kind: StrategyStructure, trigger: "A"}

	results, err := NewDispatcher(first, second).Run(parse(t, "struct A {}"))
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.NotZero(t, first.visited)
	assert.Zero(t, second.visited)
}

func TestDispatcher_NoActivationProducesNothing(t *testing.T) {
	s := &countingStrategy{kind: StrategyStructure, trigger: "Missing"}
	results, err := NewDispatcher(s).Run(parse(t, "struct A {}"))

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, s.visited)
}

func TestDispatcher_FinalizeError(t *testing.T) {
	boom := errors.New("boom")
	s := &countingStrategy{kind: StrategyStructure, trigger: "A", failWith: boom}

	results, err := NewDispatcher(s).Run(parse(t, "struct A {}"))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, results)
}

func TestStrategyKind_String(t *testing.T) {
	assert.Equal(t, "index", StrategyIndex.String())
	assert.Equal(t, "structure", StrategyStructure.String())
}
