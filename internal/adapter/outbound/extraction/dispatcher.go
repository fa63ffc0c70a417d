// Package extraction turns parsed manifest fragments into parsing results by routing the
// syntax tree through pluggable extraction strategies.
package extraction

import (
	"packagedsl/internal/adapter/outbound/swiftsyntax"
	"packagedsl/internal/domain/valueobject"
)

// StrategyKind identifies a family of strategies. At most one strategy of a kind is active.
type StrategyKind int

const (
	StrategyIndex StrategyKind = iota
	StrategyStructure
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyIndex:
		return "index"
	case StrategyStructure:
		return "structure"
	}
	return "unknown"
}

// Strategy incrementally builds one ParsingResult from the nodes routed to it while active.
type Strategy interface {
	Kind() StrategyKind
	// ShouldActivate reports whether the node starts a region this strategy extracts.
	ShouldActivate(node *swiftsyntax.Node) bool
	Visit(node *swiftsyntax.Node) swiftsyntax.VisitAction
	Leave(node *swiftsyntax.Node)
	// Done reports whether the walker has left the node that activated the strategy.
	Done() bool
	// Finalize returns the captured result, or nil if nothing was captured.
	Finalize() (valueobject.ParsingResult, error)
	Reset()
}

// Dispatcher walks a tree once, routing each node to at most one active strategy.
type Dispatcher struct {
	strategies []Strategy
	active     Strategy
	results    []valueobject.ParsingResult
	err        error
}

// NewDispatcher creates a dispatcher. Activation predicates are queried in the given order.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	return &Dispatcher{strategies: strategies}
}

// Run walks the tree and returns the results in activation order. A finalization error
// aborts the walk and no results are returned.
func (d *Dispatcher) Run(root *swiftsyntax.Node) ([]valueobject.ParsingResult, error) {
	d.results, d.err, d.active = nil, nil, nil

	swiftsyntax.Walk(root, d)
	if d.err == nil && d.active != nil {
		d.finalizeActive()
	}
	if d.err != nil {
		return nil, d.err
	}
	return d.results, nil
}

// Visit implements swiftsyntax.Visitor.
func (d *Dispatcher) Visit(node *swiftsyntax.Node) swiftsyntax.VisitAction {
	if d.err != nil {
		return swiftsyntax.Stop
	}
	if d.active == nil {
		for _, s := range d.strategies {
			if s.ShouldActivate(node) {
				d.active = s
				break
			}
		}
	}
	if d.active == nil {
		return swiftsyntax.VisitChildren
	}
	return d.active.Visit(node)
}

// Leave implements swiftsyntax.Visitor.
func (d *Dispatcher) Leave(node *swiftsyntax.Node) {
	if d.err != nil || d.active == nil {
		return
	}
	d.active.Leave(node)
	if d.active.Done() {
		d.finalizeActive()
	}
}

func (d *Dispatcher) finalizeActive() {
	s := d.active
	d.active = nil

	result, err := s.Finalize()
	s.Reset()
	if err != nil {
		d.err = err
		return
	}
	if result != nil {
		d.results = append(d.results, result)
	}
}
