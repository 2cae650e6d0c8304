package fdspace

// Prune wraps a SearchEngine with a node-budget cutoff: once the
// number of Enter calls reaches Budget, it stops exploring and reports
// Pruned instead of continuing to Unsatisfiable. This is the
// combinator spec §4.10 reserves Pruned for — the base SearchEngine
// never emits it — grounded on the teacher's own node-counting
// (SolverMonitor.NodesExplored in fd_monitor.go).
//
// Unlike the base engine, Prune's Enter can return Pruned: a budget
// cutoff is exactly the case spec §9's open question calls out where
// a general combinator must not assume the base engine's
// always-terminal invariant.
type Prune struct {
	Inner  *SearchEngine
	Budget int

	nodes int
}

// NewPrune wraps inner with a node budget.
func NewPrune(inner *SearchEngine, budget int) *Prune {
	return &Prune{Inner: inner, Budget: budget}
}

func (p *Prune) Start(root *Space) {
	p.nodes = 0
	p.Inner.Start(root)
}

// Enter delegates to the wrapped engine unless the node budget is
// exhausted, in which case it reports Pruned. Status.Or lets a caller
// combine a Pruned result from one branch of a larger search with a
// Satisfiable result from another, promoting to Satisfiable, or to
// Pruned if the other branch was merely Unsatisfiable.
func (p *Prune) Enter(current *Space) (*Space, Status) {
	if p.nodes >= p.Budget {
		return current, PrunedStatus()
	}
	p.nodes++
	sp, status := p.Inner.Enter(current)
	if status.Kind == StatusUnsatisfiable && p.nodes >= p.Budget {
		return sp, UnsatisfiableStatus().Or(PrunedStatus())
	}
	return sp, status
}
