package fdspace

import "go.uber.org/zap"

// SearchTreeVisitor is the interface a search strategy implements:
// Start is called once on the root space, then Enter is called
// repeatedly until it reports a terminal status (spec §6).
type SearchTreeVisitor interface {
	Start(root *Space)
	Enter(current *Space) (*Space, Status)
}

// SearchEngine is a depth-first explorer over an explicit stack of
// Branches, alternating Propagation and Branching until it finds a
// solution or exhausts the tree (spec §4.10).
type SearchEngine struct {
	Brancher   Brancher
	Propagator *PropagationEngine
	Logger     Logger

	stack []Branch
}

// OneSolutionEngine builds the default composition named in spec §6:
// FirstSmallestVar + BinarySplit + Propagation, returning the first
// solution found.
func OneSolutionEngine() *SearchEngine {
	return &SearchEngine{
		Brancher:   NewBrancher(),
		Propagator: NewPropagationEngine(),
		Logger:     NopLogger(),
	}
}

// WithLogger attaches a structured logger to the engine and its
// propagation step.
func (e *SearchEngine) WithLogger(l Logger) *SearchEngine {
	e.Logger = l
	e.Propagator.WithLogger(l)
	return e
}

// Start pushes the root, wrapped as a trivial branch that produces the
// initial space unmodified (spec §4.10 step 1).
func (e *SearchEngine) Start(root *Space) {
	e.stack = []Branch{rootBranch(root)}
}

// Enter pops a branch, commits it, runs Propagation, and classifies
// the result:
//
//   - Unsatisfiable  -> discard, continue to the next stack entry
//   - Satisfiable    -> halt, return the space
//   - Unknown        -> ask the Brancher for children, push them in
//     reverse order so the leftmost child is explored first
//
// If the stack empties without a solution, Enter returns Unsatisfiable.
// The base engine never returns Unknown: it always drives to a
// terminal status in finite time (spec §8 completeness, §9 open
// question — combinators like Prune are where Pruned becomes a
// genuine outcome, not the base engine).
func (e *SearchEngine) Enter(current *Space) (*Space, Status) {
	for len(e.stack) > 0 {
		n := len(e.stack) - 1
		branch := e.stack[n]
		e.stack = e.stack[:n]

		sp := branch.Commit()
		if e.Propagator.Run(sp.VStore, sp.CStore) == ConsistentFalse {
			e.Logger.Debug("search: backtrack")
			continue
		}
		// Propagator consistency True means every live propagator is
		// subsumed, which is a property of the propagators, not of
		// the domains: a fully propagated store can still hold
		// non-singleton domains, so satisfiability is always decided
		// by the all-singleton check (spec §4.10 step 3), never by
		// the propagation-level Consistency alone.
		if sp.IsSolved() {
			e.Logger.Debug("search: solution found")
			return sp, Satisfiable()
		}
		frozen := sp.Freeze()
		children := e.Brancher.Branch(frozen)
		if len(children) == 0 {
			e.Logger.Debug("search: solution found")
			return frozen.Restore(), Satisfiable()
		}
		for i := len(children) - 1; i >= 0; i-- {
			e.stack = append(e.stack, children[i])
		}
		e.Logger.Debug("search: branch", zap.Int("children", len(children)))
	}
	return current, UnsatisfiableStatus()
}
