package fdspace

// Branch is a triple (frozen parent state, transformation closure that
// modifies a restored space, designation of which child it produces).
// Committing a Branch restores the parent and applies the closure,
// yielding a fresh mutable Space (spec §3).
type Branch struct {
	Parent *FrozenSpace
	Apply  func(*Space)
	Child  int
}

// Commit restores the parent snapshot and applies this branch's
// modification, returning the resulting mutable space.
func (b Branch) Commit() *Space {
	sp := b.Parent.Restore()
	if b.Apply != nil {
		b.Apply(sp)
	}
	return sp
}

// rootBranch wraps the initial space as a trivial branch that
// produces it unmodified, used to seed the search stack (spec §4.10
// step 1).
func rootBranch(sp *Space) Branch {
	frozen := sp.Freeze()
	return Branch{Parent: frozen, Apply: nil, Child: 0}
}

// StatusKind discriminates the variants of Status.
type StatusKind int

const (
	StatusUnsatisfiable StatusKind = iota
	StatusSatisfiable
	StatusPruned
	StatusUnknown
)

// Status is the sum type {Satisfiable, Unsatisfiable, Pruned,
// Unknown(branches)} returned by a search tree visitor's Enter (spec §3).
type Status struct {
	Kind     StatusKind
	Branches []Branch
}

// Satisfiable builds a Satisfiable status.
func Satisfiable() Status { return Status{Kind: StatusSatisfiable} }

// UnsatisfiableStatus builds an Unsatisfiable status.
func UnsatisfiableStatus() Status { return Status{Kind: StatusUnsatisfiable} }

// PrunedStatus builds a Pruned status, reserved for combinators that
// explicitly cut a branch (spec §4.10); the base search engine never
// emits it.
func PrunedStatus() Status { return Status{Kind: StatusPruned} }

// UnknownStatus builds an Unknown status carrying the children to explore.
func UnknownStatus(branches []Branch) Status {
	return Status{Kind: StatusUnknown, Branches: branches}
}

// IsSatisfiable reports whether the status is Satisfiable.
func (s Status) IsSatisfiable() bool {
	return s.Kind == StatusSatisfiable
}

// Or promotes self to Pruned or Satisfiable depending on status,
// matching the original's Status::or: any Satisfiable wins outright;
// an Unsatisfiable promoted alongside a Pruned becomes Pruned;
// otherwise self is kept (original_source/search_tree_visitor.rs).
func (s Status) Or(other Status) Status {
	if other.Kind == StatusSatisfiable {
		return other
	}
	if s.Kind == StatusUnsatisfiable && other.Kind == StatusPruned {
		return other
	}
	return s
}
