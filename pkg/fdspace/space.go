package fdspace

import "github.com/google/uuid"

// Space is the aggregate (VStore, CStore) that is the node of the
// search tree (spec §3). A Space is mutable until Freeze converts it
// into a read-only snapshot; Restore produces a fresh mutable clone
// from that snapshot.
type Space struct {
	VStore *VStore
	CStore *CStore
	frozen bool
}

// NewSpace returns an empty, mutable space.
func NewSpace() *Space {
	return &Space{VStore: NewVStore(), CStore: NewCStore()}
}

// Label is the opaque value Freeze returns, identifying which frozen
// snapshot a subsequent Restore draws from. It is a uuid rather than a
// bare counter so that log lines correlating a restore back to its
// freeze stay unambiguous even when several frozen snapshots are held
// concurrently (SPEC_FULL §3 domain stack).
type Label uuid.UUID

// FrozenSpace is an immutable snapshot of a Space, safe to read from
// multiple Branches. It is produced by Freeze and consumed by Restore.
type FrozenSpace struct {
	label  Label
	vstore *VStore
	cstore *CStore
}

// Label returns the snapshot's identity.
func (f *FrozenSpace) Label() Label {
	return f.label
}

// Freeze consumes a mutable space and returns an immutable snapshot
// plus its label. The space passed in must not be used again after
// freezing (spec §4.8); calling Freeze twice on the same *Space is a
// contract violation caught by the frozen flag. Spaces produced by
// Restore start unfrozen.
func (s *Space) Freeze() *FrozenSpace {
	if s.frozen {
		contractViolation("Space already frozen")
	}
	s.frozen = true
	return &FrozenSpace{
		label:  Label(uuid.New()),
		vstore: s.VStore,
		cstore: s.CStore,
	}
}

// Restore yields a fresh mutable space, observationally equivalent to
// the frozen snapshot, by cloning its stores (spec §4.8 permits either
// full-copy or trailing; this core uses full-copy, the simpler of the
// two, matching the teacher's preference for value-copied domains).
func (f *FrozenSpace) Restore() *Space {
	return &Space{
		VStore: f.vstore.Clone(),
		CStore: f.cstore.Clone(),
	}
}

// IsSolved reports whether every variable in the space is assigned,
// i.e. the space is a candidate Satisfiable leaf.
func (s *Space) IsSolved() bool {
	return s.VStore.AllSingleton()
}
