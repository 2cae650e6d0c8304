package fdspace

// Brancher composes a Selector and a Distributor: Branch(frozen) asks
// the selector for a variable and the distributor for its children,
// returning an empty slice only when the space is fully assigned
// (spec §4.9).
type Brancher struct {
	Selector    Selector
	Distributor Distributor
}

// NewBrancher builds the default composition FirstSmallestVar + BinarySplit
// (spec §6 "default composition").
func NewBrancher() Brancher {
	return Brancher{Selector: FirstSmallestVar{}, Distributor: BinarySplit{}}
}

// Branch returns the children of frozen, or nil if every variable is
// already assigned.
func (b Brancher) Branch(frozen *FrozenSpace) []Branch {
	varID, ok := b.Selector.Select(frozen.vstore)
	if !ok {
		return nil
	}
	return b.Distributor.Distribute(frozen, varID)
}
