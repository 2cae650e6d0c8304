package fdspace

// Distributor produces child branches from a frozen space by splitting
// a chosen variable's domain.
type Distributor interface {
	Distribute(frozen *FrozenSpace, varID int) []Branch
}

// BinarySplit is the built-in distributor: it requires the variable's
// domain to be neither singleton nor empty (a programming error
// otherwise, per spec §4.9 and §7), computes mid = floor((lo+hi)/2),
// and produces two branches in a fixed left-then-right order: left
// adds X <= mid, right adds X > mid. The fixed order is required for
// the deterministic-first-solution property (spec §8 scenario 6) and
// matches original_source/src/libpcp/search/branching/binary_split.rs.
type BinarySplit struct{}

func (BinarySplit) Distribute(frozen *FrozenSpace, varID int) []Branch {
	domain := frozen.vstore.Read(varID)
	if domain.IsEmpty() || domain.IsSingleton() {
		contractViolation("BinarySplit on variable %d with domain %v (must be neither singleton nor empty)", varID, domain)
	}
	mid := floorDiv(domain.Lo+domain.Hi, 2)
	left := Branch{
		Parent: frozen,
		Apply: func(sp *Space) {
			cur := sp.VStore.Read(varID)
			next, _, _ := cur.ShrinkToAtMost(mid)
			sp.VStore.Update(varID, next)
		},
		Child: 0,
	}
	right := Branch{
		Parent: frozen,
		Apply: func(sp *Space) {
			cur := sp.VStore.Read(varID)
			next, _, _ := cur.ShrinkToGreaterThan(mid)
			sp.VStore.Update(varID, next)
		},
		Child: 1,
	}
	return []Branch{left, right}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
