package fdspace

// Term is a read/write view over a VStore. Propagators hold terms by
// value; Identity, Constant, and Addition are the only views the core
// provides (spec §4.4).
type Term interface {
	// Read returns the term's current domain in store.
	Read(store *VStore) Interval
	// Update narrows the term's domain to next, delegating through
	// any underlying identity term(s). Returns false iff the update
	// empties a variable's domain.
	Update(store *VStore, next Interval) bool
	// Dependencies lists the (var_id, event) pairs that can affect
	// this term's value at or above the given threshold.
	Dependencies(threshold FDEvent) []Dependency
}

// Dependency names a variable and the event level a subscriber cares
// about; see reactor.go.
type Dependency struct {
	VarID     int
	Threshold FDEvent
}

// Identity reads and writes a variable directly.
type Identity struct {
	ID int
}

// Var builds an Identity term over variable id. Named Var rather than
// NewIdentity to match the call-site reading of e.g. fdspace.Var(x).
func Var(id int) Identity {
	return Identity{ID: id}
}

func (v Identity) Read(store *VStore) Interval {
	return store.Read(v.ID)
}

func (v Identity) Update(store *VStore, next Interval) bool {
	return store.Update(v.ID, next)
}

func (v Identity) Dependencies(threshold FDEvent) []Dependency {
	return []Dependency{{VarID: v.ID, Threshold: threshold}}
}

// Constant reads as the singleton [c,c]. Writing to it succeeds only
// as a no-op (the written domain already contains c); any domain that
// excludes c makes the term fail.
type Constant struct {
	Value int
}

// Const builds a Constant term.
func Const(c int) Constant {
	return Constant{Value: c}
}

func (c Constant) Read(_ *VStore) Interval {
	return Singleton(c.Value)
}

func (c Constant) Update(_ *VStore, next Interval) bool {
	return next.Contains(c.Value)
}

func (c Constant) Dependencies(_ FDEvent) []Dependency {
	return nil
}

// Addition reads term's domain shifted by +k and, on write, shifts the
// requested domain by -k before delegating to term.
type Addition struct {
	Inner Term
	K     int
}

// Add builds an Addition view of term shifted by k.
func Add(term Term, k int) Addition {
	return Addition{Inner: term, K: k}
}

func (a Addition) Read(store *VStore) Interval {
	inner := a.Inner.Read(store)
	if inner.IsEmpty() {
		return inner
	}
	return Interval{Lo: inner.Lo + a.K, Hi: inner.Hi + a.K}
}

func (a Addition) Update(store *VStore, next Interval) bool {
	if next.IsEmpty() {
		return a.Inner.Update(store, next)
	}
	shifted := Interval{Lo: next.Lo - a.K, Hi: next.Hi - a.K}
	return a.Inner.Update(store, shifted)
}

func (a Addition) Dependencies(threshold FDEvent) []Dependency {
	return a.Inner.Dependencies(threshold)
}
