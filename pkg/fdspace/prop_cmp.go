package fdspace

// LessEqual is the propagator for X <= Y.
type LessEqual struct {
	X, Y Term
}

// NewLessEqual builds the X <= Y propagator.
func NewLessEqual(x, y Term) *LessEqual {
	return &LessEqual{X: x, Y: y}
}

// NewLessThan builds X < Y as X <= Y-1 (spec §4.5).
func NewLessThan(x, y Term) *LessEqual {
	return &LessEqual{X: x, Y: Add(y, -1)}
}

func (p *LessEqual) IsSubsumed(store *VStore) Trilean {
	x, y := p.X.Read(store), p.Y.Read(store)
	switch {
	case x.IsEmpty() || y.IsEmpty():
		return False
	case x.Hi <= y.Lo:
		return True
	case x.Lo > y.Hi:
		return False
	default:
		return Unknown
	}
}

func (p *LessEqual) Propagate(store *VStore) bool {
	x, y := p.X.Read(store), p.Y.Read(store)
	if x.IsEmpty() || y.IsEmpty() {
		return false
	}
	if newX, _, changed := x.ShrinkToAtMost(y.Hi); changed {
		if !p.X.Update(store, newX) {
			return false
		}
	}
	y = p.Y.Read(store)
	if newY, _, changed := y.ShrinkToAtLeast(x.Lo); changed {
		if !p.Y.Update(store, newY) {
			return false
		}
	}
	return true
}

func (p *LessEqual) Dependencies() []Dependency {
	deps := p.X.Dependencies(Bound)
	deps = append(deps, p.Y.Dependencies(Bound)...)
	return deps
}

func (p *LessEqual) Clone() Propagator {
	clone := *p
	return &clone
}

// Equal is the propagator for X = Y.
type Equal struct {
	X, Y Term
}

// NewEqual builds the X = Y propagator.
func NewEqual(x, y Term) *Equal {
	return &Equal{X: x, Y: y}
}

func (p *Equal) IsSubsumed(store *VStore) Trilean {
	x, y := p.X.Read(store), p.Y.Read(store)
	switch {
	case x.Disjoint(y):
		return False
	case x.IsSingleton() && y.IsSingleton() && x == y:
		return True
	default:
		return Unknown
	}
}

func (p *Equal) Propagate(store *VStore) bool {
	x, y := p.X.Read(store), p.Y.Read(store)
	if x.IsEmpty() || y.IsEmpty() {
		return false
	}
	meet, _, changed := x.IntersectWith(y)
	if meet.IsEmpty() {
		return false
	}
	if changed {
		if !p.X.Update(store, meet) {
			return false
		}
	}
	y = p.Y.Read(store)
	meetY, _, changedY := y.IntersectWith(meet)
	if meetY.IsEmpty() {
		return false
	}
	if changedY {
		if !p.Y.Update(store, meetY) {
			return false
		}
	}
	return true
}

func (p *Equal) Dependencies() []Dependency {
	deps := p.X.Dependencies(Assignment)
	deps = append(deps, p.Y.Dependencies(Assignment)...)
	return deps
}

func (p *Equal) Clone() Propagator {
	clone := *p
	return &clone
}

// NotEqual is the propagator for X != Y.
type NotEqual struct {
	X, Y Term
}

// NewNotEqual builds the X != Y propagator.
func NewNotEqual(x, y Term) *NotEqual {
	return &NotEqual{X: x, Y: y}
}

func (p *NotEqual) IsSubsumed(store *VStore) Trilean {
	x, y := p.X.Read(store), p.Y.Read(store)
	switch {
	case x.IsEmpty() || y.IsEmpty():
		return False
	case x.Disjoint(y):
		return True
	case x.IsSingleton() && y.IsSingleton() && x == y:
		return False
	default:
		return Unknown
	}
}

func (p *NotEqual) Propagate(store *VStore) bool {
	x, y := p.X.Read(store), p.Y.Read(store)
	if x.IsEmpty() || y.IsEmpty() {
		return false
	}
	if x.IsSingleton() {
		if newY, _, changed := y.RemoveValue(x.Lo); changed {
			if !p.Y.Update(store, newY) {
				return false
			}
		}
	}
	x = p.X.Read(store)
	y = p.Y.Read(store)
	if y.IsSingleton() {
		if newX, _, changed := x.RemoveValue(y.Lo); changed {
			if !p.X.Update(store, newX) {
				return false
			}
		}
	}
	return true
}

func (p *NotEqual) Dependencies() []Dependency {
	deps := p.X.Dependencies(Assignment)
	deps = append(deps, p.Y.Dependencies(Assignment)...)
	return deps
}

func (p *NotEqual) Clone() Propagator {
	clone := *p
	return &clone
}
