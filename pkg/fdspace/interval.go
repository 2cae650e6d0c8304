package fdspace

// Interval is a closed integer domain [Lo, Hi]. The empty domain is
// represented by Lo > Hi; IsEmpty is total over that representation so
// callers never need a separate sentinel. Interval is a value type:
// every operation returns a new Interval rather than mutating the
// receiver, mirroring the teacher's clone-before-mutate discipline for
// domains.
type Interval struct {
	Lo, Hi int
}

// NewInterval builds the closed interval [lo, hi].
func NewInterval(lo, hi int) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// Singleton builds the one-point interval [v, v].
func Singleton(v int) Interval {
	return Interval{Lo: v, Hi: v}
}

// IsEmpty reports whether the interval contains no values.
func (iv Interval) IsEmpty() bool {
	return iv.Lo > iv.Hi
}

// IsSingleton reports whether the interval contains exactly one value.
func (iv Interval) IsSingleton() bool {
	return !iv.IsEmpty() && iv.Lo == iv.Hi
}

// Cardinality returns the number of integers in the interval, 0 if empty.
func (iv Interval) Cardinality() int {
	if iv.IsEmpty() {
		return 0
	}
	return iv.Hi - iv.Lo + 1
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v int) bool {
	return !iv.IsEmpty() && v >= iv.Lo && v <= iv.Hi
}

// Disjoint reports whether the two intervals share no value.
func (iv Interval) Disjoint(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	return iv.Hi < other.Lo || other.Hi < iv.Lo
}

// classify compares a new interval against the interval it was derived
// from and reports the FDEvent for the change, or ok=false if nothing
// changed. `old` must not be empty (no update is ever computed from an
// already-failed domain).
func classify(old, next Interval) (FDEvent, bool) {
	if next == old {
		return Inner, false
	}
	if next.IsSingleton() {
		return Assignment, true
	}
	return Bound, true
}

// Intersect narrows the interval to the overlap with [a, b] and reports
// the event that occurred. ok is false when the result is unchanged.
func (iv Interval) Intersect(a, b int) (Interval, FDEvent, bool) {
	next := Interval{Lo: maxInt(iv.Lo, a), Hi: minInt(iv.Hi, b)}
	if next.IsEmpty() {
		return next, Inner, true
	}
	event, changed := classify(iv, next)
	return next, event, changed
}

// IntersectWith narrows the interval to the overlap with other.
func (iv Interval) IntersectWith(other Interval) (Interval, FDEvent, bool) {
	return iv.Intersect(other.Lo, other.Hi)
}

// ShrinkToAtMost narrows the upper bound to at most c (x <= c).
func (iv Interval) ShrinkToAtMost(c int) (Interval, FDEvent, bool) {
	if c >= iv.Hi {
		return iv, Inner, false
	}
	next := Interval{Lo: iv.Lo, Hi: c}
	if next.IsEmpty() {
		return next, Inner, true
	}
	event, changed := classify(iv, next)
	return next, event, changed
}

// ShrinkToLessThan narrows the upper bound to strictly less than c
// (x < c), i.e. x <= c-1.
func (iv Interval) ShrinkToLessThan(c int) (Interval, FDEvent, bool) {
	return iv.ShrinkToAtMost(c - 1)
}

// ShrinkToAtLeast narrows the lower bound to at least c (x >= c).
func (iv Interval) ShrinkToAtLeast(c int) (Interval, FDEvent, bool) {
	if c <= iv.Lo {
		return iv, Inner, false
	}
	next := Interval{Lo: c, Hi: iv.Hi}
	if next.IsEmpty() {
		return next, Inner, true
	}
	event, changed := classify(iv, next)
	return next, event, changed
}

// ShrinkToGreaterThan narrows the lower bound to strictly greater than
// c (x > c), i.e. x >= c+1.
func (iv Interval) ShrinkToGreaterThan(c int) (Interval, FDEvent, bool) {
	return iv.ShrinkToAtLeast(c + 1)
}

// RemoveValue removes v from the domain if it is a bound; removing an
// interior value is a no-op since this core's intervals carry no holes
// (spec §4.2). Removing the only remaining value empties the domain.
func (iv Interval) RemoveValue(v int) (Interval, FDEvent, bool) {
	if iv.IsEmpty() || !iv.Contains(v) {
		return iv, Inner, false
	}
	switch {
	case iv.Lo == v && iv.Hi == v:
		return Interval{Lo: iv.Lo + 1, Hi: iv.Hi}, Inner, true
	case iv.Lo == v:
		return iv.ShrinkToAtLeast(v + 1)
	case iv.Hi == v:
		return iv.ShrinkToAtMost(v - 1)
	default:
		return iv, Inner, false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
