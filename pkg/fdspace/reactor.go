package fdspace

// reactor indexes (var_id, event_threshold) -> subscribed propagator
// ids. A delta entry (i, e) wakes every propagator subscribed at
// (i, threshold) with threshold <= e (spec §4.6, §9 "reactor indexing").
type reactor struct {
	// subs[varID][threshold] is the set of propagator ids subscribed
	// at exactly that threshold. Waking for event e walks thresholds
	// Inner..e and unions their sets.
	subs map[int][3][]int
}

func newReactor() *reactor {
	return &reactor{subs: make(map[int][3][]int)}
}

// subscribe registers propID to wake whenever varID's event satisfies
// threshold.
func (r *reactor) subscribe(varID int, threshold FDEvent, propID int) {
	entry := r.subs[varID]
	entry[threshold] = append(entry[threshold], propID)
	r.subs[varID] = entry
}

// subscribeAll registers propID against every dependency.
func (r *reactor) subscribeAll(deps []Dependency, propID int) {
	for _, d := range deps {
		r.subscribe(d.VarID, d.Threshold, propID)
	}
}

// wake returns every propagator id subscribed at (varID, threshold)
// with threshold <= event, deduplicated.
func (r *reactor) wake(varID int, event FDEvent) []int {
	entry, ok := r.subs[varID]
	if !ok {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for level := Inner; level <= event; level++ {
		for _, id := range entry[level] {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// unsubscribe drops every subscription held by propID across all
// variables it was registered for, used when a propagator retires
// after becoming subsumed True.
func (r *reactor) unsubscribe(propID int, deps []Dependency) {
	touched := make(map[int]bool)
	for _, d := range deps {
		touched[d.VarID] = true
	}
	for varID := range touched {
		entry := r.subs[varID]
		for level := range entry {
			entry[level] = removeID(entry[level], propID)
		}
		r.subs[varID] = entry
	}
}

func removeID(ids []int, target int) []int {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// clone returns an independent copy of the reactor, used when the
// owning CStore is cloned.
func (r *reactor) clone() *reactor {
	out := newReactor()
	for varID, entry := range r.subs {
		var cloned [3][]int
		for level, ids := range entry {
			if ids != nil {
				cloned[level] = append([]int(nil), ids...)
			}
		}
		out.subs[varID] = cloned
	}
	return out
}
