package fdspace

// CStore owns a sequence of propagators, a reactor mapping variable
// events to subscribed propagator ids, and a scheduler of propagator
// ids ready to run (spec §4.6).
type CStore struct {
	props   []Propagator // nil entry means the id has retired
	deps    [][]Dependency
	reactor *reactor
	sched   *scheduler
}

// NewCStore returns an empty constraint store.
func NewCStore() *CStore {
	return &CStore{reactor: newReactor(), sched: newScheduler()}
}

// Alloc assigns an id to p, records its dependencies in the reactor,
// and enqueues it for an initial run — every propagator must be
// evaluated at least once before the store can be considered at a
// fixed point (spec §4.6).
func (c *CStore) Alloc(p Propagator) int {
	id := len(c.props)
	deps := p.Dependencies()
	c.props = append(c.props, p)
	c.deps = append(c.deps, deps)
	c.reactor.subscribeAll(deps, id)
	c.sched.enqueue(id)
	return id
}

// Len returns the number of propagator ids ever allocated, including
// retired ones.
func (c *CStore) Len() int {
	return len(c.props)
}

// Live reports whether propagator id is still active (not yet retired
// as subsumed True).
func (c *CStore) Live(id int) bool {
	return c.props[id] != nil
}

// Propagator returns the propagator at id, or nil if it has retired.
func (c *CStore) Propagator(id int) Propagator {
	return c.props[id]
}

// Retire removes id's subscriptions and drops its memory, called by
// the propagation engine once IsSubsumed reports True.
func (c *CStore) Retire(id int) {
	if c.props[id] == nil {
		return
	}
	c.reactor.unsubscribe(id, c.deps[id])
	c.sched.drop(id)
	c.props[id] = nil
}

// Wake enqueues every propagator subscribed to (varID, event).
func (c *CStore) Wake(varID int, event FDEvent) {
	for _, id := range c.reactor.wake(varID, event) {
		if c.props[id] != nil {
			c.sched.enqueue(id)
		}
	}
}

// schedulerEmpty reports whether no propagator is queued to run.
func (c *CStore) schedulerEmpty() bool {
	return c.sched.empty()
}

// popScheduled pops the next propagator id to run.
func (c *CStore) popScheduled() int {
	return c.sched.pop()
}

// LiveCount returns the number of propagators that have not retired,
// used by Consistency to decide between Satisfiable and Unknown.
func (c *CStore) LiveCount() int {
	n := 0
	for _, p := range c.props {
		if p != nil {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the store: propagators are
// deep-cloned (so stateful ones like Distinct don't alias their
// sub-propagators across spaces), the reactor and scheduler are
// copied structurally.
func (c *CStore) Clone() *CStore {
	props := make([]Propagator, len(c.props))
	for i, p := range c.props {
		if p != nil {
			props[i] = p.Clone()
		}
	}
	deps := make([][]Dependency, len(c.deps))
	for i, d := range c.deps {
		deps[i] = append([]Dependency(nil), d...)
	}
	return &CStore{
		props:   props,
		deps:    deps,
		reactor: c.reactor.clone(),
		sched:   c.sched.clone(),
	}
}
