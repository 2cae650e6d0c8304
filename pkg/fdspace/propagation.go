package fdspace

import "go.uber.org/zap"

// Consistency is the status the fixed-point loop reports once the
// scheduler has drained: True iff every live propagator is subsumed
// True, False iff any propagator failed or was disentailed, Unknown
// otherwise (spec §4.7).
type Consistency Trilean

const (
	ConsistentTrue    Consistency = Consistency(True)
	ConsistentFalse   Consistency = Consistency(False)
	ConsistentUnknown Consistency = Consistency(Unknown)
)

// PropagationEngine drives a CStore to a fixed point on a VStore by
// draining the delta buffer, enqueuing woken propagators, and running
// them to exhaustion (spec §4.7).
type PropagationEngine struct {
	Logger Logger
}

// NewPropagationEngine returns an engine that logs nothing unless
// given a Logger via WithLogger.
func NewPropagationEngine() *PropagationEngine {
	return &PropagationEngine{Logger: NopLogger()}
}

// WithLogger attaches a structured logger to the engine.
func (e *PropagationEngine) WithLogger(l Logger) *PropagationEngine {
	e.Logger = l
	return e
}

// Run drives vstore/cstore to a fixed point:
//
//	loop:
//	  drain the VStore delta; for each (i, e), wake subscribed propagators
//	  if queue empty -> terminate with status derived from unresolved propagators
//	  pop a propagator p
//	  if p.Propagate(vstore) == false -> return ConsistentFalse
//	  consult p.IsSubsumed(vstore):
//	      True    -> retire p
//	      False   -> return ConsistentFalse
//	      Unknown -> keep p live
func (e *PropagationEngine) Run(vstore *VStore, cstore *CStore) Consistency {
	for {
		for _, ve := range vstore.DrainDelta() {
			cstore.Wake(ve.VarID, ve.Event)
			e.Logger.Debug("propagation: delta", zap.Int("var", ve.VarID), zap.Stringer("event", ve.Event))
		}
		if cstore.schedulerEmpty() {
			break
		}
		id := cstore.popScheduled()
		p := cstore.Propagator(id)
		if p == nil {
			continue
		}
		if !p.Propagate(vstore) {
			e.Logger.Debug("propagation: failed", zap.Int("propagator", id))
			return ConsistentFalse
		}
		switch p.IsSubsumed(vstore) {
		case True:
			e.Logger.Debug("propagation: subsumed", zap.Int("propagator", id))
			cstore.Retire(id)
		case False:
			e.Logger.Debug("propagation: disentailed", zap.Int("propagator", id))
			return ConsistentFalse
		}
	}
	if cstore.LiveCount() == 0 {
		e.Logger.Debug("propagation: fixed point reached, all propagators subsumed")
		return ConsistentTrue
	}
	return ConsistentUnknown
}
