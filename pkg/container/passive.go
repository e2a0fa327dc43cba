package container

import (
	"github.com/hashicorp/go-hclog"
	"github.com/satproofsys/termcore/pkg/event"
	"github.com/satproofsys/termcore/pkg/term"
)

// PriorityFunc scores a clause for Passive's ordering; lower is selected
// first. Abstracting the heuristic out as an injected function keeps
// Passive itself independent of any particular clause-selection strategy
// (spec.md §4.6: "Abstract over choice of heuristic").
type PriorityFunc func(c *term.Clause) uint64

// Passive is a priority-ordered set of clauses awaiting selection into
// Active (spec.md §4.6). PopSelected returns the current best clause;
// UpdateLimits drives size-based eviction of the worst-priority excess.
type Passive struct {
	*store
	priorityOf PriorityFunc
	limit      int
}

// NewPassive creates an empty Passive container scored by priorityOf.
func NewPassive(logger hclog.Logger, priorityOf PriorityFunc) *Passive {
	return &Passive{store: newStore(logger), priorityOf: priorityOf}
}

// Add inserts c, scored by priorityOf, then evicts if doing so pushed
// the container over its current limit.
func (p *Passive) Add(c *term.Clause) {
	c.SetStore(term.Passive)
	p.insert(c, p.priorityOf(c))
	p.evictExcess()
}

// PopSelected removes and returns the lowest-priority (best) clause.
func (p *Passive) PopSelected() (*term.Clause, bool) {
	rec, ok := p.popByAscending("priority")
	if !ok {
		return nil, false
	}
	rec.Clause.SetStore(term.NoStore)
	p.bus.Publish(event.Selected, rec.Clause)
	return rec.Clause, true
}

// UpdateLimits sets the maximum number of clauses Passive retains, given
// the saturation loop's current reachable-clause estimate, and evicts
// the worst-priority excess immediately.
func (p *Passive) UpdateLimits(reachableCount int) {
	p.limit = reachableCount
	p.evictExcess()
}

func (p *Passive) evictExcess() {
	if p.limit <= 0 {
		return
	}
	for p.count > p.limit {
		rec, ok := p.popBy("priority")
		if !ok {
			return
		}
		rec.Clause.SetStore(term.Discarded)
		p.bus.Publish(event.Removed, rec.Clause)
	}
}
