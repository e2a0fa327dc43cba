package container

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/satproofsys/termcore/pkg/event"
	"github.com/satproofsys/termcore/pkg/term"
)

// WeightFunc scores a clause for Active's age/weight limit.
type WeightFunc func(c *term.Clause) int

// Active is the set of currently active clauses (spec.md §4.6). It is a
// plain map rather than an indexed table like store: the O(1) size and
// removal spec.md requires is exactly what a radix-tree-backed memdb
// index cannot give, since lookup and delete there cost O(key length).
type Active struct {
	clauses  map[uuid.UUID]*term.Clause
	bus      *event.Bus
	weightOf WeightFunc
	limit    int
}

// NewActive creates an empty Active container. weightOf may be nil if
// the caller never calls OnLimitsUpdated.
func NewActive(logger hclog.Logger, weightOf WeightFunc) *Active {
	return &Active{
		clauses:  make(map[uuid.UUID]*term.Clause),
		bus:      event.New(logger),
		weightOf: weightOf,
	}
}

// Add inserts c into the active set.
func (a *Active) Add(c *term.Clause) {
	c.SetStore(term.Active)
	a.clauses[c.ID] = c
	a.bus.Publish(event.Added, c)
}

// Remove deletes c from the active set, firing removedEvent. It reports
// false if c was not present.
func (a *Active) Remove(c *term.Clause) bool {
	if _, ok := a.clauses[c.ID]; !ok {
		return false
	}
	delete(a.clauses, c.ID)
	c.SetStore(term.NoStore)
	a.bus.Publish(event.Removed, c)
	return true
}

// Size returns the number of active clauses.
func (a *Active) Size() int { return len(a.clauses) }

// IsEmpty reports whether the active set is empty.
func (a *Active) IsEmpty() bool { return len(a.clauses) == 0 }

// Subscribe registers h for kind.
func (a *Active) Subscribe(kind event.Kind, h event.Handler) *event.Subscription {
	return a.bus.Subscribe(kind, h)
}

// OnLimitsUpdated evicts every clause whose weight now exceeds limit,
// firing removedEvent for each (spec.md §4.6).
func (a *Active) OnLimitsUpdated(limit int) {
	a.limit = limit
	if a.weightOf == nil {
		return
	}
	for id, c := range a.clauses {
		if a.weightOf(c) > limit {
			delete(a.clauses, id)
			c.SetStore(term.Discarded)
			a.bus.Publish(event.Removed, c)
		}
	}
}
