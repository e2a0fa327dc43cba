package container

import (
	"github.com/hashicorp/go-hclog"
	"github.com/satproofsys/termcore/pkg/event"
	"github.com/satproofsys/termcore/pkg/term"
)

// Unprocessed is a LIFO stack of clauses awaiting processing (spec.md
// §4.6). Add fires addedEvent; Pop fires selectedEvent.
type Unprocessed struct {
	*store
}

// NewUnprocessed creates an empty Unprocessed container.
func NewUnprocessed(logger hclog.Logger) *Unprocessed {
	return &Unprocessed{store: newStore(logger)}
}

// Add pushes c onto the stack.
func (u *Unprocessed) Add(c *term.Clause) {
	c.SetStore(term.Unprocessed)
	u.insert(c, 0)
}

// Pop removes and returns the most recently added clause.
func (u *Unprocessed) Pop() (*term.Clause, bool) {
	rec, ok := u.popBy("seq")
	if !ok {
		return nil, false
	}
	rec.Clause.SetStore(term.NoStore)
	u.bus.Publish(event.Selected, rec.Clause)
	return rec.Clause, true
}
