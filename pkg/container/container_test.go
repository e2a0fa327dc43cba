package container

import (
	"testing"

	"github.com/satproofsys/termcore/pkg/event"
	"github.com/satproofsys/termcore/pkg/term"
	"github.com/stretchr/testify/require"
)

func newTestClause() *term.Clause {
	return term.NewClause(nil, term.Axiom, term.Provenance{})
}

func TestUnprocessedIsLIFO(t *testing.T) {
	u := NewUnprocessed(nil)
	c1, c2, c3 := newTestClause(), newTestClause(), newTestClause()
	u.Add(c1)
	u.Add(c2)
	u.Add(c3)

	got, ok := u.Pop()
	require.True(t, ok)
	require.Equal(t, c3.ID, got.ID)

	got, ok = u.Pop()
	require.True(t, ok)
	require.Equal(t, c2.ID, got.ID)

	require.Equal(t, 1, u.Size())
}

func TestPassiveOrdersByPriority(t *testing.T) {
	p := NewPassive(nil, func(c *term.Clause) uint64 { return uint64(len(c.Literals)) })

	cHeavy := term.NewClause([]*term.Literal{{}, {}, {}}, term.Axiom, term.Provenance{})
	cLight := term.NewClause([]*term.Literal{{}}, term.Axiom, term.Provenance{})
	p.Add(cHeavy)
	p.Add(cLight)

	got, ok := p.PopSelected()
	require.True(t, ok)
	require.Equal(t, cLight.ID, got.ID, "lower priority score is selected first")
}

func TestPassiveUpdateLimitsEvictsWorst(t *testing.T) {
	p := NewPassive(nil, func(c *term.Clause) uint64 { return uint64(len(c.Literals)) })
	var removed []term.Clause
	p.Subscribe(event.Removed, func(e event.Event) {
		removed = append(removed, *e.Payload.(*term.Clause))
	})

	light := term.NewClause([]*term.Literal{{}}, term.Axiom, term.Provenance{})
	heavy := term.NewClause([]*term.Literal{{}, {}, {}}, term.Axiom, term.Provenance{})
	p.Add(light)
	p.Add(heavy)

	p.UpdateLimits(1)
	require.Equal(t, 1, p.Size())
	require.Len(t, removed, 1)
	require.Equal(t, heavy.ID, removed[0].ID)
}

func TestActiveEventFanOut(t *testing.T) {
	a := NewActive(nil, nil)
	var order []string
	a.Subscribe(event.Added, func(e event.Event) { order = append(order, "one") })
	a.Subscribe(event.Added, func(e event.Event) { order = append(order, "two") })

	var removedCount, selectedCount int
	a.Subscribe(event.Removed, func(e event.Event) { removedCount++ })
	a.Subscribe(event.Selected, func(e event.Event) { selectedCount++ })

	c := newTestClause()
	a.Add(c)
	require.Equal(t, []string{"one", "two"}, order)

	require.True(t, a.Remove(c))
	require.Equal(t, 1, removedCount)
	require.Equal(t, 0, selectedCount)
}

func TestActiveOnLimitsUpdatedEvictsOverweight(t *testing.T) {
	a := NewActive(nil, func(c *term.Clause) int { return len(c.Literals) })
	light := term.NewClause([]*term.Literal{{}}, term.Axiom, term.Provenance{})
	heavy := term.NewClause([]*term.Literal{{}, {}, {}}, term.Axiom, term.Provenance{})
	a.Add(light)
	a.Add(heavy)

	a.OnLimitsUpdated(1)
	require.Equal(t, 1, a.Size())
	_, stillHeavy := a.clauses[heavy.ID]
	require.False(t, stillHeavy)
}
