package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishFansOutInSubscriptionOrder(t *testing.T) {
	b := New(nil)
	var order []string

	s1 := b.Subscribe(Added, func(e Event) { order = append(order, "first") })
	defer s1.Close()
	s2 := b.Subscribe(Added, func(e Event) { order = append(order, "second") })
	defer s2.Close()

	b.Publish(Added, "clause-1")
	require.Equal(t, []string{"first", "second"}, order)
}

func TestRemovedAndSelectedAreDistinctFromAdded(t *testing.T) {
	b := New(nil)
	var added, removed, selected int
	b.Subscribe(Added, func(e Event) { added++ })
	b.Subscribe(Removed, func(e Event) { removed++ })
	b.Subscribe(Selected, func(e Event) { selected++ })

	b.Publish(Added, nil)
	b.Publish(Removed, nil)

	require.Equal(t, 1, added)
	require.Equal(t, 1, removed)
	require.Equal(t, 0, selected)
}

func TestCloseStopsDelivery(t *testing.T) {
	b := New(nil)
	calls := 0
	sub := b.Subscribe(Added, func(e Event) { calls++ })

	b.Publish(Added, nil)
	sub.Close()
	b.Publish(Added, nil)
	sub.Close() // idempotent

	require.Equal(t, 1, calls)
}
