// Package event implements the clause-container notification bus
// (spec.md §4.6): a synchronous, single-threaded publish/subscribe
// mechanism so indices, statistics aggregators, and output trackers can
// observe container insertions and departures without the containers
// themselves knowing who is listening.
//
// Grounded on the teacher's "bus" naming convention
// (gitrdm-gokando/pkg/minikanren/constraint_bus_pool.go), simplified
// from that package's pooled, concurrency-oriented bus down to a single
// synchronous dispatcher — spec.md §5 rules out concurrent publishers,
// so there is nothing for a pool or a mutex to protect here.
package event

import "github.com/hashicorp/go-hclog"

// Kind identifies which container lifecycle moment an Event reports.
type Kind uint8

const (
	// Added fires exactly once per clause insertion into a container.
	Added Kind = iota
	// Removed fires when a clause is discarded rather than promoted.
	Removed
	// Selected fires when a clause is promoted to the next stage
	// (Unprocessed's pop, Passive's popSelected).
	Selected
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Selected:
		return "selected"
	default:
		return "unknown-kind"
	}
}

// Event is delivered to every handler subscribed to its Kind.
type Event struct {
	Kind    Kind
	Payload interface{}
}

// Handler reacts to an Event. Handlers run synchronously on the
// publisher's own call stack — a handler must not re-enter the bus it
// was called from.
type Handler func(Event)

// Bus fans a Kind-keyed Event out to every subscriber, in subscription
// order (spec.md §8 scenario 6).
type Bus struct {
	next     int64
	order    map[Kind][]int64
	handlers map[Kind]map[int64]Handler
	log      hclog.Logger
}

// New creates an empty bus. A nil logger defaults to a null logger.
func New(logger hclog.Logger) *Bus {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Bus{
		order:    make(map[Kind][]int64),
		handlers: make(map[Kind]map[int64]Handler),
		log:      logger,
	}
}

// Subscription owns the removal of the handler it was returned for
// (spec.md §4.6: "SubscriptionData owns the removal on destruction").
// Close is idempotent.
type Subscription struct {
	bus  *Bus
	kind Kind
	id   int64
}

// Close unsubscribes the handler. Calling Close more than once, or on a
// zero-value/already-closed Subscription, is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	delete(s.bus.handlers[s.kind], s.id)
	s.bus = nil
}

// Subscribe registers h to run whenever kind is published.
func (b *Bus) Subscribe(kind Kind, h Handler) *Subscription {
	b.next++
	id := b.next
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[int64]Handler)
	}
	b.handlers[kind][id] = h
	b.order[kind] = append(b.order[kind], id)
	return &Subscription{bus: b, kind: kind, id: id}
}

// Publish delivers payload to every live subscriber of kind, in the
// order they subscribed.
func (b *Bus) Publish(kind Kind, payload interface{}) {
	for _, id := range b.order[kind] {
		h, ok := b.handlers[kind][id]
		if !ok {
			continue // unsubscribed since order was recorded
		}
		h(Event{Kind: kind, Payload: payload})
	}
	b.log.Trace("published", "kind", kind.String())
}
