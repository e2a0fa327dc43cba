package term

import "github.com/google/uuid"

// InputType tags how a clause entered the proof search (spec.md §3).
type InputType uint8

const (
	Axiom InputType = iota
	Conjecture
	Derived
)

func (t InputType) String() string {
	switch t {
	case Axiom:
		return "axiom"
	case Conjecture:
		return "conjecture"
	case Derived:
		return "derived"
	default:
		return "unknown"
	}
}

// StoreState is a clause's position in the container state machine
// (spec.md §3):
//
//	(no store) -> unprocessed -> passive -> active -> (no store)
//	                         \-> discarded ---------/
type StoreState uint8

const (
	NoStore StoreState = iota
	Unprocessed
	Passive
	Active
	Discarded
)

func (s StoreState) String() string {
	switch s {
	case NoStore:
		return "none"
	case Unprocessed:
		return "unprocessed"
	case Passive:
		return "passive"
	case Active:
		return "active"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Provenance records how a derived clause came to exist. Axiom and
// Conjecture clauses have an empty Provenance.
type Provenance struct {
	Parents []uuid.UUID
	Rule    string
}

// Clause is an ordered multiset of literals plus identity, input-type,
// provenance, and current store state (spec.md §3). A clause's identity
// (ID) is stable for its lifetime; its Literals are immutable once
// constructed — NewClause is the only constructor.
type Clause struct {
	ID         uuid.UUID
	Literals   []*Literal
	InputType  InputType
	Provenance Provenance

	store StoreState
}

// NewClause constructs a clause with a fresh stable identity and
// StoreState == NoStore.
func NewClause(lits []*Literal, it InputType, prov Provenance) *Clause {
	return &Clause{
		ID:         uuid.New(),
		Literals:   append([]*Literal(nil), lits...),
		InputType:  it,
		Provenance: prov,
		store:      NoStore,
	}
}

// Store returns the clause's current container state.
func (c *Clause) Store() StoreState { return c.store }

// SetStore transitions the clause's store state. It performs no
// validation of the transition itself — that discipline belongs to the
// container driving the move (spec.md §3: "Transitions are driven
// exclusively by containers").
func (c *Clause) SetStore(s StoreState) { c.store = s }

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.Literals) }
