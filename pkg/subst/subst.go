// Package subst implements the bank-aware, backtrackable substitution
// spec.md §4.1 describes: bind/lookup with backtrack scopes, unify,
// match, and denormalization back onto a caller's own variables.
//
// Backtrack scopes are a flat journal of undo records with a marker
// stack (spec.md §9's re-architecture note), not a tree of diffs: this
// is adequate because scopes are strictly LIFO (spec.md §5).
package subst

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/satproofsys/termcore/pkg/term"
)

// Bank tags which side of a retrieval a variable belongs to, so that
// query-side and result-side variables sharing numeric ids are never
// accidentally unified with each other (spec.md glossary: "Bank").
type Bank uint8

const (
	// QueryNorm holds the normalized query literal/term during
	// retrieval descent.
	QueryNorm Bank = iota
	// ResultNorm holds the normalized indexed (result) side — tree
	// node labels are interpreted in this bank.
	ResultNorm
	// Query holds the caller's original, un-normalized query
	// variables; denormalize rewrites QueryNorm entries here for
	// emission.
	Query
	// Result holds the caller-facing original result-side variables.
	Result
)

func (b Bank) String() string {
	switch b {
	case QueryNorm:
		return "query-norm"
	case ResultNorm:
		return "result-norm"
	case Query:
		return "query"
	case Result:
		return "result"
	default:
		return "unknown-bank"
	}
}

type key struct {
	bank Bank
	id   int32
}

type value struct {
	t    *term.Term
	bank Bank
}

// Substitution is a mutable binding environment over (bank, variable
// id) pairs. The zero value is not usable; construct with New.
//
// journal records exactly the keys Bind has newly introduced, in order:
// Bind never overwrites an existing binding (it either confirms
// consistency or fails), so undoing a scope is always "delete every key
// journaled since the scope opened."
type Substitution struct {
	bindings map[key]value
	journal  []key
	markers  []int
	log      hclog.Logger
}

// New creates an empty substitution. A nil logger defaults to a null
// logger so library code never forces log output on an embedding
// prover (spec.md §7 class 3 diagnostics are logged here before panic).
func New(logger hclog.Logger) *Substitution {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Substitution{
		bindings: make(map[key]value),
		log:      logger,
	}
}

// Lookup returns the term (and its bank) bound to (bank, id), if any.
func (s *Substitution) Lookup(bank Bank, id int32) (*term.Term, Bank, bool) {
	v, ok := s.bindings[key{bank, id}]
	if !ok {
		return nil, 0, false
	}
	return v.t, v.bank, true
}

// Walk dereferences t (tagged with bank) through the substitution until
// it reaches a functor application or an unbound variable, returning the
// final term and the bank it should be interpreted in.
func (s *Substitution) Walk(bank Bank, t *term.Term) (*term.Term, Bank) {
	for t.IsVar() {
		v, vb, ok := s.Lookup(bank, t.VarID())
		if !ok {
			return t, bank
		}
		t, bank = v.t, vb
	}
	return t, bank
}

// Bind records that (bank, id) maps to (t, tBank) in the current
// backtrack scope. It fails if (bank, id) is already bound to a
// term that is not equal (walking both sides) to the new one; it is a
// no-op success when re-binding to an equal term (spec.md §4.1: "Must
// be idempotent on equal re-binds").
func (s *Substitution) Bind(bank Bank, id int32, t *term.Term, tBank Bank) bool {
	k := key{bank, id}
	if existing, ok := s.bindings[k]; ok {
		ewalk, eb := s.Walk(existing.bank, existing.t)
		nwalk, nb := s.Walk(tBank, t)
		if eb == nb && term.Equal(ewalk, nwalk) {
			return true
		}
		return sameStructure(s, ewalk, eb, nwalk, nb)
	}
	s.journal = append(s.journal, k)
	s.bindings[k] = value{t: t, bank: tBank}
	return true
}

// sameStructure handles the case of binding the same variable to two
// syntactically different terms that become identical once every bound
// variable in them is dereferenced, checked without binding anything; a
// plain re-bind never widens the
// substitution, it only confirms consistency.
func sameStructure(s *Substitution, a *term.Term, ab Bank, b *term.Term, bb Bank) bool {
	if a.IsVar() && b.IsVar() {
		return a.VarID() == b.VarID() && ab == bb
	}
	if a.IsVar() || b.IsVar() {
		return false
	}
	if a.Functor() != b.Functor() || a.Arity() != b.Arity() {
		return false
	}
	for i := range a.Args() {
		aw, awb := s.Walk(ab, a.Args()[i])
		bw, bwb := s.Walk(bb, b.Args()[i])
		if !sameStructure(s, aw, awb, bw, bwb) {
			return false
		}
	}
	return true
}

// BdRecord opens a new backtrack scope and returns its marker. Scopes
// nest strictly LIFO: BdDone must be called in the reverse order of
// BdRecord (spec.md §5).
func (s *Substitution) BdRecord() int {
	m := len(s.journal)
	s.markers = append(s.markers, m)
	return m
}

// BdDone closes the most recently opened backtrack scope, undoing every
// binding made since the matching BdRecord. Calling BdDone with no open
// scope is a programmer error (spec.md §7 class 3) and panics after
// logging.
func (s *Substitution) BdDone() {
	if len(s.markers) == 0 {
		s.log.Error("backtrack on empty scope stack")
		panic("subst: BdDone called with no open backtrack scope")
	}
	mark := s.markers[len(s.markers)-1]
	s.markers = s.markers[:len(s.markers)-1]
	for i := len(s.journal) - 1; i >= mark; i-- {
		delete(s.bindings, s.journal[i])
	}
	s.journal = s.journal[:mark]
}

// Depth returns the number of currently open backtrack scopes. Intended
// for diagnostics/tests verifying scopes close in order.
func (s *Substitution) Depth() int { return len(s.markers) }

func (s *Substitution) String() string {
	return fmt.Sprintf("Substitution{bindings=%d, scopes=%d}", len(s.bindings), len(s.markers))
}
