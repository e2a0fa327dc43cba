// Package ordering defines the term/literal comparator the rest of the
// core consumes read-only (spec.md §6): "Ordering: consumed read-only
// via compare(t1, t2) -> {LESS, EQUAL, GREATER, INCOMPARABLE}." The real
// KBO implementation is out of this spec's scope; this package supplies
// the interface plus one deterministic stub suitable for tests.
package ordering

import "github.com/satproofsys/termcore/pkg/term"

// Result is the outcome of comparing two terms under some simplification
// ordering.
type Result uint8

const (
	Less Result = iota
	Equal
	Greater
	Incomparable
)

func (r Result) String() string {
	switch r {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	default:
		return "INCOMPARABLE"
	}
}

// Ordering is the injected capability matchesPattern (pkg/acyclic) and
// any future simplification-ordering consumer depend on.
type Ordering interface {
	Compare(l, r *term.Term) Result
}

// SizeStub is a deterministic stub ordering comparing by subterm count,
// then, for terms of equal size, by top functor symbol (a variable is
// Less than a functor term). Unequal terms of equal size and the same top
// functor symbol are Incomparable, so it is not total on ground terms.
// It is not a real KBO (no precedence/weight function is consulted) —
// sufficient for testing matchesPattern and anywhere else the core only
// needs *a* well-defined Compare, per spec.md §9 ("tests may supply a
// deterministic stub").
type SizeStub struct{}

func (SizeStub) Compare(l, r *term.Term) Result {
	ls, rs := size(l), size(r)
	if ls < rs {
		return Less
	}
	if ls > rs {
		return Greater
	}
	return compareSameSize(l, r)
}

func size(t *term.Term) int {
	if t.IsVar() {
		return 1
	}
	n := 1
	for _, a := range t.Args() {
		n += size(a)
	}
	return n
}

func compareSameSize(l, r *term.Term) Result {
	if term.Equal(l, r) {
		return Equal
	}
	if l.IsVar() != r.IsVar() {
		if l.IsVar() {
			return Less
		}
		return Greater
	}
	if l.IsVar() {
		switch {
		case l.VarID() < r.VarID():
			return Less
		case l.VarID() > r.VarID():
			return Greater
		default:
			return Equal
		}
	}
	switch {
	case l.Functor() < r.Functor():
		return Less
	case l.Functor() > r.Functor():
		return Greater
	default:
		return Incomparable
	}
}
