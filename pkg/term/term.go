// Package term provides the term, literal, and clause model shared by the
// substitution, substitution-tree, acyclicity, and container packages.
//
// This package is the "term model" spec.md §3 describes as assumed
// present; it supplies a concrete, immutable-by-default representation
// so the rest of the core has something real to index.
//
// Example usage:
//
//	a := term.NewFunctor(symA, nil)              // constant a
//	x := term.NewVar(0, term.Ordinary)           // variable x
//	t := term.NewFunctor(symF, []*term.Term{x})  // f(x)
package term

import "fmt"

// SymbolID identifies a function or predicate symbol. Arity is not
// encoded in the id; two applications of the same symbol at different
// arities are a caller error the term model does not itself police.
type SymbolID int32

// VarKind distinguishes ordinary (user-visible) variables from special
// variables the substitution tree introduces at disagreement points.
// The two kinds occupy disjoint numeric namespaces (spec.md §3).
type VarKind uint8

const (
	// Ordinary variables come from parsed input or normalization.
	Ordinary VarKind = iota
	// Special variables are allocated by a substitution tree during
	// insertion/splitting; they never appear in user-facing terms.
	Special
)

func (k VarKind) String() string {
	if k == Special {
		return "special"
	}
	return "ordinary"
}

// Term is an immutable-by-default tree: either a variable or a functor
// application over an ordered argument sequence.
//
// A Term may be Shared (hash-consed, reference-compared, never mutated
// in place) or non-shared (owned by exactly one index node, and legal to
// mutate in place during tree restructuring). Callers that need to edit
// a term they do not know to be non-shared must call Clone first.
type Term struct {
	isVar bool

	// variable fields
	varID   int32
	varKind VarKind

	// functor fields
	functor SymbolID
	args    []*Term

	shared bool
}

// NewVar creates a variable term with the given id and kind.
func NewVar(id int32, kind VarKind) *Term {
	return &Term{isVar: true, varID: id, varKind: kind, shared: true}
}

// NewFunctor creates a functor-application term. The returned term is
// marked shared; callers that will mutate it in place must Clone it
// first (see Clone).
func NewFunctor(sym SymbolID, args []*Term) *Term {
	return &Term{functor: sym, args: args, shared: true}
}

// IsVar reports whether t is a variable.
func (t *Term) IsVar() bool { return t.isVar }

// VarID returns the variable's numeric id. Panics if t is not a variable.
func (t *Term) VarID() int32 {
	if !t.isVar {
		panic("term: VarID called on a functor term")
	}
	return t.varID
}

// Kind returns the variable's kind. Panics if t is not a variable.
func (t *Term) Kind() VarKind {
	if !t.isVar {
		panic("term: Kind called on a functor term")
	}
	return t.varKind
}

// Functor returns the top function symbol. Panics if t is a variable.
func (t *Term) Functor() SymbolID {
	if t.isVar {
		panic("term: Functor called on a variable term")
	}
	return t.functor
}

// Args returns the argument sequence. Panics if t is a variable.
func (t *Term) Args() []*Term {
	if t.isVar {
		panic("term: Args called on a variable term")
	}
	return t.args
}

// Arity returns len(Args()), or 0 for a variable.
func (t *Term) Arity() int {
	if t.isVar {
		return 0
	}
	return len(t.args)
}

// Ground reports whether t contains no variables anywhere in its
// structure.
func (t *Term) Ground() bool {
	if t.isVar {
		return false
	}
	for _, a := range t.args {
		if !a.Ground() {
			return false
		}
	}
	return true
}

// IsShared reports whether t is hash-consed/immutable. Only non-shared
// terms may be mutated in place.
func (t *Term) IsShared() bool { return t.shared }

// MarkNonShared returns t if it is already non-shared, otherwise a
// shallow clone marked non-shared. It does not deep-clone args: the
// clone gets its own argument slice, but the argument terms in it are
// the same ones t holds.
func (t *Term) MarkNonShared() *Term {
	if !t.shared {
		return t
	}
	return &Term{
		isVar:   t.isVar,
		varID:   t.varID,
		varKind: t.varKind,
		functor: t.functor,
		args:    append([]*Term(nil), t.args...),
		shared:  false,
	}
}

// Top identifies the discriminator a substitution-tree node keys its
// children by: either a functor symbol, or "this is a variable."
type Top struct {
	IsVar   bool
	Functor SymbolID
}

// TermTop returns the Top of t.
func TermTop(t *Term) Top {
	if t.isVar {
		return Top{IsVar: true}
	}
	return Top{Functor: t.functor}
}

// SetArg replaces the i'th argument in place. The receiver must be
// non-shared; callers must MarkNonShared first. Panics otherwise.
func (t *Term) SetArg(i int, v *Term) {
	if t.shared {
		panic("term: SetArg called on a shared term")
	}
	t.args[i] = v
}

func (t *Term) String() string {
	if t.isVar {
		if t.varKind == Special {
			return fmt.Sprintf("$VAR%d", t.varID)
		}
		return fmt.Sprintf("X%d", t.varID)
	}
	if len(t.args) == 0 {
		return fmt.Sprintf("s%d", t.functor)
	}
	s := fmt.Sprintf("s%d(", t.functor)
	for i, a := range t.args {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s + ")"
}

// Equal reports structural equality: same shape, same variable
// ids/kinds, same functor symbols — a strict check, not unification.
func Equal(a, b *Term) bool {
	if a == b {
		return true
	}
	if a.isVar != b.isVar {
		return false
	}
	if a.isVar {
		return a.varID == b.varID && a.varKind == b.varKind
	}
	if a.functor != b.functor || len(a.args) != len(b.args) {
		return false
	}
	for i := range a.args {
		if !Equal(a.args[i], b.args[i]) {
			return false
		}
	}
	return true
}
