package subst

import "github.com/satproofsys/termcore/pkg/term"

// Apply fully dereferences every variable of bank appearing in t,
// rebuilding a term with no remaining bound variables of that bank.
// Variables from other banks, and genuinely unbound variables of bank,
// are left in place.
func (s *Substitution) Apply(bank Bank, t *term.Term) *term.Term {
	rt, rb := s.Walk(bank, t)
	if rt.IsVar() {
		return rt
	}
	args := make([]*term.Term, len(rt.Args()))
	for i, a := range rt.Args() {
		args[i] = s.Apply(rb, a)
	}
	return term.NewFunctor(rt.Functor(), args)
}

// ApplyToQuery dereferences t (a Query-bank term) through the current
// substitution (spec.md §4.1).
func (s *Substitution) ApplyToQuery(t *term.Term) *term.Term { return s.Apply(Query, t) }

// ApplyToResult dereferences t (a Result-bank term) through the current
// substitution (spec.md §4.1).
func (s *Substitution) ApplyToResult(t *term.Term) *term.Term { return s.Apply(Result, t) }

// Denormalize rewrites every currently bound (fromBank, normalized-id)
// entry into the caller-facing answer for (toBank, original-id), fully
// dereferencing the bound term and translating any residual fromBank
// variable references through ren as well (spec.md §4.1/§4.4: "the
// caller sees a substitution whose domain is the original query's
// variables"). Variables from banks other than fromBank are left
// untouched — they denote parts of the answer that remain existentially
// quantified over the other side.
func (s *Substitution) Denormalize(ren *term.Renaming, fromBank, toBank Bank) map[int32]*term.Term {
	out := make(map[int32]*term.Term)
	for id := int32(0); id < int32(ren.Len()); id++ {
		v, vb, ok := s.Lookup(fromBank, id)
		if !ok {
			continue
		}
		out[ren.Original(id)] = s.denormTerm(v, vb, ren, fromBank)
	}
	return out
}

func (s *Substitution) denormTerm(t *term.Term, bank Bank, ren *term.Renaming, fromBank Bank) *term.Term {
	t, bank = s.Walk(bank, t)
	if t.IsVar() {
		if bank == fromBank {
			return term.NewVar(ren.Original(t.VarID()), term.Ordinary)
		}
		return t
	}
	args := make([]*term.Term, len(t.Args()))
	for i, a := range t.Args() {
		args[i] = s.denormTerm(a, bank, ren, fromBank)
	}
	return term.NewFunctor(t.Functor(), args)
}
