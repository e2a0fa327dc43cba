package subst

import "github.com/satproofsys/termcore/pkg/term"

// Unify performs bank-aware Robinson unification of t1@b1 and t2@b2,
// recording any new bindings in the currently open backtrack scope
// (spec.md §4.1). It performs the occurs check. Returns false (leaving
// the substitution unchanged beyond whatever partial bindings were made
// before failure — the caller is responsible for backtracking via
// BdRecord/BdDone around the call) if no unifier exists.
func (s *Substitution) Unify(t1 *term.Term, b1 Bank, t2 *term.Term, b2 Bank) bool {
	t1, b1 = s.Walk(b1, t1)
	t2, b2 = s.Walk(b2, t2)

	if t1.IsVar() && t2.IsVar() && b1 == b2 && t1.VarID() == t2.VarID() {
		return true
	}
	if t1.IsVar() {
		return s.bindOccursChecked(b1, t1.VarID(), t2, b2)
	}
	if t2.IsVar() {
		return s.bindOccursChecked(b2, t2.VarID(), t1, b1)
	}
	if t1.Functor() != t2.Functor() || t1.Arity() != t2.Arity() {
		return false
	}
	for i, a1 := range t1.Args() {
		if !s.Unify(a1, b1, t2.Args()[i], b2) {
			return false
		}
	}
	return true
}

func (s *Substitution) bindOccursChecked(bank Bank, id int32, t *term.Term, tBank Bank) bool {
	if s.occursIn(bank, id, t, tBank) {
		return false
	}
	return s.Bind(bank, id, t, tBank)
}

func (s *Substitution) occursIn(bank Bank, id int32, t *term.Term, tBank Bank) bool {
	t, tBank = s.Walk(tBank, t)
	if t.IsVar() {
		return tBank == bank && t.VarID() == id
	}
	for _, a := range t.Args() {
		if s.occursIn(bank, id, a, tBank) {
			return true
		}
	}
	return false
}
