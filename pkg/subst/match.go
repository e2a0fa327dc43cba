package subst

import "github.com/satproofsys/termcore/pkg/term"

// Match performs a one-sided match of pattern@pb against subject@sb:
// variables of pattern may bind, variables of subject are rigid and
// never receive bindings (spec.md §4.1). Bindings made on success land
// in the currently open backtrack scope.
func (s *Substitution) Match(pattern *term.Term, pb Bank, subject *term.Term, sb Bank) bool {
	pattern, pb = s.Walk(pb, pattern)

	if pattern.IsVar() {
		return s.bindOccursChecked(pb, pattern.VarID(), subject, sb)
	}
	if subject.IsVar() {
		// A rigid subject variable can only match an identical
		// pattern variable, which was already handled above; a
		// non-variable pattern can never match a bare subject
		// variable.
		return false
	}
	if pattern.Functor() != subject.Functor() || pattern.Arity() != subject.Arity() {
		return false
	}
	for i, pa := range pattern.Args() {
		if !s.Match(pa, pb, subject.Args()[i], sb) {
			return false
		}
	}
	return true
}
