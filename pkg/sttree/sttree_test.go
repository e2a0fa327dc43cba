package sttree

import (
	"testing"

	"github.com/satproofsys/termcore/pkg/subst"
	"github.com/satproofsys/termcore/pkg/term"
	"github.com/stretchr/testify/require"
)

const (
	symA term.SymbolID = iota + 1
	symB
	symC
	symF
	symP
)

func unaryLit(arg *term.Term) *term.Literal {
	return term.NewLiteral(symP, []*term.Term{arg}, true)
}

func newClause(lits ...*term.Literal) *term.Clause {
	return term.NewClause(lits, term.Axiom, term.Provenance{})
}

func drain(it *Iterator) []Match {
	var out []Match
	for {
		m, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// Scenario 1 (spec.md §8): simple unification hit.
func TestUnificationSimpleHit(t *testing.T) {
	idx := NewLiteralIndex()
	c1 := newClause(unaryLit(term.NewFunctor(symF, []*term.Term{term.NewFunctor(symA, nil)})))
	idx.Insert(c1.Literals[0], c1)

	s := subst.New(nil)
	query := unaryLit(term.NewFunctor(symF, []*term.Term{term.NewVar(0, term.Ordinary)}))
	matches := drain(idx.GetUnifications(s, query))

	require.Len(t, matches, 1)
	require.Equal(t, c1.ID, matches[0].Clause.ID)
	require.True(t, term.Equal(term.NewFunctor(symA, nil), matches[0].QueryBindings[0]))
	require.Equal(t, 0, s.Depth(), "every opened scope must be closed")
}

// Scenario 2 (spec.md §8): generalization vs. instance asymmetry.
func TestGeneralizationInstanceAsymmetry(t *testing.T) {
	idx := NewLiteralIndex()
	c2 := newClause(unaryLit(term.NewVar(0, term.Ordinary)))
	c3 := newClause(unaryLit(term.NewFunctor(symA, nil)))
	idx.Insert(c2.Literals[0], c2)
	idx.Insert(c3.Literals[0], c3)

	s := subst.New(nil)

	gens := drain(idx.GetGeneralizations(s, unaryLit(term.NewFunctor(symA, nil))))
	require.Len(t, gens, 2)

	var sawC2Binding, sawC3Binding bool
	for _, m := range gens {
		switch m.Clause.ID {
		case c2.ID:
			require.True(t, term.Equal(term.NewFunctor(symA, nil), m.ResultBindings[0]))
			sawC2Binding = true
		case c3.ID:
			require.Empty(t, m.ResultBindings)
			sawC3Binding = true
		}
	}
	require.True(t, sawC2Binding && sawC3Binding)

	insts := drain(idx.GetInstances(s, unaryLit(term.NewVar(0, term.Ordinary))))
	require.Len(t, insts, 2, "p(x) has both p(x) and p(a) as instances")

	onlyA := drain(idx.GetInstances(s, unaryLit(term.NewFunctor(symA, nil))))
	require.Len(t, onlyA, 1)
	require.Equal(t, c3.ID, onlyA[0].Clause.ID)
}

// Scenario 3 (spec.md §8): split on disagreement.
func TestSplitOnDisagreement(t *testing.T) {
	binLit := func(a, b *term.Term) *term.Literal {
		return term.NewLiteral(symP, []*term.Term{term.NewFunctor(symF, []*term.Term{a, b})}, true)
	}

	idx := NewLiteralIndex()
	cb := newClause(binLit(term.NewFunctor(symA, nil), term.NewFunctor(symB, nil)))
	cc := newClause(binLit(term.NewFunctor(symA, nil), term.NewFunctor(symC, nil)))
	idx.Insert(cb.Literals[0], cb)
	idx.Insert(cc.Literals[0], cc)

	s := subst.New(nil)
	query := binLit(term.NewFunctor(symA, nil), term.NewVar(0, term.Ordinary))
	matches := drain(idx.GetUnifications(s, query))

	require.Len(t, matches, 2)
	bound := map[string]bool{}
	for _, m := range matches {
		bound[m.QueryBindings[0].String()] = true
	}
	require.True(t, bound[term.NewFunctor(symB, nil).String()])
	require.True(t, bound[term.NewFunctor(symC, nil).String()])
}

func TestInsertRemoveRoundTripNoGhosts(t *testing.T) {
	idx := NewLiteralIndex()
	lit := unaryLit(term.NewFunctor(symA, nil))
	c1 := newClause(lit)

	idx.Insert(lit, c1)
	s := subst.New(nil)
	require.Len(t, drain(idx.GetUnifications(s, unaryLit(term.NewVar(0, term.Ordinary)))), 1)

	require.True(t, idx.Remove(lit, c1))
	require.Empty(t, drain(idx.GetUnifications(s, unaryLit(term.NewVar(0, term.Ordinary)))))

	// Removing again (already gone) reports failure, not a panic.
	require.False(t, idx.Remove(lit, c1))
}

func TestTermIndexUnification(t *testing.T) {
	idx := NewTermIndex()
	c1 := newClause(unaryLit(term.NewVar(0, term.Ordinary)))
	tgt := term.NewFunctor(symF, []*term.Term{term.NewFunctor(symA, nil)})
	idx.Insert(tgt, c1)

	s := subst.New(nil)
	matches := drain(idx.GetUnifications(s, term.NewFunctor(symF, []*term.Term{term.NewVar(0, term.Ordinary)})))
	require.Len(t, matches, 1)
	require.True(t, term.Equal(term.NewFunctor(symA, nil), matches[0].QueryBindings[0]))
}
