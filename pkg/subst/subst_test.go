package subst

import (
	"testing"

	"github.com/satproofsys/termcore/pkg/term"
	"github.com/stretchr/testify/require"
)

const (
	symA term.SymbolID = iota + 1
	symB
	symF
	symG
)

func TestBindWalkAndBacktrack(t *testing.T) {
	s := New(nil)
	a := term.NewFunctor(symA, nil)

	s.BdRecord()
	require.True(t, s.Bind(Query, 0, a, Result))
	got, bank := s.Walk(Query, term.NewVar(0, term.Ordinary))
	require.Equal(t, Result, bank)
	require.True(t, term.Equal(a, got))

	s.BdDone()
	_, _, ok := s.Lookup(Query, 0)
	require.False(t, ok, "backtrack must undo the binding")
}

func TestBindIdempotentOnEqualRebind(t *testing.T) {
	s := New(nil)
	a := term.NewFunctor(symA, nil)
	require.True(t, s.Bind(Query, 0, a, Result))
	require.True(t, s.Bind(Query, 0, term.NewFunctor(symA, nil), Result))
	require.False(t, s.Bind(Query, 0, term.NewFunctor(symB, nil), Result))
}

func TestBdDoneOnEmptyScopePanics(t *testing.T) {
	s := New(nil)
	require.Panics(t, func() { s.BdDone() })
}

func TestUnifyOccursCheck(t *testing.T) {
	s := New(nil)
	x := term.NewVar(0, term.Ordinary)
	fx := term.NewFunctor(symF, []*term.Term{x})
	require.False(t, s.Unify(x, Query, fx, Query))
}

func TestUnifySimple(t *testing.T) {
	s := New(nil)
	x := term.NewVar(0, term.Ordinary)
	fx := term.NewFunctor(symF, []*term.Term{x})
	fa := term.NewFunctor(symF, []*term.Term{term.NewFunctor(symA, nil)})

	require.True(t, s.Unify(fx, QueryNorm, fa, ResultNorm))
	v, bank := s.Walk(QueryNorm, x)
	require.Equal(t, ResultNorm, bank)
	require.True(t, term.Equal(term.NewFunctor(symA, nil), v))
}

func TestMatchRigidSubject(t *testing.T) {
	s := New(nil)
	x := term.NewVar(0, term.Ordinary)
	subjectVar := term.NewVar(1, term.Ordinary)

	// A non-variable pattern can never match a bare subject variable.
	require.False(t, s.Match(term.NewFunctor(symA, nil), ResultNorm, subjectVar, QueryNorm))
	// A pattern variable matches anything, including a subject variable.
	require.True(t, s.Match(x, ResultNorm, subjectVar, QueryNorm))
}

func TestDenormalizeRoundTrips(t *testing.T) {
	lit := term.NewLiteral(symF, []*term.Term{
		term.NewVar(9, term.Ordinary),
	}, true)
	norm, ren := term.NormalizeLiteral(lit)

	s := New(nil)
	require.True(t, s.Bind(QueryNorm, norm.Args[0].VarID(), term.NewFunctor(symA, nil), ResultNorm))

	out := s.Denormalize(ren, QueryNorm, Query)
	require.Len(t, out, 1)
	require.True(t, term.Equal(term.NewFunctor(symA, nil), out[9]))
}
