package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	symA SymbolID = iota + 1
	symB
	symF
	symP
)

func TestEqualStructural(t *testing.T) {
	a := NewFunctor(symA, nil)
	x0 := NewVar(0, Ordinary)
	f1 := NewFunctor(symF, []*Term{x0, a})
	f2 := NewFunctor(symF, []*Term{NewVar(0, Ordinary), NewFunctor(symA, nil)})

	require.True(t, Equal(f1, f2))
	require.False(t, Equal(f1, NewFunctor(symF, []*Term{NewVar(1, Ordinary), a})))
	require.False(t, Equal(f1, NewFunctor(symB, []*Term{x0, a})))
}

func TestMarkNonSharedClonesOnce(t *testing.T) {
	shared := NewFunctor(symF, []*Term{NewVar(0, Ordinary)})
	require.True(t, shared.IsShared())

	owned := shared.MarkNonShared()
	require.False(t, owned.IsShared())
	require.True(t, shared.IsShared(), "marking a clone non-shared must not mutate the original")

	owned.SetArg(0, NewFunctor(symA, nil))
	require.True(t, Equal(shared.Args()[0], NewVar(0, Ordinary)), "original's args must be untouched")

	again := owned.MarkNonShared()
	require.Same(t, owned, again, "marking an already non-shared term returns it unchanged")
}

func TestNormalizeIdempotent(t *testing.T) {
	lit := NewLiteral(symP, []*Term{
		NewVar(7, Ordinary),
		NewFunctor(symF, []*Term{NewVar(3, Ordinary), NewVar(7, Ordinary)}),
	}, true)

	once, ren1 := NormalizeLiteral(lit)
	twice, ren2 := NormalizeLiteral(once)

	require.Equal(t, once.String(), twice.String())
	require.Equal(t, ren1.Len(), ren2.Len())
	require.Equal(t, int32(0), once.Args[0].VarID())
	require.Equal(t, int32(0), once.Args[1].Args()[1].VarID(), "repeated variable renumbers consistently")
}

func TestNormalizeLeavesSpecialVarsAlone(t *testing.T) {
	sv := NewVar(5, Special)
	f := NewFunctor(symF, []*Term{sv, NewVar(0, Ordinary)})
	norm, _ := NormalizeTerm(f)
	require.Equal(t, Special, norm.Args()[0].Kind())
	require.Equal(t, int32(5), norm.Args()[0].VarID())
}

func TestCloneProducesNonSharedDeepCopy(t *testing.T) {
	orig := NewFunctor(symF, []*Term{NewFunctor(symA, nil), NewVar(0, Ordinary)})
	cloned := Clone(orig)

	require.True(t, Equal(orig, cloned))
	require.False(t, cloned.IsShared())
	require.NotSame(t, orig.Args()[0], cloned.Args()[0])
}
