package sttree

import (
	"github.com/satproofsys/termcore/pkg/subst"
	"github.com/satproofsys/termcore/pkg/term"
)

// Mode selects which of the three retrieval relations (spec.md §4.4) a
// query runs.
type Mode uint8

const (
	ModeUnification Mode = iota
	ModeGeneralization
	ModeInstance
)

func (m Mode) String() string {
	switch m {
	case ModeUnification:
		return "unification"
	case ModeGeneralization:
		return "generalization"
	case ModeInstance:
		return "instance"
	default:
		return "unknown-mode"
	}
}

// Match is one retrieval hit: the indexed payload plus the substitution
// denormalized back onto the query's own variables (QueryBindings) and
// the indexed entry's own original variables (ResultBindings) — spec.md
// §4.4: "the caller sees a substitution whose domain is the original
// query's variables." Only one side is ever populated for Generalization
// (ResultBindings, since the indexed entry is the pattern) or Instance
// (QueryBindings, since the query is the pattern); Unification may
// populate both.
type Match struct {
	Clause  *term.Clause
	Literal *term.Literal
	Term    *term.Term

	QueryBindings  map[int32]*term.Term
	ResultBindings map[int32]*term.Term
}

// Iterator yields Match values lazily, one full verify at a time.
type Iterator struct {
	s          *subst.Substitution
	mode       Mode
	queryKey   *term.Term
	queryRen   *term.Renaming
	candidates []LeafData
	pos        int
}

func newIterator(s *subst.Substitution, mode Mode, queryKey *term.Term, queryRen *term.Renaming, candidates []LeafData) *Iterator {
	return &Iterator{s: s, mode: mode, queryKey: queryKey, queryRen: queryRen, candidates: candidates}
}

// Next advances the iterator, returning the next verified match. It
// reports false once every structural candidate has been checked. Each
// candidate is verified inside its own backtrack scope, which is closed
// (success or failure) before Next returns — no scope is ever left open
// between calls, so an abandoned iterator never leaks one (spec.md §5).
func (it *Iterator) Next() (Match, bool) {
	for it.pos < len(it.candidates) {
		cand := it.candidates[it.pos]
		it.pos++

		it.s.BdRecord()
		if !verify(it.s, it.mode, it.queryKey, cand.key) {
			it.s.BdDone()
			continue
		}
		m := Match{
			Clause:         cand.Clause,
			Literal:        cand.Literal,
			Term:           cand.Term,
			QueryBindings:  it.s.Denormalize(it.queryRen, subst.QueryNorm, subst.Query),
			ResultBindings: it.s.Denormalize(cand.ren, subst.ResultNorm, subst.Result),
		}
		it.s.BdDone()
		return m, true
	}
	return Match{}, false
}

func verify(s *subst.Substitution, mode Mode, query *term.Term, key *term.Term) bool {
	switch mode {
	case ModeUnification:
		return s.Unify(query, subst.QueryNorm, key, subst.ResultNorm)
	case ModeGeneralization:
		// The node label (the indexed entry) is the pattern.
		return s.Match(key, subst.ResultNorm, query, subst.QueryNorm)
	case ModeInstance:
		// The query is the pattern.
		return s.Match(query, subst.QueryNorm, key, subst.ResultNorm)
	default:
		return false
	}
}

// query runs the structural collection phase (phase 1) against root,
// descending descendQueue (the same flattened shape insert used), and
// returns an iterator that performs the confirming verify (phase 2)
// lazily, one candidate at a time, against the whole verifyKey term.
func query(root *Node, descendQueue []*term.Term, verifyKey *term.Term, queryRen *term.Renaming, s *subst.Substitution, mode Mode) *Iterator {
	candidates := collectCandidates(root, descendQueue, mode)
	return newIterator(s, mode, verifyKey, queryRen, candidates)
}

// collectCandidates performs the pure structural descent described in
// node.go's package doc: while queue items remain concrete it follows
// exact top-symbol matches (plus, per the child-iterator policy, a
// sibling variable-headed child); once a query variable is encountered
// it fans out into every tree branch the policy allows and absorbs each
// one's whole subtree via collectAbsorbed.
func collectCandidates(node *Node, queue []*term.Term, mode Mode) []LeafData {
	if len(queue) == 0 {
		return node.leaves
	}
	item := queue[0]
	rest := queue[1:]

	if item.IsVar() {
		var out []LeafData
		for _, c := range candidateChildrenForVarQuery(node, mode) {
			out = append(out, collectAbsorbed(c, 1, rest, mode)...)
		}
		return out
	}

	var out []LeafData
	if c, ok := node.children[item.Functor()]; ok {
		next := make([]*term.Term, 0, len(item.Args())+len(rest))
		next = append(next, item.Args()...)
		next = append(next, rest...)
		out = append(out, collectCandidates(c, next, mode)...)
	}
	if node.varChild != nil && considerVarChildForConcreteQuery(mode) {
		out = append(out, collectCandidates(node.varChild, rest, mode)...)
	}
	return out
}

// collectAbsorbed walks a subtree that a query variable has absorbed in
// its entirety. pending counts how many further tree positions remain
// to be consumed before the absorbed subtree is fully accounted for:
// entering a node consumes one and introduces node.arity new ones (its
// own argument positions), since those have no counterpart left in the
// query's own flattened queue. Once pending reaches zero, normal
// collectCandidates processing resumes against the outer rest.
func collectAbsorbed(node *Node, pending int, rest []*term.Term, mode Mode) []LeafData {
	newPending := pending - 1 + node.arity
	if newPending == 0 {
		return collectCandidates(node, rest, mode)
	}
	var out []LeafData
	if node.varChild != nil {
		out = append(out, collectAbsorbed(node.varChild, newPending, rest, mode)...)
	}
	for _, c := range node.children {
		out = append(out, collectAbsorbed(c, newPending, rest, mode)...)
	}
	return out
}

// candidateChildrenForVarQuery returns the children a query variable may
// range over, per the child-iterator policy (spec.md §4.4): a query
// variable is the bindable side for Unification and Instance, so it may
// reach any indexed subtree there; for Generalization the query is rigid
// subject matter, so only an indexed variable can stand in for it.
func candidateChildrenForVarQuery(node *Node, mode Mode) []*Node {
	var out []*Node
	if node.varChild != nil {
		out = append(out, node.varChild)
	}
	if mode == ModeUnification || mode == ModeInstance {
		for _, c := range node.children {
			out = append(out, c)
		}
	}
	return out
}

// considerVarChildForConcreteQuery reports whether, with a concrete
// query item, an indexed variable-headed sibling is also a candidate.
// It is for Unification and Generalization, where an indexed variable
// may bind to anything; not for Instance, where the indexed side is the
// rigid subject and a bare variable can never be an instance of a
// concrete query position.
func considerVarChildForConcreteQuery(mode Mode) bool {
	return mode != ModeInstance
}
