package sttree

import (
	"github.com/satproofsys/termcore/pkg/subst"
	"github.com/satproofsys/termcore/pkg/term"
)

// LiteralIndex is a substitution tree keyed by literal, partitioned into
// one tree per (predicate, polarity) root (spec.md §4.2 step 2). It
// implements the Index interface of spec.md §6 for literal-shaped keys.
type LiteralIndex struct {
	roots map[term.RootKey]*Node
	alloc *allocator
}

// NewLiteralIndex creates an empty literal index.
func NewLiteralIndex() *LiteralIndex {
	return &LiteralIndex{roots: make(map[term.RootKey]*Node), alloc: &allocator{}}
}

// Insert adds (lit, c) to the index. Insertion is idempotent: inserting
// a (lit, c) pair that is already indexed leaves the index unchanged, so
// a single Remove takes it out again.
func (li *LiteralIndex) Insert(lit *term.Literal, c *term.Clause) {
	norm, ren := term.NormalizeLiteral(lit)
	key := lit.Root()
	root, ok := li.roots[key]
	if !ok {
		root = newNode(nil, 0)
		li.roots[key] = root
	}
	insert(root, append([]*term.Term{}, norm.Args...), LeafData{
		Clause:  c,
		Literal: lit,
		key:     norm.AsTerm(),
		ren:     ren,
	}, li.alloc)
}

// Remove deletes the (lit, c) entry previously inserted. Removing a key
// that was never inserted is a programmer error (spec.md §7 class 3); it
// is reported by the bool return rather than a panic, since the
// saturation loop may legitimately race a clause's own bookkeeping
// against container eviction and needs to tell the difference.
func (li *LiteralIndex) Remove(lit *term.Literal, c *term.Clause) bool {
	key := lit.Root()
	root, ok := li.roots[key]
	if !ok {
		return false
	}
	norm, _ := term.NormalizeLiteral(lit)
	removed := remove(root, norm.Args, func(ld LeafData) bool {
		return ld.Clause.ID == c.ID && ld.Literal == lit
	})
	if removed && root.empty() {
		delete(li.roots, key)
	}
	return removed
}

// GetUnifications returns literals indexed under q's own root that unify
// with q (spec.md §4.4).
func (li *LiteralIndex) GetUnifications(s *subst.Substitution, q *term.Literal) *Iterator {
	return li.retrieve(s, q, ModeUnification)
}

// GetGeneralizations returns literals indexed under q's own root that
// generalize q.
func (li *LiteralIndex) GetGeneralizations(s *subst.Substitution, q *term.Literal) *Iterator {
	return li.retrieve(s, q, ModeGeneralization)
}

// GetInstances returns literals indexed under q's own root that are
// instances of q.
func (li *LiteralIndex) GetInstances(s *subst.Substitution, q *term.Literal) *Iterator {
	return li.retrieve(s, q, ModeInstance)
}

func (li *LiteralIndex) retrieve(s *subst.Substitution, q *term.Literal, mode Mode) *Iterator {
	root, ok := li.roots[q.Root()]
	if !ok {
		return newIterator(s, mode, nil, nil, nil)
	}
	norm, ren := term.NormalizeLiteral(q)
	return query(root, norm.Args, norm.AsTerm(), ren, s, mode)
}

// TermIndex is a substitution tree keyed by bare term, with a single
// root (there is no predicate/polarity partition to key on). It backs
// the acyclicity index's consumer-subterm lookup (spec.md §4.5's tis).
type TermIndex struct {
	root  *Node
	alloc *allocator
}

// NewTermIndex creates an empty term index.
func NewTermIndex() *TermIndex {
	return &TermIndex{root: newNode(nil, 0), alloc: &allocator{}}
}

// Insert adds (t, c) to the index.
func (ti *TermIndex) Insert(t *term.Term, c *term.Clause) {
	norm, ren := term.NormalizeTerm(t)
	insert(ti.root, []*term.Term{norm}, LeafData{
		Clause: c,
		Term:   t,
		key:    norm,
		ren:    ren,
	}, ti.alloc)
}

// Remove deletes the (t, c) entry previously inserted.
func (ti *TermIndex) Remove(t *term.Term, c *term.Clause) bool {
	norm, _ := term.NormalizeTerm(t)
	return remove(ti.root, []*term.Term{norm}, func(ld LeafData) bool {
		return ld.Clause.ID == c.ID && ld.Term == t
	})
}

// GetUnifications returns indexed terms that unify with q.
func (ti *TermIndex) GetUnifications(s *subst.Substitution, q *term.Term) *Iterator {
	return ti.retrieve(s, q, ModeUnification)
}

// GetGeneralizations returns indexed terms that generalize q.
func (ti *TermIndex) GetGeneralizations(s *subst.Substitution, q *term.Term) *Iterator {
	return ti.retrieve(s, q, ModeGeneralization)
}

// GetInstances returns indexed terms that are instances of q.
func (ti *TermIndex) GetInstances(s *subst.Substitution, q *term.Term) *Iterator {
	return ti.retrieve(s, q, ModeInstance)
}

func (ti *TermIndex) retrieve(s *subst.Substitution, q *term.Term, mode Mode) *Iterator {
	norm, ren := term.NormalizeTerm(q)
	return query(ti.root, []*term.Term{norm}, norm, ren, s, mode)
}
