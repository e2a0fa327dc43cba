// Package sttree implements the substitution tree discrimination index
// (spec.md §4.2–§4.4): insertion, removal, and the three retrieval
// relations (unification, generalization, instance) shared by literal
// indices and the term index backing the acyclicity index (spec.md
// §4.6's Index interface).
//
// Implementation note (see DESIGN.md): this package implements the
// "uncompressed" variant of a substitution tree, where every
// intermediate node's label captures exactly one function-symbol
// application (its arguments are resolved by descendant nodes, not
// compressed into a multi-level label) or a single fresh special
// variable. Insertion therefore never needs to compute an
// anti-unification/disagreement-set of a compound label against a new
// term — a child is either an exact top-symbol match or it doesn't
// exist yet. Retrieval descends structurally while every query position
// remains concrete, and falls back to collecting every leaf beneath a
// variable-absorbed branch (skipping exactly as many further tree
// positions as that branch's arity requires) once a query variable is
// encountered; every collected candidate is confirmed by one full
// unify/match of the complete original query against the complete
// original indexed term before being reported, which preserves
// retrieval soundness/completeness (spec.md §8) including repeated-
// variable constraints that cross intermediate nodes.
package sttree

import "github.com/satproofsys/termcore/pkg/term"

// LeafData is the (clause, payload) pair spec.md §3 describes, plus the
// bookkeeping needed to re-verify and denormalize a match: the
// normalized key actually inserted and the renaming that produced it.
type LeafData struct {
	Clause  *term.Clause
	Literal *term.Literal // set for a literal-index entry
	Term    *term.Term    // set for a term-index entry

	key *term.Term
	ren *term.Renaming
}

// Node is either an intermediate node (Children/VarChild populated,
// IsLeaf false) or a leaf (Leaves populated). A node may be both a leaf
// and have children at once: a shorter inserted key terminates here
// while a longer one continues past it (spec.md §4.2).
type Node struct {
	label *term.Term // nil only for the tree's virtual root
	arity int        // number of further queue positions this label introduces

	children map[term.SymbolID]*Node
	varChild *Node

	isLeaf bool
	leaves []LeafData
}

func newNode(label *term.Term, arity int) *Node {
	return &Node{label: label, arity: arity}
}

// childByTop returns the child whose label's top symbol equals top's,
// per spec.md §4.2's childByTop(t, create=false).
func (n *Node) childByTop(top term.Top) (*Node, bool) {
	if top.IsVar {
		if n.varChild == nil {
			return nil, false
		}
		return n.varChild, true
	}
	c, ok := n.children[top.Functor]
	return c, ok
}

// empty reports whether n holds no children and no leaf data — such a
// node must be removed from its parent (spec.md §4.3).
func (n *Node) empty() bool {
	return len(n.children) == 0 && n.varChild == nil && len(n.leaves) == 0
}
