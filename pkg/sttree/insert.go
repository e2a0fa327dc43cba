package sttree

import "github.com/satproofsys/termcore/pkg/term"

// allocator hands out monotonically increasing special-variable ids for
// one substitution tree's lifetime (spec.md §4.2 step 3 / §5: "Fresh
// special-variable ids are monotonically allocated per substitution
// tree instance; they must not be recycled within a tree's lifetime").
type allocator struct {
	next int32
}

func (a *allocator) fresh() int32 {
	id := a.next
	a.next++
	return id
}

// insert descends root along queue, creating nodes as needed, and
// attaches data to the node reached once queue is exhausted, unless that
// node already holds an entry for the same clause and payload. Descent
// order matches spec.md §4.2: each queue item is resolved by exactly
// one node (an exact functor-symbol match, or the tree's single
// variable-headed child), and a functor item's own arguments are
// prepended to the remaining queue so the whole literal/term is
// processed as one flattened path.
func insert(root *Node, queue []*term.Term, data LeafData, alloc *allocator) {
	cur := root
	for len(queue) > 0 {
		item := queue[0]
		rest := queue[1:]
		child := matchOrCreateChild(cur, item, alloc)
		if item.IsVar() {
			queue = rest
		} else {
			next := make([]*term.Term, 0, len(item.Args())+len(rest))
			next = append(next, item.Args()...)
			next = append(next, rest...)
			queue = next
		}
		cur = child
	}
	for _, ld := range cur.leaves {
		if ld.Clause.ID == data.Clause.ID && ld.Literal == data.Literal && ld.Term == data.Term {
			return
		}
	}
	cur.isLeaf = true
	cur.leaves = append(cur.leaves, data)
}

func matchOrCreateChild(n *Node, item *term.Term, alloc *allocator) *Node {
	if item.IsVar() {
		if n.varChild == nil {
			n.varChild = newNode(term.NewVar(alloc.fresh(), term.Special), 0)
		}
		return n.varChild
	}
	if n.children == nil {
		n.children = make(map[term.SymbolID]*Node)
	}
	sym := item.Functor()
	c, ok := n.children[sym]
	if !ok {
		c = newNode(term.NewFunctor(sym, nil), item.Arity())
		n.children[sym] = c
	}
	return c
}
