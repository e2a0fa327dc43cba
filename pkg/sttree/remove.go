package sttree

import "github.com/satproofsys/termcore/pkg/term"

type visit struct {
	node *Node
	top  term.Top
}

// remove descends root along queue using only existing children (never
// creating), removes the first leaf entry matching pred, and walks the
// visited-node stack back up deleting any node left with no children
// and no leaf data (spec.md §4.3). It reports whether an entry was
// removed.
func remove(root *Node, queue []*term.Term, pred func(LeafData) bool) bool {
	cur := root
	var stack []visit
	for len(queue) > 0 {
		item := queue[0]
		rest := queue[1:]
		top := term.TermTop(item)
		child, ok := cur.childByTop(top)
		if !ok {
			return false
		}
		// The label's top symbol is captured here, before any
		// deletion, because the parent needs it to clear its own
		// entry (spec.md §4.3 edge case).
		stack = append(stack, visit{node: cur, top: top})
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

	idx := -1
	for i, ld := range cur.leaves {
		if pred(ld) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	cur.leaves = append(cur.leaves[:idx], cur.leaves[idx+1:]...)
	if len(cur.leaves) == 0 {
		cur.isLeaf = false
	}

	node := cur
	for i := len(stack) - 1; i >= 0; i-- {
		if !node.empty() {
			break
		}
		parent := stack[i].node
		top := stack[i].top
		if top.IsVar {
			parent.varChild = nil
		} else {
			delete(parent.children, top.Functor)
		}
		node = parent
	}
	return true
}
