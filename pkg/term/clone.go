package term

// Clone deep-copies t into a fresh, non-shared term tree. A caller that
// mutates a term that might be aliased elsewhere clones it first
// (spec.md §3: "if a node of the index mutates a term, it must first
// clone any shared term into a non-shared copy").
//
// The copy is made by deepClone's own recursive walk over Term's
// unexported fields; nil yields nil.
func Clone(t *Term) *Term {
	return deepClone(t)
}

// Copy returns a non-shared deep copy of t, the same as Clone.
func (t *Term) Copy() (interface{}, error) {
	return deepClone(t), nil
}

func deepClone(t *Term) *Term {
	if t == nil {
		return nil
	}
	if t.isVar {
		return &Term{isVar: true, varID: t.varID, varKind: t.varKind, shared: false}
	}
	args := make([]*Term, len(t.args))
	for i, a := range t.args {
		args[i] = deepClone(a)
	}
	return &Term{functor: t.functor, args: args, shared: false}
}
