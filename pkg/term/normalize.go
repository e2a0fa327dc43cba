package term

// Renaming maps original ordinary-variable ids to their normalized
// (0,1,2,…) ids, in left-to-right first-occurrence order. It is the
// artifact normalize produces and denormalize (pkg/subst) consumes to
// map a retrieval result's variables back onto the caller's own.
type Renaming struct {
	forward map[int32]int32 // original id -> normalized id
	order   []int32         // normalized id -> original id
}

// Lookup returns the normalized id for an original variable id.
func (r *Renaming) Lookup(original int32) (int32, bool) {
	v, ok := r.forward[original]
	return v, ok
}

// Original returns the original id a normalized id was allocated for.
func (r *Renaming) Original(normalized int32) int32 {
	return r.order[normalized]
}

// Len returns the number of distinct variables renamed.
func (r *Renaming) Len() int { return len(r.order) }

// NormalizeLiteral renumbers l's ordinary variables to 0,1,2,… in
// left-to-right first-occurrence order (spec.md §3/§4.2 step 1),
// leaving special variables untouched (they belong to a disjoint
// namespace and are never present in caller-supplied literals).
// Returns the normalized literal and the renaming used, so a caller can
// later denormalize a substitution computed against it.
func NormalizeLiteral(l *Literal) (*Literal, *Renaming) {
	ren := &Renaming{forward: make(map[int32]int32)}
	args := make([]*Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = normalizeTerm(a, ren)
	}
	return &Literal{Predicate: l.Predicate, Args: args, Positive: l.Positive}, ren
}

// NormalizeTerm renumbers t's ordinary variables the same way
// NormalizeLiteral does, for the term-indexing (acyclicity) use case.
func NormalizeTerm(t *Term) (*Term, *Renaming) {
	ren := &Renaming{forward: make(map[int32]int32)}
	return normalizeTerm(t, ren), ren
}

func normalizeTerm(t *Term, ren *Renaming) *Term {
	if t.isVar {
		if t.varKind == Special {
			return t
		}
		nid, ok := ren.forward[t.varID]
		if !ok {
			nid = int32(len(ren.order))
			ren.forward[t.varID] = nid
			ren.order = append(ren.order, t.varID)
		}
		return NewVar(nid, Ordinary)
	}
	args := make([]*Term, len(t.args))
	for i, a := range t.args {
		args[i] = normalizeTerm(a, ren)
	}
	return NewFunctor(t.functor, args)
}
