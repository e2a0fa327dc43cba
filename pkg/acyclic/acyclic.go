// Package acyclic implements the term-algebra Acyclicity Index (spec.md
// §4.5): given a ground equality literal whose constructor side produces
// subterms that could, after some chain of other such equalities,
// rebuild one of its own ancestors, find that cycle.
//
// Grounded on spec.md §4.5 for the pattern/cycle-search shape, refined
// against original_source/Indexing/AcyclicityIndex.cpp (the Vampire
// prover this spec was distilled from): matchesPattern's groundness
// requirement and getSubterms' recursive same-sort subterm collection
// both come from there directly, since spec.md's own distillation
// understates both. The ancestor-tracked DFS itself is also grounded on
// gitrdm-gokando/pkg/minikanren/slg_engine.go's tabling loop, which
// already walks a parent chain to avoid reprocessing a goal — the same
// shape notInAncestors needs here.
package acyclic

import (
	"github.com/google/uuid"
	"github.com/satproofsys/termcore/pkg/ordering"
	"github.com/satproofsys/termcore/pkg/sttree"
	"github.com/satproofsys/termcore/pkg/subst"
	"github.com/satproofsys/termcore/pkg/term"
)

// IndexEntry is what SIndex remembers about one matching literal: its
// producer subterms (every same-sort subterm reachable through the
// constructor side's nested constructors) and the consumer term those
// subterms may eventually rebuild.
type IndexEntry struct {
	Literal   *term.Literal
	Clause    *term.Clause
	Producers []*term.Term
	Consumer  *term.Term
}

// Index is one per-sort acyclicity index.
type Index struct {
	equality term.SymbolID
	sort     *term.Sort
	ord      ordering.Ordering

	sIndex        map[*term.Literal]*IndexEntry
	consumerIndex map[*term.Term]*IndexEntry // bridges a tis hit back to its IndexEntry
	tis           *sttree.TermIndex
}

// New creates an empty acyclicity index for sort, whose equality
// literals use the given predicate symbol and are compared with ord.
func New(equality term.SymbolID, sort *term.Sort, ord ordering.Ordering) *Index {
	return &Index{
		equality:      equality,
		sort:          sort,
		ord:           ord,
		sIndex:        make(map[*term.Literal]*IndexEntry),
		consumerIndex: make(map[*term.Term]*IndexEntry),
		tis:           sttree.NewTermIndex(),
	}
}

// matchesPattern reports whether l is a positive, ground equality over
// this index's predicate, sort, and ordering, with exactly one side
// constructor-headed and that side not smaller than the other (spec.md
// §4.5; groundness per original_source/Indexing/AcyclicityIndex.cpp's
// matchesPattern, which spec.md's own text leaves implicit). On success
// it returns the constructor side's recursively-collected producer
// subterms and the other side (consumer). No literal matches when the
// index's sort allows cyclic terms.
func (idx *Index) matchesPattern(l *term.Literal) (producers []*term.Term, consumer *term.Term, ok bool) {
	if idx.sort.AllowsCycles || !l.Positive || l.Predicate != idx.equality || len(l.Args) != 2 {
		return nil, nil, false
	}
	lhs, rhs := l.Args[0], l.Args[1]
	if !lhs.Ground() || !rhs.Ground() {
		return nil, nil, false
	}
	lCons := idx.sort.IsConstructorHeaded(lhs)
	rCons := idx.sort.IsConstructorHeaded(rhs)
	if lCons == rCons {
		return nil, nil, false
	}
	consSide, otherSide := rhs, lhs
	if lCons {
		consSide, otherSide = lhs, rhs
	}
	if idx.ord.Compare(consSide, otherSide) == ordering.Less {
		return nil, nil, false
	}
	return collectProducers(idx.sort, consSide), otherSide, true
}

// collectProducers returns every subterm of t reachable by descending
// through t's own arguments and, recursively, through any argument that
// is itself headed by a sort constructor — not just t's top-level
// arguments. Grounded on AcyclicityIndex.cpp's getSubterms, which walks
// a constructor term's nested constructor applications the same way;
// this package's Sort carries no per-argument sort annotation, so (unlike
// the original, which skips an argument whose own sort differs from t's)
// every argument is treated as belonging to t's sort, which is exact for
// a single-sorted term algebra.
func collectProducers(sort *term.Sort, t *term.Term) []*term.Term {
	var producers []*term.Term
	var visit func(u *term.Term)
	visit = func(u *term.Term) {
		for _, a := range u.Args() {
			producers = append(producers, a)
			if sort.IsConstructorHeaded(a) {
				visit(a)
			}
		}
	}
	visit(t)
	return producers
}

// HandleClause is called on every clause add/remove the saturation loop
// performs (spec.md §6). Literals that don't match the pattern are
// silently skipped.
//
// On removal this deliberately does not remove the consumer term from
// tis — reproducing the one acknowledged upstream gap spec.md §7/§9
// documents (tis.remove is skipped). The leaked tis entry is harmless:
// consumerIndex no longer maps that consumer term to an IndexEntry, so
// any later hit against it is recognized as stale and dropped during
// the cycle search (queryCycles' "filter stale entries at query time").
func (idx *Index) HandleClause(c *term.Clause, adding bool) {
	for _, l := range c.Literals {
		producers, consumer, ok := idx.matchesPattern(l)
		if !ok {
			continue
		}
		if adding {
			entry := &IndexEntry{Literal: l, Clause: c, Producers: producers, Consumer: consumer}
			idx.sIndex[l] = entry
			idx.consumerIndex[consumer] = entry
			idx.tis.Insert(consumer, c)
		} else {
			if entry, ok := idx.sIndex[l]; ok {
				delete(idx.consumerIndex, entry.Consumer)
			}
			delete(idx.sIndex, l)
		}
	}
}

// CycleQueryResult is one discovered cycle: the literals traversed and
// the clauses they came from.
type CycleQueryResult struct {
	Literals            []*term.Literal
	PremiseClauses      []*term.Clause
	InstantiatedClauses []*term.Clause
}

// TotalLengthClauses sums the literal counts of the premise clauses.
func (r CycleQueryResult) TotalLengthClauses() int {
	n := 0
	for _, c := range r.PremiseClauses {
		n += c.Len()
	}
	return n
}

// CycleIterator yields CycleQueryResult values. Results are collected
// eagerly by QueryCycles, since the DFS that produces them is bounded
// and cheap relative to one substitution-tree retrieval per step.
type CycleIterator struct {
	results []CycleQueryResult
	pos     int
}

// Next advances the iterator.
func (it *CycleIterator) Next() (CycleQueryResult, bool) {
	if it.pos >= len(it.results) {
		return CycleQueryResult{}, false
	}
	r := it.results[it.pos]
	it.pos++
	return r, true
}

type pathStep struct {
	lit    *term.Literal
	clause *term.Clause
}

// QueryCycles searches for every cycle reachable from lit (spec.md
// §4.5). lit must be registered in SIndex, otherwise the iterator is
// empty. c is not consulted: every step of a result, the first included,
// is labelled with the clause recorded in that literal's IndexEntry.
func (idx *Index) QueryCycles(s *subst.Substitution, lit *term.Literal, c *term.Clause) *CycleIterator {
	entry, ok := idx.sIndex[lit]
	if !ok {
		return &CycleIterator{}
	}
	var results []CycleQueryResult
	ancestors := map[*term.Literal]bool{lit: true}
	idx.expandLiteral(s, entry, nil, ancestors, lit, &results)
	return &CycleIterator{results: results}
}

// expandLiteral pushes unifications for every one of entry's producer
// subterms, exactly as AcyclicityIndex.cpp's pushUnificationsOnStack
// does. Since matchesPattern only ever admits ground literals, every
// producer here is itself ground: unifying a ground term against the
// index can only ever succeed by exact structural match, so there is no
// risk of a bare query variable flooding the search with unrelated hits.
func (idx *Index) expandLiteral(s *subst.Substitution, entry *IndexEntry, path []pathStep, ancestors map[*term.Literal]bool, origLit *term.Literal, results *[]CycleQueryResult) {
	newPath := append(append([]pathStep{}, path...), pathStep{lit: entry.Literal, clause: entry.Clause})

	for _, producer := range entry.Producers {
		it := idx.tis.GetUnifications(s, producer)
		for {
			m, ok := it.Next()
			if !ok {
				break
			}
			hitEntry, known := idx.consumerIndex[m.Term]
			if !known {
				continue // stale tis entry left by a removed literal
			}
			idx.considerHit(s, hitEntry, newPath, ancestors, origLit, results)
		}
	}
}

func (idx *Index) considerHit(s *subst.Substitution, hitEntry *IndexEntry, path []pathStep, ancestors map[*term.Literal]bool, origLit *term.Literal, results *[]CycleQueryResult) {
	if hitEntry.Literal == origLit {
		final := append(append([]pathStep{}, path...), pathStep{lit: origLit, clause: hitEntry.Clause})
		*results = append(*results, buildResult(final))
		return
	}
	if ancestors[hitEntry.Literal] {
		return
	}
	ancestors[hitEntry.Literal] = true
	idx.expandLiteral(s, hitEntry, path, ancestors, origLit, results)
	delete(ancestors, hitEntry.Literal)
}

func buildResult(path []pathStep) CycleQueryResult {
	r := CycleQueryResult{}
	for _, step := range path {
		r.Literals = append(r.Literals, step.lit)
		r.PremiseClauses = append(r.PremiseClauses, step.clause)
		r.InstantiatedClauses = append(r.InstantiatedClauses, instantiate(step.clause))
	}
	return r
}

// instantiate rebuilds clause as a fresh Derived clause recording clause
// as its premise. Every literal a cycle search ever traverses is ground
// (matchesPattern enforces it), so there is never a substitution left to
// apply to clause's literals; this mirrors applySubstitution in
// AcyclicityIndex.cpp, whose own body is likewise a straight per-literal
// copy with the substitution application commented out.
func instantiate(clause *term.Clause) *term.Clause {
	lits := make([]*term.Literal, len(clause.Literals))
	for i, l := range clause.Literals {
		lits[i] = term.NewLiteral(l.Predicate, l.Args, l.Positive)
	}
	return term.NewClause(lits, term.Derived, term.Provenance{Parents: []uuid.UUID{clause.ID}, Rule: "acyclicity-instantiate"})
}
