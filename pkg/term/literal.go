package term

// Literal is a predicate application plus a polarity bit (spec.md §3).
// Literals share the variable/functor structure of Term: AsTerm views the
// predicate and its arguments as a single functor-shaped Term whose
// Functor is the predicate symbol, so the substitution tree can
// index literals and terms with the same descent logic.
type Literal struct {
	Predicate SymbolID
	Args      []*Term
	Positive  bool
}

// NewLiteral creates a literal from a predicate symbol, arguments, and
// polarity.
func NewLiteral(pred SymbolID, args []*Term, positive bool) *Literal {
	return &Literal{Predicate: pred, Args: args, Positive: positive}
}

// AsTerm views the literal as a functor-shaped term for indexing
// purposes: predicate as functor symbol, literal args as term args.
func (l *Literal) AsTerm() *Term {
	return NewFunctor(l.Predicate, l.Args)
}

// RootKey is the substitution-tree root index for l: the predicate
// symbol signed by polarity (spec.md §4.2 step 2). Positive and negative
// literals over the same predicate occupy distinct roots.
type RootKey struct {
	Predicate SymbolID
	Positive  bool
}

// Root returns l's own root key.
func (l *Literal) Root() RootKey {
	return RootKey{Predicate: l.Predicate, Positive: l.Positive}
}

// ComplementRoot returns the root key of l's complementary polarity,
// used by resolution-style queries that look up the opposite sign of
// the same predicate.
func (l *Literal) ComplementRoot() RootKey {
	return RootKey{Predicate: l.Predicate, Positive: !l.Positive}
}

func (l *Literal) String() string {
	s := l.AsTerm().String()
	if !l.Positive {
		return "~" + s
	}
	return s
}
