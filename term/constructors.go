package term

var (
	zeroSingleton = &Term{kind: KindZero, canon: "0", nullable: false, trivial: true, width: 0}
	oneSingleton  = &Term{kind: KindOne, canon: "1", nullable: true, trivial: false, width: 0}
)

// Zero returns the additive identity and multiplicative annihilator of
// both · and ‖.
func Zero() *Term { return zeroSingleton }

// One returns the multiplicative identity of both · and ‖.
func One() *Term { return oneSingleton }

// Primitive returns an atomic action labeled by letter.
func Primitive(letter string) *Term {
	return &Term{
		kind:     KindPrimitive,
		letter:   letter,
		canon:    letter,
		nullable: false,
		trivial:  false,
		width:    1,
	}
}

// NewVariable returns a placeholder used only inside a linear system's
// diagnostic rendering (see the closure and symbolgraph packages). index is
// itself a Term — typically the raw Parallel symbol being named. A Variable
// must never reach Width, Nullable, IsTrivial, or any operation in the
// splicing/closure packages; doing so reports ErrVariableInClosedTerm
// (splicing.ErrVariableInTerm from the splicing package).
func NewVariable(name string, index *Term) *Term {
	return &Term{
		kind:        KindVariable,
		name:        name,
		index:       index,
		canon:       name + "[" + index.canon + "]",
		hasVariable: true,
	}
}

// newChoice builds a raw Choice node and precomputes its canonical form and
// derived-measure cache from its already-resolved operands. Callers outside
// this file must go through Plus, never this constructor directly.
func newChoice(l, r *Term) *Term {
	trivial := l.trivial && r.trivial
	return &Term{
		kind:        KindChoice,
		left:        l,
		right:       r,
		canon:       bracket(l, KindChoice) + " + " + bracket(r, KindChoice),
		hasVariable: l.hasVariable || r.hasVariable,
		nullable:    l.nullable || r.nullable,
		trivial:     trivial,
		width:       finalWidth(trivial, l, r),
	}
}

// newSequential builds a raw Sequential node. See newChoice.
func newSequential(l, r *Term) *Term {
	trivial := l.trivial || r.trivial
	return &Term{
		kind:        KindSequential,
		left:        l,
		right:       r,
		canon:       bracket(l, KindSequential) + bracket(r, KindSequential),
		hasVariable: l.hasVariable || r.hasVariable,
		nullable:    l.nullable && r.nullable,
		trivial:     trivial,
		width:       finalWidth(trivial, l, r),
	}
}

// newParallel builds a raw Parallel node. See newChoice.
func newParallel(l, r *Term) *Term {
	trivial := l.trivial || r.trivial
	w := 0
	if !trivial {
		w = l.width + r.width
	}
	return &Term{
		kind:        KindParallel,
		left:        l,
		right:       r,
		canon:       bracket(l, KindParallel) + "‖" + bracket(r, KindParallel),
		hasVariable: l.hasVariable || r.hasVariable,
		nullable:    l.nullable && r.nullable,
		trivial:     trivial,
		width:       w,
	}
}

// newStar builds a raw Star node. See newChoice.
func newStar(beneath *Term) *Term {
	return &Term{
		kind:        KindStar,
		left:        beneath,
		canon:       bracket(beneath, KindStar) + "*",
		hasVariable: beneath.hasVariable,
		nullable:    true,
		trivial:     false,
		width:       beneath.width,
	}
}

// finalWidth computes the shared Choice/Sequential width rule: 0 if the
// node itself is trivial, else the max of the two operands' (already
// trivial-adjusted) widths.
func finalWidth(trivial bool, l, r *Term) int {
	if trivial {
		return 0
	}
	if l.width > r.width {
		return l.width
	}
	return r.width
}

// starChoiceFold implements the two star-related choice simplifications of
// §3: "1 + a·a* → a*" and "1 + a*·a → a*" (and their symmetric placements).
// seq must be a Sequential term; it returns the folded a* term if seq's
// shape matches one of the two patterns, or nil otherwise.
func starChoiceFold(seq *Term) *Term {
	if seq.kind != KindSequential {
		return nil
	}
	if seq.left.kind == KindStar && seq.left.left.Equal(seq.right) {
		return seq.left // a* a -> a*
	}
	if seq.right.kind == KindStar && seq.right.left.Equal(seq.left) {
		return seq.right // a a* -> a*
	}
	return nil
}

// Plus returns the choice (+) of t and u, normalized by unit, absorption,
// and the two star-choice identities.
func (t *Term) Plus(u *Term) *Term {
	if u.kind == KindZero {
		return t
	}
	if t.kind == KindZero {
		return u
	}
	if t.kind == KindOne {
		if folded := starChoiceFold(u); folded != nil {
			return folded
		}
	}
	if u.kind == KindOne {
		if folded := starChoiceFold(t); folded != nil {
			return folded
		}
	}
	if t.Absorbs(u) {
		return t
	}
	if u.Absorbs(t) {
		return u
	}
	return newChoice(t, u)
}

// Then returns the sequential composition (·) of t and u, normalized by
// unit and zero annihilation.
func (t *Term) Then(u *Term) *Term {
	if u.kind == KindOne {
		return t
	}
	if t.kind == KindOne {
		return u
	}
	if u.kind == KindZero || t.kind == KindZero {
		return Zero()
	}
	return newSequential(t, u)
}

// Parallel returns the parallel composition (‖) of t and u, normalized by
// unit and zero annihilation.
func (t *Term) Parallel(u *Term) *Term {
	if u.kind == KindOne {
		return t
	}
	if t.kind == KindOne {
		return u
	}
	if u.kind == KindZero || t.kind == KindZero {
		return Zero()
	}
	return newParallel(t, u)
}

// Star returns the Kleene star of t: One for Zero/One, idempotent on Star,
// else a wrapped Star node.
func (t *Term) Star() *Term {
	if t.kind == KindOne || t.kind == KindZero {
		return One()
	}
	if t.kind == KindStar {
		return t
	}
	return newStar(t)
}
