// SPDX-License-Identifier: MIT

package monomial

// Order names a monomial ordering. Per spec §9's note that "template
// configuration... becomes monomorphization over a small Config trait,
// or equivalently two concrete types since the combinations used are
// few," we choose the simpler of the two equivalent strategies: a
// tagged enum with a Compare method set, dispatched by a type switch
// inside a single Compare implementation rather than one concrete Go
// type per ordering.
type Order int

const (
	// Lex is pure lexicographic order: compare exponents left to right,
	// most significant variable first.
	Lex Order = iota
	// GrevLex is graded reverse lexicographic order: compare total
	// degree first, then break ties by the *last* differing exponent,
	// reversed sign.
	GrevLex
)

// ComponentOrder controls how a module monomial's component tag breaks
// ties against the ambient (non-module) ordering. Resolves spec §9's
// Open Question about the free-module ordering being hard-coded to a
// single tag: here it is an explicit, orthogonal knob.
type ComponentOrder int

const (
	// ComponentNone means monomials never carry a meaningful component
	// (the classical, non-signature setting); Compare ignores component
	// tags entirely. Verified against scenario 5 (boolean-ring
	// generators) in the groebner package's tests.
	ComponentNone ComponentOrder = iota
	// ComponentAscending breaks ties by ascending component index.
	ComponentAscending
	// ComponentDescending breaks ties by descending component index.
	ComponentDescending
)

// Ordering bundles a term order with a component tie-break policy. It
// is immutable and safe to share across goroutines.
type Ordering struct {
	Term      Order
	Component ComponentOrder
}

// Sign is the result of Compare: negative, zero, or positive, mirroring
// the strings.Compare / bytes.Compare convention used throughout the
// donor corpus's comparator-based code (e.g. matrix's sorted pivot
// permutations).
type Sign int

const (
	LT Sign = -1
	EQ Sign = 0
	GT Sign = 1
)

// Compare implements the total order guaranteed well-ordered and
// compatible with multiplication by spec §3. For GrevLex: first
// compare total degree; if equal, compare reversed exponents
// lexicographically with signs flipped (the last variable with a
// differing exponent decides, and a *smaller* exponent there wins);
// finally break by component.
func (o Ordering) Compare(a, b *Mono) Sign {
	if a.n != b.n {
		panic(ErrArityMismatch)
	}
	switch o.Term {
	case Lex:
		for i := 0; i < a.n; i++ {
			if a.exponents[i] != b.exponents[i] {
				return cmpInt32(a.exponents[i], b.exponents[i])
			}
		}
	case GrevLex:
		if a.degree != b.degree {
			return cmpInt32(a.degree, b.degree)
		}
		for i := a.n - 1; i >= 0; i-- {
			if a.exponents[i] != b.exponents[i] {
				// Reversed lexicographic with flipped sign: a smaller
				// exponent at the last differing slot sorts greater.
				return cmpInt32(b.exponents[i], a.exponents[i])
			}
		}
	default:
		panic("monomial: unknown term order")
	}
	return o.compareComponent(a, b)
}

func (o Ordering) compareComponent(a, b *Mono) Sign {
	switch o.Component {
	case ComponentNone:
		return EQ
	case ComponentAscending:
		return cmpInt32(a.component, b.component)
	case ComponentDescending:
		return cmpInt32(b.component, a.component)
	default:
		panic("monomial: unknown component order")
	}
}

func cmpInt32(x, y int32) Sign {
	switch {
	case x < y:
		return LT
	case x > y:
		return GT
	default:
		return EQ
	}
}
