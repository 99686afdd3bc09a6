// SPDX-License-Identifier: MIT

package monomial

// SetExponents overwrites m's exponent vector and component tag,
// recomputing the cached degree and hash. It exists to serve the
// external ideal-file boundary (parseText, out of scope here): callers
// that already hold a borrowed Mono use this instead of borrowing a
// fresh one per term.
func (p *Pool) SetExponents(m *Mono, exponents []int32, component int32) error {
	if len(exponents) != p.n {
		return ErrArityMismatch
	}
	var degree int32
	for _, e := range exponents {
		if err := p.checkExponent(e); err != nil {
			return err
		}
		degree += e
	}
	copy(m.exponents, exponents)
	m.component = component
	m.degree = degree
	m.hash = p.linearHash(m.exponents) + uint64(uint32(component))*0xD1B54A32D192ED03
	return nil
}

// Multiply returns a newly borrowed monomial c = a*b: exponent-wise
// sum, with the component carried from whichever operand has a
// nonzero component (at most one may, per spec §4.1). Fails with
// ErrExponentOverflow if any resulting exponent exceeds the pool's
// ceiling, and ErrDoubleComponent if both operands carry a component.
func (p *Pool) Multiply(a, b *Mono) (*Mono, error) {
	if a.n != p.n || b.n != p.n {
		return nil, ErrArityMismatch
	}
	if a.component != 0 && b.component != 0 {
		return nil, ErrDoubleComponent
	}
	c := p.Borrow()
	var degree int32
	for i := 0; i < p.n; i++ {
		e := a.exponents[i] + b.exponents[i]
		if err := p.checkExponent(e); err != nil {
			p.Release(c)
			return nil, err
		}
		c.exponents[i] = e
		degree += e
	}
	c.component = a.component + b.component
	c.degree = degree
	c.hash = a.hash + b.hash // additive by construction, spec §3
	return c, nil
}

// Divide returns a newly borrowed monomial c = b/a, requiring a | b.
// Fails with ErrNotDivisible if any coordinate would go negative or
// components mismatch; callers must pre-check with Divides in release
// builds per spec §4.1.
func (p *Pool) Divide(a, b *Mono) (*Mono, error) {
	if a.n != p.n || b.n != p.n {
		return nil, ErrArityMismatch
	}
	if a.component != 0 && a.component != b.component {
		return nil, ErrNotDivisible
	}
	c := p.Borrow()
	var degree int32
	for i := 0; i < p.n; i++ {
		e := b.exponents[i] - a.exponents[i]
		if e < 0 {
			p.Release(c)
			return nil, ErrNotDivisible
		}
		c.exponents[i] = e
		degree += e
	}
	if a.component != 0 {
		c.component = 0 // dividing out the component-carrying operand
	} else {
		c.component = b.component
	}
	c.degree = degree
	c.hash = b.hash - a.hash
	return c, nil
}

// Divides reports whether a divides b: pointwise <= on exponents, and
// equal components (or a's component is the neutral 0).
func Divides(a, b *Mono) bool {
	if a.n != b.n {
		panic(ErrArityMismatch)
	}
	if a.component != 0 && a.component != b.component {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.exponents[i] > b.exponents[i] {
			return false
		}
	}
	return true
}

// IsProductOf reports whether a*b == c. It uses hash equality as a
// fast reject before doing the full coordinate compare,
// per spec §4.1.
func IsProductOf(a, b, c *Mono) bool {
	if a.hash+b.hash != c.hash {
		return false
	}
	if a.component != 0 && b.component != 0 {
		return false
	}
	if a.component+b.component != c.component {
		return false
	}
	if a.degree+b.degree != c.degree {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.exponents[i]+b.exponents[i] != c.exponents[i] {
			return false
		}
	}
	return true
}

// Lcm returns a newly borrowed monomial holding the pointwise max of
// a and b's exponents. Components must agree (or be neutral); the
// result's component is whichever operand's is nonzero.
func (p *Pool) Lcm(a, b *Mono) (*Mono, error) {
	if a.n != p.n || b.n != p.n {
		return nil, ErrArityMismatch
	}
	c := p.Borrow()
	var degree int32
	for i := 0; i < p.n; i++ {
		e := a.exponents[i]
		if b.exponents[i] > e {
			e = b.exponents[i]
		}
		if err := p.checkExponent(e); err != nil {
			p.Release(c)
			return nil, err
		}
		c.exponents[i] = e
		degree += e
	}
	if a.component != 0 {
		c.component = a.component
	} else {
		c.component = b.component
	}
	c.degree = degree
	c.hash = p.linearHash(c.exponents) + uint64(uint32(c.component))*0xD1B54A32D192ED03
	return c, nil
}

// Colons returns (a/gcd(a,b), b/gcd(a,b)) as newly borrowed monomials,
// where gcd is the pointwise min. Satisfies b*u = a*v = lcm(a,b) per
// spec §8 (colons(a,b)=(u,v) => multiply(b,u)=multiply(a,v)=lcm(a,b)).
func (p *Pool) Colons(a, b *Mono) (u, v *Mono, err error) {
	if a.n != p.n || b.n != p.n {
		return nil, nil, ErrArityMismatch
	}
	u = p.Borrow()
	v = p.Borrow()
	var ud, vd int32
	for i := 0; i < p.n; i++ {
		g := a.exponents[i]
		if b.exponents[i] < g {
			g = b.exponents[i]
		}
		u.exponents[i] = a.exponents[i] - g // u = a/gcd(a,b); b*u = lcm(a,b)
		v.exponents[i] = b.exponents[i] - g // v = b/gcd(a,b); a*v = lcm(a,b)
		ud += u.exponents[i]
		vd += v.exponents[i]
	}
	u.degree, v.degree = ud, vd
	u.hash = p.linearHash(u.exponents)
	v.hash = p.linearHash(v.exponents)
	return u, v, nil
}

// RelativelyPrime reports whether a and b share no variable with
// positive exponent in both.
func RelativelyPrime(a, b *Mono) bool {
	if a.n != b.n {
		panic(ErrArityMismatch)
	}
	for i := 0; i < a.n; i++ {
		if a.exponents[i] > 0 && b.exponents[i] > 0 {
			return false
		}
	}
	return true
}
