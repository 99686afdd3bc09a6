// Package groebner is the root of a Gröbner basis engine: exact,
// modular arithmetic over Z_p, fixed-width monomial exponent vectors,
// and the classical and signature-based (F5-style) Buchberger
// algorithms, plus a matrix-based (F4-style) reduction path.
//
// The engine is organized into focused subpackages rather than one
// flat package:
//
//	field/       — Z_p arithmetic (addition, multiplication, modular inverse)
//	monomial/    — fixed-width exponent vectors, pooling, term orderings
//	polynomial/  — ordered term lists over a monomial pool and a field
//	basis/       — the working generator set, plain and signature-tagged
//	divisor/     — divisor-lookup indexes (flat list and k-d tree) used
//	               to find a basis member whose lead divides a candidate
//	               monomial
//	spair/       — S-pair construction, Gebauer–Möller-style criteria,
//	               and the signature-based pruning criteria
//	reducer/     — polynomial-division machinery: a priority-queue-driven
//	               reduction of one polynomial against a set of reducers
//	matrix/      — sparse row-matrix storage and the F4 quad-matrix
//	               construction/elimination path
//	groebner/    — Buchberger and SignatureBased orchestrate the above
//	               packages into a complete run over a generator set
//	testfixtures/ — small deterministic polynomial systems used across
//	               the test suites of every package above
//
// A typical run borrows a monomial.Pool sized to the number of
// variables, builds a field.Field for the working characteristic,
// constructs the input generators as polynomial.Poly values, and
// calls groebner.Buchberger or groebner.SignatureBased with a
// groebner.Config to obtain a Gröbner basis for the input ideal.
package groebner
