package workload

import (
	"math/big"
	"math/bits"

	"github.com/agbru/eztimer/internal/timing"
)

// lastDigitsModulus is 10^18, the modulus used by the fib-mod workload.
var lastDigitsModulus = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Reference computes F(n) with plain math/big fast doubling. Workload
// expectations are derived from it.
func Reference(n uint64) *big.Int {
	return fastDoubling(n)
}

// Iterative computes F(n) by repeated addition. It is O(n) big additions.
type Iterative struct{}

func (Iterative) Name() string        { return "fib-iterative" }
func (Iterative) Description() string { return "Fibonacci by repeated big.Int addition, O(n)" }

func (Iterative) Prepare(n uint64) timing.Candidate[*big.Int] {
	return func() *big.Int { return iterative(n) }
}

func (Iterative) Expected(n uint64) *big.Int { return Reference(n) }

func iterative(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for range n {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

// FastDoubling computes F(n) with the fast doubling identities.
type FastDoubling struct{}

func (FastDoubling) Name() string        { return "fib-doubling" }
func (FastDoubling) Description() string { return "Fibonacci by fast doubling, O(log n) multiplications" }

func (FastDoubling) Prepare(n uint64) timing.Candidate[*big.Int] {
	return func() *big.Int { return fastDoubling(n) }
}

func (FastDoubling) Expected(n uint64) *big.Int { return Reference(n) }

// fastDoubling walks the bits of n from the top using
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
func fastDoubling(n uint64) *big.Int {
	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk
}

// Matrix computes F(n) as the off-diagonal entry of [[1,1],[1,0]]^n.
type Matrix struct{}

func (Matrix) Name() string        { return "fib-matrix" }
func (Matrix) Description() string { return "Fibonacci by 2x2 matrix exponentiation by squaring" }

func (Matrix) Prepare(n uint64) timing.Candidate[*big.Int] {
	return func() *big.Int { return matrix(n) }
}

func (Matrix) Expected(n uint64) *big.Int { return Reference(n) }

type mat2 struct{ a, b, c, d *big.Int }

func identity() mat2 {
	return mat2{big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)}
}

func (m mat2) mul(o mat2) mat2 {
	t := new(big.Int)
	r := mat2{new(big.Int), new(big.Int), new(big.Int), new(big.Int)}
	r.a.Mul(m.a, o.a).Add(r.a, t.Mul(m.b, o.c))
	r.b.Mul(m.a, o.b).Add(r.b, t.Mul(m.b, o.d))
	r.c.Mul(m.c, o.a).Add(r.c, t.Mul(m.d, o.c))
	r.d.Mul(m.c, o.b).Add(r.d, t.Mul(m.d, o.d))
	return r
}

func matrix(n uint64) *big.Int {
	result := identity()
	base := mat2{big.NewInt(1), big.NewInt(1), big.NewInt(1), big.NewInt(0)}
	for n > 0 {
		if n&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
		n >>= 1
	}
	return result.b
}

// LastDigits computes F(n) mod 10^18 with modular fast doubling. Memory stays
// bounded by the modulus whatever n is.
type LastDigits struct{}

func (LastDigits) Name() string        { return "fib-mod" }
func (LastDigits) Description() string { return "last 18 digits of Fibonacci by modular fast doubling" }

func (LastDigits) Prepare(n uint64) timing.Candidate[*big.Int] {
	return func() *big.Int { return fastDoublingMod(n, lastDigitsModulus) }
}

func (LastDigits) Expected(n uint64) *big.Int {
	return new(big.Int).Mod(Reference(n), lastDigitsModulus)
}

func fastDoublingMod(n uint64, m *big.Int) *big.Int {
	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2*F(k+1) - F(k)) mod m; Mod keeps t1 non-negative.
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mod(t1, m)
		t1.Mul(t1, fk)
		t1.Mod(t1, m)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)
		t2.Mod(t2, m)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			t1.Mod(t1, m)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}
	return fk
}
