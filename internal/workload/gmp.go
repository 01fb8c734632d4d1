//go:build gmp

package workload

import (
	"math/big"
	"math/bits"

	"github.com/ncw/gmp"

	"github.com/agbru/eztimer/internal/timing"
)

func init() {
	optional = append(optional, GMPDoubling{})
}

// GMPDoubling runs fast doubling on GMP integers. Only built with -tags gmp.
type GMPDoubling struct{}

func (GMPDoubling) Name() string        { return "fib-gmp" }
func (GMPDoubling) Description() string { return "Fibonacci by fast doubling on GMP integers" }

func (GMPDoubling) Prepare(n uint64) timing.Candidate[*big.Int] {
	return func() *big.Int {
		r := gmpDoubling(n)
		return new(big.Int).SetBytes(r.Bytes())
	}
}

func (GMPDoubling) Expected(n uint64) *big.Int { return Reference(n) }

func gmpDoubling(n uint64) *gmp.Int {
	fk := gmp.NewInt(0)
	fk1 := gmp.NewInt(1)
	t1 := new(gmp.Int)
	t2 := new(gmp.Int)

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
