// Package lwe implements a toy Regev-style LWE public-key scheme for
// single-bit messages: fixed toy parameters, key generation with an algebraic
// correctness check, and the matching encrypt/decrypt pair.
package lwe

import (
	"fmt"
	"math"
)

type Parameters struct {
	q    uint64 // ciphertext modulus
	d    uint64 // polynomial degree, unused downstream
	n    uint64 // base dimension
	bigN uint64 // lattice dimension, ceil((2n+1)*log2(q))
	chi  uint64 // noise scale, placeholder
}

// Setup returns the fixed toy parameter set q=10, d=10, n=10, chi=1 with
// N = ceil((2n+1)*log2(q)). The three arguments are accepted for interface
// compatibility with a parameterized version and are not used.
func Setup(bitLength, modSize, baseValue int) (Parameters, error) {
	_, _, _ = bitLength, modSize, baseValue
	return newParameters(10, 10, 10, 1)
}

func newParameters(q, d, n, chi int) (Parameters, error) {
	if q <= 1 {
		return Parameters{}, fmt.Errorf("%w: modulus q = %d must be > 1", ErrInvalidParameter, q)
	}
	if n < 0 {
		return Parameters{}, fmt.Errorf("%w: dimension n = %d must be >= 0", ErrInvalidParameter, n)
	}

	bigN := uint64(math.Ceil(float64(2*n+1) * math.Log2(float64(q))))

	return Parameters{
		q:    uint64(q),
		d:    uint64(d),
		n:    uint64(n),
		bigN: bigN,
		chi:  uint64(chi),
	}, nil
}

func (p Parameters) Q() uint64 {
	return p.q
}

func (p Parameters) D() uint64 {
	return p.d
}

func (p Parameters) N() uint64 {
	return p.n
}

// BigN returns the lattice dimension, the number of rows of the public key.
func (p Parameters) BigN() uint64 {
	return p.bigN
}

func (p Parameters) Chi() uint64 {
	return p.chi
}
