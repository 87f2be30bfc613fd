package lwe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/ring"
	"github.com/tuneinsight/lattigo/v5/utils/sampling"
	"github.com/tuneinsight/lattigo/v5/utils/structs"
)

// KeyGenerator generates matching secret/public key pairs for a parameter
// set. All randomness is read from the PRNG handed to the constructor, so a
// keyed PRNG makes the whole key generation reproducible.
type KeyGenerator struct {
	params  Parameters
	uniform *UniformSampler
}

// NewKeyGenerator creates a new KeyGenerator. A nil prng falls back to a
// freshly keyed secure PRNG.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {
	if params.Q() <= 1 {
		// Sanity check, Parameters built through Setup cannot carry q <= 1.
		panic(fmt.Errorf("%w: modulus q = %d must be > 1", ErrInvalidParameter, params.Q()))
	}
	if prng == nil {
		var err error
		if prng, err = sampling.NewPRNG(); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
	}
	return &KeyGenerator{
		params:  params,
		uniform: NewUniformSampler(prng, params.Q()),
	}
}

// GenSecretKeyNew samples a secret key of length n+1 with entries uniform in
// [0, q) and the leading entry forced to 1.
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = &SecretKey{Value: kgen.uniform.ReadNew(int(kgen.params.N()) + 1)}
	sk.Value[0] = 1
	return
}

// GenPublicKeyNew draws a uniform N x n matrix A and a noise vector e,
// assembles pk = (b | -A) mod q with b = A*sk[1:] + 2e, and verifies the
// identity pk*sk = 2e (mod q) row by row before releasing the key. A failed
// check aborts key generation; it signals a logic defect, not a condition to
// retry with fresh randomness.
func (kgen *KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey, err error) {
	pk, e := kgen.genPublicKey(sk)
	if err = kgen.checkPublicKey(pk, sk, e); err != nil {
		return nil, err
	}
	return pk, nil
}

// GenKeyPairNew generates a fresh secret key and its public key.
func (kgen *KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey, err error) {
	sk = kgen.GenSecretKeyNew()
	pk, err = kgen.GenPublicKeyNew(sk)
	return
}

func (kgen *KeyGenerator) genPublicKey(sk *SecretKey) (pk *PublicKey, e structs.Vector[uint64]) {
	q := kgen.params.Q()
	n := int(kgen.params.N())
	rows := int(kgen.params.BigN())

	A := make(structs.Matrix[uint64], rows)
	for i := range A {
		A[i] = kgen.uniform.ReadNew(n)
	}
	e = kgen.uniform.ReadNew(rows)

	pk = &PublicKey{Value: make(structs.Matrix[uint64], rows)}
	for i := 0; i < rows; i++ {
		row := make(structs.Vector[uint64], n+1)

		// b_i = <A_i, sk[1:]> + 2*e_i, reduced once at assembly
		var b uint64
		for j := 0; j < n; j++ {
			b += A[i][j] * sk.Value[j+1]
		}
		row[0] = (b + 2*e[i]) % q

		for j := 0; j < n; j++ {
			row[j+1] = ring.CRed(q-A[i][j], q)
		}

		pk.Value[i] = row
	}
	return
}

// checkPublicKey verifies pk*sk = 2e (mod q) for the e drawn at generation.
func (kgen *KeyGenerator) checkPublicKey(pk *PublicKey, sk *SecretKey, e structs.Vector[uint64]) error {
	q := kgen.params.Q()
	for i, row := range pk.Value {
		var dot uint64
		for j := range row {
			dot += row[j] * sk.Value[j]
		}
		if dot%q != (2*e[i])%q {
			return fmt.Errorf("%w: row %d: %d != %d (mod %d)", ErrCorrectness, i, dot%q, (2*e[i])%q, q)
		}
	}
	return nil
}
