package lwe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/ring"
	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// Encryptor encrypts single bits under a public key.
type Encryptor struct {
	params Parameters
	pk     *PublicKey
	binary *UniformSampler
}

// NewEncryptor creates a new Encryptor for pk. A nil prng falls back to a
// freshly keyed secure PRNG.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	if pk == nil || len(pk.Value) != int(params.BigN()) {
		// Sanity check, this error should not happen with a generated key.
		panic(fmt.Errorf("%w: public key must have %d rows", ErrDimensionMismatch, params.BigN()))
	}
	if prng == nil {
		var err error
		if prng, err = sampling.NewPRNG(); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
	}
	return &Encryptor{
		params: params,
		pk:     pk,
		binary: NewUniformSampler(prng, 2),
	}
}

// EncryptNew encrypts the bit m as c = ((m, 0, ..., 0) + pk^T * r) mod q,
// drawing a fresh binary combination vector r on every call.
func (enc *Encryptor) EncryptNew(m uint64) (ct *Ciphertext, err error) {
	if m > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMessage, m)
	}

	q := enc.params.Q()
	n := int(enc.params.N())
	rows := int(enc.params.BigN())

	r := enc.binary.ReadNew(rows)

	ct = NewCiphertext(enc.params)
	for j := 0; j <= n; j++ {
		var acc uint64
		for i := 0; i < rows; i++ {
			if r[i] == 1 {
				acc += enc.pk.Value[i][j]
			}
		}
		ct.Value[j] = acc % q
	}
	ct.Value[0] = ring.CRed(ct.Value[0]+m, q)

	return ct, nil
}

// ShallowCopy creates a copy of the receiver with fresh sampler state. The
// receiver and the returned Encryptor can be used concurrently.
func (enc *Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.pk, nil)
}

// WithKey creates a copy of the receiver encrypting under pk.
func (enc *Encryptor) WithKey(pk *PublicKey) *Encryptor {
	return NewEncryptor(enc.params, pk, nil)
}
