package lwe

import "fmt"

// Decryptor decrypts ciphertexts with a secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	if sk == nil || len(sk.Value) != int(params.N())+1 {
		// Sanity check, this error should not happen with a generated key.
		panic(fmt.Errorf("%w: secret key must have length %d", ErrDimensionMismatch, params.N()+1))
	}
	return &Decryptor{
		params: params,
		sk:     sk,
	}
}

// DecryptNew recovers the bit as (<ct, sk> mod q) mod 2. The inner product
// accumulates exactly and is reduced once, so the result does not depend on
// evaluation order.
func (dec *Decryptor) DecryptNew(ct *Ciphertext) (m uint64, err error) {
	if len(ct.Value) != len(dec.sk.Value) {
		return 0, fmt.Errorf("%w: ciphertext length %d, expected %d", ErrDimensionMismatch, len(ct.Value), len(dec.sk.Value))
	}

	var dot uint64
	for i := range ct.Value {
		dot += ct.Value[i] * dec.sk.Value[i]
	}

	return (dot % dec.params.Q()) % 2, nil
}

// ShallowCopy creates a copy of the receiver. The receiver and the returned
// Decryptor can be used concurrently.
func (dec *Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{
		params: dec.params,
		sk:     dec.sk,
	}
}

// WithKey creates a copy of the receiver decrypting under sk.
func (dec *Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return NewDecryptor(dec.params, sk)
}
