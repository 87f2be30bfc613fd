package lwe

import (
	"github.com/tuneinsight/lattigo/v5/utils/structs"
)

// SecretKey is a vector of length n+1 with entries in [0, q).
// Value[0] is always 1; the correctness identity of the public key and the
// final decryption step both rely on it.
type SecretKey struct {
	Value structs.Vector[uint64]
}

// PublicKey is an N x (n+1) matrix with entries in [0, q).
// Row i is (b_i | -A_i) mod q where b = A*sk[1:] + 2e.
type PublicKey struct {
	Value structs.Matrix[uint64]
}

// Ciphertext is a vector of length n+1 with entries in [0, q).
type Ciphertext struct {
	Value structs.Vector[uint64]
}

func NewCiphertext(params Parameters) *Ciphertext {
	return &Ciphertext{
		Value: make(structs.Vector[uint64], params.N()+1),
	}
}

func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: sk.Value.CopyNew()}
}

func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{Value: pk.Value.CopyNew()}
}

func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: ct.Value.CopyNew()}
}
