package lwe

import "errors"

var (
	// ErrInvalidParameter reports a parameter set the arithmetic cannot be
	// defined on (q <= 1 or n < 0).
	ErrInvalidParameter = errors.New("lwe: invalid parameter")

	// ErrInvalidMessage reports a plaintext outside {0, 1}.
	ErrInvalidMessage = errors.New("lwe: message must be 0 or 1")

	// ErrDimensionMismatch reports a ciphertext or key whose length does not
	// match the parameter set.
	ErrDimensionMismatch = errors.New("lwe: dimension mismatch")

	// ErrCorrectness reports that a freshly generated public key fails the
	// identity pk*sk = 2e (mod q). This indicates a logic defect in key
	// generation; key generation must abort, not retry.
	ErrCorrectness = errors.New("lwe: public key fails correctness identity")
)
