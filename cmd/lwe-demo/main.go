// Demo driver: generates a key pair for the fixed toy parameter set,
// encrypts a single bit and decrypts it back, printing every intermediate
// value to stdout.
package main

import (
	"fmt"
	"os"

	"lwe-pke/core/lwe"
)

const bit = 0

func run() error {
	params, err := lwe.Setup(1, 1, 1)
	if err != nil {
		return err
	}

	kgen := lwe.NewKeyGenerator(params, nil)
	sk, pk, err := kgen.GenKeyPairNew()
	if err != nil {
		return err
	}

	enc := lwe.NewEncryptor(params, pk, nil)
	ct, err := enc.EncryptNew(bit)
	if err != nil {
		return err
	}

	dec := lwe.NewDecryptor(params, sk)
	m, err := dec.DecryptNew(ct)
	if err != nil {
		return err
	}

	fmt.Printf("Message bit:\t%d\n", bit)
	fmt.Printf("Public key [0]:\t%v\n", pk.Value[0])
	fmt.Printf("Public key [1]:\t%v\n", pk.Value[1])
	fmt.Printf("Secret key:\t%v\n", sk.Value)
	fmt.Printf("Ciphertext:\t%v\n", ct.Value)
	fmt.Printf("Decrypted bit:\t%d\n", m)

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
