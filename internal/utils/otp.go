package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode produces a uniformly distributed zero-padded numeric
// code of the given length. The code only needs to resist guessing
// within its short lifetime, but crypto/rand is cheap enough to use
// anyway. Generation cannot fail short of a broken entropy source.
func GenerateOTPCode(length int) string {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(fmt.Sprintf("otp: system entropy source unavailable: %v", err))
	}

	return fmt.Sprintf("%0*d", length, n)
}
