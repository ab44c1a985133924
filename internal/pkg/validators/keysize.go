package validators

import (
	"github.com/go-playground/validator/v10"
)

// Bounds for the bit length of a single textbook RSA prime
const (
	MinKeyBitLength = 8
	MaxKeyBitLength = 4096
)

// KeyBitLengthValidation validates the bit length requested for each RSA prime.
// Primes shorter than MinKeyBitLength give moduli too small for useful blocks.
func KeyBitLengthValidation(fl validator.FieldLevel) bool {
	bitLength := fl.Field().Int()
	return bitLength >= MinKeyBitLength && bitLength <= MaxKeyBitLength
}
