package config

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// DefaultKeyBitLength is the bit length of each generated prime
const DefaultKeyBitLength = 1024

// CipherSettings holds defaults for key generation and block encoding.
// A BlockSize of zero lets the cipher derive the block size from the modulus.
type CipherSettings struct {
	KeyBitLength int `yaml:"key_bit_length" validate:"keybitlength"`
	BlockSize    int `yaml:"block_size" validate:"gte=0"`
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keybitlength", validators.KeyBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register keybitlength validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}
	return nil
}
