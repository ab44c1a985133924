package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default key file names, relative to the key directory
const (
	DefaultPublicKeyFile  = "public_key.txt"
	DefaultPrivateKeyFile = "private_key.txt"
)

// KeyStoreSettings describes where plain text key files are kept
type KeyStoreSettings struct {
	Directory      string `yaml:"directory" validate:"required"`
	PublicKeyFile  string `yaml:"public_key_file" validate:"required,nefield=PrivateKeyFile"`
	PrivateKeyFile string `yaml:"private_key_file" validate:"required"`
}

// Validate checks that all fields in KeyStoreSettings are valid
func (s *KeyStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyStoreSettings: %w", err)
	}
	return nil
}
