package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrKeyPairNotFound is returned when no key pair metadata exists for an ID
var ErrKeyPairNotFound = errors.New("key pair not found")

// KeyPairMeta entity describing a generated key pair and where its key files live.
// The private exponent is only ever stored in the private key file.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid4"`
	BitLength       int       `validate:"keybitlength"`
	ModulusBits     int       `validate:"required,min=1"`
	Modulus         string    `validate:"required,numeric"`
	PublicExponent  string    `validate:"required,numeric"`
	PublicKeyPath   string    `validate:"required,nefield=PrivateKeyPath"`
	PrivateKeyPath  string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keybitlength", validators.KeyBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(k))
}

// KeyPairQuery filters and pages key pair metadata
type KeyPairQuery struct {
	BitLength int    `validate:"omitempty,min=0"`
	Limit     int    `validate:"omitempty,min=0"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=id bit_length modulus_bits date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery creates a query without filters
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	return formatValidationError(validator.New().Struct(q))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
