package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyPairRequest holds the prime bit length of a new key pair
type GenerateKeyPairRequest struct {
	BitLength int `json:"bit_length" validate:"keybitlength"`
}

// Validate checks the requested bit length against the supported bounds
func (r *GenerateKeyPairRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keybitlength", validators.KeyBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(r))
}

// EncryptRequest holds a plaintext message; a zero block size selects the largest one the key admits
type EncryptRequest struct {
	Message   string `json:"message"`
	BlockSize int    `json:"block_size" validate:"gte=0"`
}

// Validate checks the block size is not negative
func (r *EncryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// DecryptRequest holds ciphertext in "{length};{block size};{b1},...,{bk}" form
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required"`
}

// Validate checks the ciphertext is present
func (r *DecryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// KeyPairMetaResponse is the public view of stored key pair metadata
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	BitLength       int       `json:"bit_length"`
	ModulusBits     int       `json:"modulus_bits"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeyPairMetaResponse maps metadata to its response, leaving out file system paths
func NewKeyPairMetaResponse(meta *keys.KeyPairMeta) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              meta.ID,
		BitLength:       meta.BitLength,
		ModulusBits:     meta.ModulusBits,
		Modulus:         meta.Modulus,
		PublicExponent:  meta.PublicExponent,
		DateTimeCreated: meta.DateTimeCreated,
	}
}

// EncryptResponse carries the ciphertext wire format
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse carries the recovered message
type DecryptResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
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
		return fmt.Errorf("%v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
