//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", fmt.Errorf("lookup: %w", keys.ErrKeyPairNotFound), http.StatusNotFound},
		{"invalid character", &cryptoalg.InvalidCharacterError{Char: '\t', Position: 0}, http.StatusBadRequest},
		{"block size too large", &cryptoalg.BlockSizeTooLargeError{BlockSize: 3, MaxBlockSize: 1, ModulusBits: 12}, http.StatusBadRequest},
		{"decode range", fmt.Errorf("decrypt: %w", &cryptoalg.BlockDecodeRangeError{Block: 0}), http.StatusBadRequest},
		{"ciphertext format", cryptoalg.ErrCiphertextFormat, http.StatusBadRequest},
		{"bit length", numtheory.ErrInvalidBitLength, http.StatusBadRequest},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
		{"corrupt key file", cryptoalg.ErrKeyFileParse, http.StatusInternalServerError},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFromError(tt.err))
		})
	}
}
