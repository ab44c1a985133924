package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// clientErrors are caused by request content rather than server state
var clientErrors = []error{
	cryptoalg.ErrInvalidCharacter,
	cryptoalg.ErrBlockDecodeRange,
	cryptoalg.ErrBlockSizeTooLarge,
	cryptoalg.ErrInvalidBlockSize,
	cryptoalg.ErrCiphertextFormat,
	numtheory.ErrInvalidBitLength,
}

// statusFromError maps service errors to HTTP status codes
func statusFromError(err error) int {
	if errors.Is(err, keys.ErrKeyPairNotFound) {
		return http.StatusNotFound
	}
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			return http.StatusBadRequest
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
