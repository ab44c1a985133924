//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCipherHandler_Encrypt_Success(t *testing.T) {
	mockService := new(MockCipherService)
	handler := NewCipherHandler(mockService)

	mockService.On("Encrypt", mock.Anything, "pair-123", "Hi1", 3).Return("3;3;909305", nil)

	c, w := newTestContext("POST", "/keys/pair-123/encrypt", `{"message": "Hi1", "block_size": 3}`)
	c.Params = gin.Params{{Key: "id", Value: "pair-123"}}
	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response EncryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "3;3;909305", response.Ciphertext)
	mockService.AssertExpectations(t)
}

func TestCipherHandler_Encrypt_DefaultBlockSize(t *testing.T) {
	mockService := new(MockCipherService)
	handler := NewCipherHandler(mockService)

	mockService.On("Encrypt", mock.Anything, "pair-123", "Hi1", 0).Return("3;1;1,2,3", nil)

	c, w := newTestContext("POST", "/keys/pair-123/encrypt", `{"message": "Hi1"}`)
	c.Params = gin.Params{{Key: "id", Value: "pair-123"}}
	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCipherHandler_Encrypt_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		expected   int
	}{
		{"negative block size", `{"message": "Hi", "block_size": -1}`, nil, http.StatusBadRequest},
		{"malformed JSON", `{"message": `, nil, http.StatusBadRequest},
		{"invalid character", `{"message": "Hi\tthere"}`, &cryptoalg.InvalidCharacterError{Char: '\t', Position: 2}, http.StatusBadRequest},
		{"block size too large", `{"message": "Hi1", "block_size": 3}`, &cryptoalg.BlockSizeTooLargeError{BlockSize: 3, MaxBlockSize: 1, ModulusBits: 12}, http.StatusBadRequest},
		{"unknown key pair", `{"message": "Hi1"}`, keys.ErrKeyPairNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCipherService)
			handler := NewCipherHandler(mockService)
			if tt.serviceErr != nil {
				mockService.On("Encrypt", mock.Anything, "pair-123", mock.Anything, mock.Anything).Return("", tt.serviceErr)
			}

			c, w := newTestContext("POST", "/keys/pair-123/encrypt", tt.body)
			c.Params = gin.Params{{Key: "id", Value: "pair-123"}}
			handler.Encrypt(c)

			assert.Equal(t, tt.expected, w.Code)
			if tt.serviceErr == nil {
				mockService.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCipherHandler_Decrypt_Success(t *testing.T) {
	mockService := new(MockCipherService)
	handler := NewCipherHandler(mockService)

	mockService.On("Decrypt", mock.Anything, "pair-123", "3;3;909305").Return("Hi1", nil)

	c, w := newTestContext("POST", "/keys/pair-123/decrypt", `{"ciphertext": "3;3;909305"}`)
	c.Params = gin.Params{{Key: "id", Value: "pair-123"}}
	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Hi1", response.Message)
}

func TestCipherHandler_Decrypt_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		expected   int
	}{
		{"missing ciphertext", `{}`, nil, http.StatusBadRequest},
		{"malformed ciphertext", `{"ciphertext": "3,3,5"}`, cryptoalg.ErrCiphertextFormat, http.StatusBadRequest},
		{"tampered block", `{"ciphertext": "1;1;1773"}`, &cryptoalg.BlockDecodeRangeError{Block: 0}, http.StatusBadRequest},
		{"unknown key pair", `{"ciphertext": "1;1;5"}`, keys.ErrKeyPairNotFound, http.StatusNotFound},
		{"corrupt key file", `{"ciphertext": "1;1;5"}`, cryptoalg.ErrKeyFileParse, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCipherService)
			handler := NewCipherHandler(mockService)
			if tt.serviceErr != nil {
				mockService.On("Decrypt", mock.Anything, "pair-123", mock.Anything).Return("", tt.serviceErr)
			}

			c, w := newTestContext("POST", "/keys/pair-123/decrypt", tt.body)
			c.Params = gin.Params{{Key: "id", Value: "pair-123"}}
			handler.Decrypt(c)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
