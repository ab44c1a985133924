package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for encrypting and decrypting with stored key pairs
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService keys.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// Encrypt handles the POST request to encrypt a message with a key pair
// @Summary Encrypt a message
// @Description Encrypt a message over the 66-symbol alphabet with the public key of a key pair.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body EncryptRequest true "Message and optional block size"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encrypt request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	ciphertext, err := handler.cipherService.Encrypt(ctx.Request.Context(), keyPairID, request.Message, request.BlockSize)
	if err != nil {
		ctx.JSON(statusFromError(err), ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt ciphertext with a key pair
// @Summary Decrypt ciphertext
// @Description Decrypt "{length};{block size};{blocks}" ciphertext with the private key of a key pair.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DecryptRequest true "Ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decrypt request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	message, err := handler.cipherService.Decrypt(ctx.Request.Context(), keyPairID, request.Ciphertext)
	if err != nil {
		ctx.JSON(statusFromError(err), ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Message: message})
}
