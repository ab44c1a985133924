package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key pair operations
type KeyHandler interface {
	GenerateKeyPair(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyPairService keys.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// GenerateKeyPair handles the POST request to generate a textbook RSA key pair
// @Summary Generate a key pair
// @Description Generate a textbook RSA key pair from two primes of the requested bit length and store its key files.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest true "Prime bit length"
// @Success 201 {object} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeyPair(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key pair data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	keyPairMeta, err := handler.keyPairService.Generate(ctx.Request.Context(), request.BitLength)
	if err != nil {
		ctx.JSON(statusFromError(err), ErrorResponse{Message: fmt.Sprintf("error generating key pair: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairMetaResponse(keyPairMeta))
}

// ListMetadata handles the GET request to list key pair metadata with optional query parameters
// @Summary List key pair metadata
// @Description Fetch key pair metadata filtered by bit length, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param bitLength query int false "Prime bit length"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by id, bit_length, modulus_bits or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	intParams := map[string]*int{
		"bitLength": &query.BitLength,
		"limit":     &query.Limit,
		"offset":    &query.Offset,
	}
	for name, target := range intParams {
		raw := ctx.Query(name)
		if len(raw) == 0 {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, raw)})
			return
		}
		*target = value
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	keyPairMetas, err := handler.keyPairService.List(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(statusFromError(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := make([]KeyPairMetaResponse, 0, len(keyPairMetas))
	for _, keyPairMeta := range keyPairMetas {
		listResponse = append(listResponse, NewKeyPairMetaResponse(keyPairMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key pair metadata by ID
// @Summary Retrieve key pair metadata by ID
// @Description Fetch the public modulus, exponent and creation date of a key pair.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	keyPairMeta, err := handler.keyPairService.GetByID(ctx.Request.Context(), keyPairID)
	if err != nil {
		ctx.JSON(statusFromError(err), ErrorResponse{Message: fmt.Sprintf("could not get key pair with id %s: %v", keyPairID, err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, NewKeyPairMetaResponse(keyPairMeta))
}

// DeleteByID handles the DELETE request to delete a key pair by ID
// @Summary Delete a key pair by ID
// @Description Delete both key files of a key pair and its metadata.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	if err := handler.keyPairService.DeleteByID(ctx.Request.Context(), keyPairID); err != nil {
		ctx.JSON(statusFromError(err), ErrorResponse{Message: fmt.Sprintf("error deleting key pair with id %s: %v", keyPairID, err.Error())})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key pair with id %s", keyPairID)})
}
