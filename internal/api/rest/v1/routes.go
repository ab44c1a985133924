package v1

import (
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyPairService keys.KeyPairService, cipherService keys.CipherService) {
	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(keyPairService)
	v1.POST("/keys", keyHandler.GenerateKeyPair)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/keys/:id/encrypt", cipherHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", cipherHandler.Decrypt)
}
