//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyPairService keys.KeyPairService
	CipherService  keys.CipherService

	// Infrastructure
	DBContext *persistence.TestContext
	KeyDir    string
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	processor, err := cryptography.NewTextbookRSAProcessor(logger)
	require.NoError(t, err, "Failed to create textbook RSA processor")

	keyStoreSettings := config.KeyStoreSettings{
		Directory:      t.TempDir(),
		PublicKeyFile:  config.DefaultPublicKeyFile,
		PrivateKeyFile: config.DefaultPrivateKeyFile,
	}

	keyPairService, err := NewKeyPairService(dbContext.KeyPairRepo, processor, keyStoreSettings, logger)
	require.NoError(t, err, "Failed to create KeyPairService")

	cipherService, err := NewCipherService(dbContext.KeyPairRepo, processor, logger)
	require.NoError(t, err, "Failed to create CipherService")

	return &TestServices{
		KeyPairService: keyPairService,
		CipherService:  cipherService,
		DBContext:      dbContext,
		KeyDir:         keyStoreSettings.Directory,
	}
}
