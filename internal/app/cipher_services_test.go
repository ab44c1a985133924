//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const toyKeyPairID = "toy"

// setupCipherService stores the n=3233, e=17, d=2753 key pair under toyKeyPairID.
func setupCipherService(t *testing.T) (keys.CipherService, *MockKeyPairRepository) {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	processor, err := cryptography.NewTextbookRSAProcessor(log)
	require.NoError(t, err)

	dir := t.TempDir()
	n := big.NewInt(3233)
	meta := &keys.KeyPairMeta{
		ID:             toyKeyPairID,
		PublicKeyPath:  filepath.Join(dir, "public_key.txt"),
		PrivateKeyPath: filepath.Join(dir, "private_key.txt"),
	}
	require.NoError(t, processor.SavePublicKeyToFile(&cryptoalg.PublicKey{N: n, E: big.NewInt(17)}, meta.PublicKeyPath))
	require.NoError(t, processor.SavePrivateKeyToFile(&cryptoalg.PrivateKey{N: n, D: big.NewInt(2753)}, meta.PrivateKeyPath))

	repo := &MockKeyPairRepository{}
	repo.On("GetByID", mock.Anything, toyKeyPairID).Return(meta, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, keys.ErrKeyPairNotFound)

	service, err := NewCipherService(repo, processor, log)
	require.NoError(t, err)
	return service, repo
}

func TestCipherService_EncryptDecrypt(t *testing.T) {
	service, _ := setupCipherService(t)

	ciphertext, err := service.Encrypt(context.Background(), toyKeyPairID, "Hi1", 0)
	require.NoError(t, err)

	envelope, err := cryptoalg.ParseEnvelope(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, 3, envelope.MessageLength)
	assert.Equal(t, 1, envelope.BlockSize)
	assert.Len(t, envelope.Blocks, 3)

	message, err := service.Decrypt(context.Background(), toyKeyPairID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "Hi1", message)
}

func TestCipherService_EncryptErrors(t *testing.T) {
	service, _ := setupCipherService(t)

	_, err := service.Encrypt(context.Background(), toyKeyPairID, "Hi1", 3)
	assert.ErrorIs(t, err, cryptoalg.ErrBlockSizeTooLarge)

	_, err = service.Encrypt(context.Background(), toyKeyPairID, "tab\there", 0)
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidCharacter)

	_, err = service.Encrypt(context.Background(), "missing", "Hi1", 0)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
	assert.Contains(t, err.Error(), "failed to get key pair metadata")
}

func TestCipherService_DecryptErrors(t *testing.T) {
	service, repo := setupCipherService(t)

	_, err := service.Decrypt(context.Background(), toyKeyPairID, "3,1,5")
	assert.ErrorIs(t, err, cryptoalg.ErrCiphertextFormat)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	_, err = service.Decrypt(context.Background(), toyKeyPairID, "1;1;1773")
	assert.ErrorIs(t, err, cryptoalg.ErrBlockDecodeRange)

	_, err = service.Decrypt(context.Background(), "missing", "1;1;5")
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
	assert.Contains(t, err.Error(), "failed to get key pair metadata")
}
