//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyKeyPair is the classic p=61, q=53 example: a 12-bit modulus admitting one symbol per block.
func toyKeyPair() (*cryptoalg.PublicKey, *cryptoalg.PrivateKey) {
	n := big.NewInt(3233)
	return &cryptoalg.PublicKey{N: n, E: big.NewInt(17)},
		&cryptoalg.PrivateKey{N: n, D: big.NewInt(2753)}
}

// wideToyKeyPair uses p=1009, q=1013: a 20-bit modulus admitting three symbols per block.
func wideToyKeyPair() (*cryptoalg.PublicKey, *cryptoalg.PrivateKey) {
	n := big.NewInt(1022117)
	return &cryptoalg.PublicKey{N: n, E: big.NewInt(17)},
		&cryptoalg.PrivateKey{N: n, D: big.NewInt(180017)}
}

// blockSizeBelowModulus returns the largest B with S^B <= n, so every block is a valid residue.
func blockSizeBelowModulus(n *big.Int) int {
	power := big.NewInt(int64(cryptoalg.SymbolCount))
	size := 0
	for power.Cmp(n) <= 0 {
		size++
		power.Mul(power, big.NewInt(int64(cryptoalg.SymbolCount)))
	}
	return size
}

func setupTextbookRSAProcessor(t *testing.T) cryptoalg.TextbookRSAProcessor {
	t.Helper()
	processor, err := NewTextbookRSAProcessor(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return processor
}

func TestTextbookRSAProcessorToyKey(t *testing.T) {
	processor := setupTextbookRSAProcessor(t)
	publicKey, privateKey := toyKeyPair()

	t.Run("DefaultBlockSize", func(t *testing.T) {
		envelope, err := processor.Encrypt("Hi1", publicKey, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, envelope.MessageLength)
		assert.Equal(t, 1, envelope.BlockSize)
		require.Len(t, envelope.Blocks, 3)

		// H=7: 7^17 mod 3233
		assert.Equal(t, new(big.Int).Exp(big.NewInt(7), big.NewInt(17), big.NewInt(3233)), envelope.Blocks[0])

		message, err := processor.Decrypt(envelope, privateKey)
		require.NoError(t, err)
		assert.Equal(t, "Hi1", message)
	})

	t.Run("BlockSizeTooLarge", func(t *testing.T) {
		envelope, err := processor.Encrypt("Hi1", publicKey, 3)
		assert.Nil(t, envelope)
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoalg.ErrBlockSizeTooLarge)

		var sizeErr *cryptoalg.BlockSizeTooLargeError
		require.True(t, errors.As(err, &sizeErr))
		assert.Equal(t, 1, sizeErr.MaxBlockSize)
		assert.Equal(t, 12, sizeErr.ModulusBits)
	})

	t.Run("DecryptRejectsOversizedEnvelope", func(t *testing.T) {
		envelope := &cryptoalg.Envelope{MessageLength: 3, BlockSize: 3, Blocks: []*big.Int{big.NewInt(1)}}
		_, err := processor.Decrypt(envelope, privateKey)
		assert.ErrorIs(t, err, cryptoalg.ErrBlockSizeTooLarge)
	})

	t.Run("BlockSizeCheckedBeforeCharacters", func(t *testing.T) {
		_, err := processor.Encrypt("Hi\t", publicKey, 3)
		assert.ErrorIs(t, err, cryptoalg.ErrBlockSizeTooLarge)
		assert.NotErrorIs(t, err, cryptoalg.ErrInvalidCharacter)
	})

	t.Run("InvalidCharacter", func(t *testing.T) {
		envelope, err := processor.Encrypt("Hi\tthere", publicKey, 1)
		assert.Nil(t, envelope)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidCharacter)
	})

	t.Run("NegativeBlockSize", func(t *testing.T) {
		_, err := processor.Encrypt("Hi", publicKey, -2)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidBlockSize)
	})

	t.Run("TamperedBlock", func(t *testing.T) {
		// 1773 = 100^17 mod 3233 decrypts to 100, which is outside the alphabet
		envelope := &cryptoalg.Envelope{MessageLength: 1, BlockSize: 1, Blocks: []*big.Int{big.NewInt(1773)}}
		_, err := processor.Decrypt(envelope, privateKey)
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoalg.ErrBlockDecodeRange)

		var rangeErr *cryptoalg.BlockDecodeRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, big.NewInt(100), rangeErr.Digit)
	})

	t.Run("OversizedMessageLength", func(t *testing.T) {
		// 2369 = 7^17 mod 3233
		envelope, err := cryptoalg.ParseEnvelope("9223372036854775807;1;2369")
		require.NoError(t, err)

		var message string
		require.NotPanics(t, func() {
			message, err = processor.Decrypt(envelope, privateKey)
		})
		require.NoError(t, err)
		assert.Equal(t, "H", message)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		envelope, err := processor.Encrypt("", publicKey, 0)
		require.NoError(t, err)
		assert.Equal(t, "0;1;", envelope.String())

		message, err := processor.Decrypt(envelope, privateKey)
		require.NoError(t, err)
		assert.Equal(t, "", message)
	})

	t.Run("ModulusBelowSymbolCount", func(t *testing.T) {
		tiny := &cryptoalg.PublicKey{N: big.NewInt(55), E: big.NewInt(3)}
		_, err := processor.Encrypt("a", tiny, 0)
		assert.ErrorIs(t, err, cryptoalg.ErrBlockSizeTooLarge)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := processor.Encrypt("a", nil, 0)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKey)

		_, err = processor.Decrypt(&cryptoalg.Envelope{BlockSize: 1}, nil)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKey)

		_, err = processor.Decrypt(nil, privateKey)
		assert.ErrorIs(t, err, cryptoalg.ErrCiphertextFormat)
	})
}

func TestTextbookRSAProcessorWideToyKey(t *testing.T) {
	processor := setupTextbookRSAProcessor(t)
	publicKey, privateKey := wideToyKeyPair()

	envelope, err := processor.Encrypt("Hi1", publicKey, 3)
	require.NoError(t, err)
	assert.Equal(t, "3;3;909305", envelope.String())

	message, err := processor.Decrypt(envelope, privateKey)
	require.NoError(t, err)
	assert.Equal(t, "Hi1", message)
}

func TestTextbookRSAProcessorRoundTrip(t *testing.T) {
	processor := setupTextbookRSAProcessor(t)

	messages := []string{
		"",
		"a",
		"Hello World!",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890 !?.",
		"Is this thing on? 1 2 3...",
	}

	for _, bitLength := range []int{16, 32, 64, 128} {
		keyPair, err := processor.GenerateKeys(bitLength)
		require.NoError(t, err)

		blockSize := blockSizeBelowModulus(keyPair.Public.N)
		for _, message := range messages {
			envelope, err := processor.Encrypt(message, keyPair.Public, blockSize)
			require.NoError(t, err)

			parsed, err := cryptoalg.ParseEnvelope(envelope.String())
			require.NoError(t, err)

			decrypted, err := processor.Decrypt(parsed, keyPair.Private)
			require.NoError(t, err)
			assert.Equal(t, message, decrypted, "%d-bit primes, block size %d", bitLength, blockSize)
		}
	}
}

func TestTextbookRSAProcessorKeyFiles(t *testing.T) {
	processor := setupTextbookRSAProcessor(t)
	publicKey, privateKey := toyKeyPair()

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		pubFile := filepath.Join(tmpDir, "public_key.txt")
		privFile := filepath.Join(tmpDir, "private_key.txt")

		require.NoError(t, processor.SavePublicKeyToFile(publicKey, pubFile))
		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))

		content, err := os.ReadFile(pubFile)
		require.NoError(t, err)
		assert.Equal(t, "3233,17", string(content))

		info, err := os.Stat(privFile)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())

		readPublic, err := processor.ReadPublicKey(pubFile)
		require.NoError(t, err)
		assert.Equal(t, publicKey.String(), readPublic.String())

		readPrivate, err := processor.ReadPrivateKey(privFile)
		require.NoError(t, err)
		assert.Equal(t, privateKey.String(), readPrivate.String())
	})

	t.Run("ReadMalformedKey", func(t *testing.T) {
		path := testutil.CreateTempTestFile(t, "public_key.txt", "3233;17")
		_, err := processor.ReadPublicKey(path)
		assert.ErrorIs(t, err, cryptoalg.ErrKeyFileParse)

		_, err = processor.ReadPrivateKey(path)
		assert.ErrorIs(t, err, cryptoalg.ErrKeyFileParse)
	})

	t.Run("ReadMissingKey", func(t *testing.T) {
		_, err := processor.ReadPublicKey(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("SaveNilKey", func(t *testing.T) {
		err := processor.SavePublicKeyToFile(nil, filepath.Join(t.TempDir(), "public_key.txt"))
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKey)
	})

	t.Run("DeleteKeyFiles", func(t *testing.T) {
		tmpDir := t.TempDir()
		pubFile := filepath.Join(tmpDir, "public_key.txt")
		privFile := filepath.Join(tmpDir, "private_key.txt")
		require.NoError(t, processor.SavePublicKeyToFile(publicKey, pubFile))
		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))

		removed, err := processor.DeleteKeyFiles(pubFile, privFile)
		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.NoFileExists(t, pubFile)
		assert.NoFileExists(t, privFile)

		removed, err = processor.DeleteKeyFiles(pubFile, privFile)
		require.NoError(t, err)
		assert.Equal(t, 0, removed)
	})

	t.Run("DeleteKeyFilesPartial", func(t *testing.T) {
		tmpDir := t.TempDir()
		privFile := filepath.Join(tmpDir, "private_key.txt")
		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))

		removed, err := processor.DeleteKeyFiles(filepath.Join(tmpDir, "public_key.txt"), privFile)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
	})

	t.Run("DeleteKeyFilesCollectsFailures", func(t *testing.T) {
		tmpDir := t.TempDir()
		busyDir := filepath.Join(tmpDir, "busy")
		require.NoError(t, os.Mkdir(busyDir, 0700))
		require.NoError(t, testutil.CreateTestFile(filepath.Join(busyDir, "keep.txt"), []byte("x")))

		privFile := filepath.Join(tmpDir, "private_key.txt")
		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))

		removed, err := processor.DeleteKeyFiles(busyDir, privFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "busy")
		assert.Equal(t, 1, removed)
		assert.NoFileExists(t, privFile)
	})
}
