package cryptography

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/hashicorp/go-multierror"
)

const (
	publicKeyFileMode  fs.FileMode = 0644
	privateKeyFileMode fs.FileMode = 0600
)

// textbookRSAProcessor struct that implements the TextbookRSAProcessor interface
type textbookRSAProcessor struct {
	generator cryptoalg.KeyGenerator
	codec     cryptoalg.BlockCodec
	logger    logger.Logger
}

// NewTextbookRSAProcessor creates and returns a new instance of textbookRSAProcessor backed by crypto/rand
func NewTextbookRSAProcessor(logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	generator, err := NewKeyGenerator(nil, logger)
	if err != nil {
		return nil, err
	}
	return NewTextbookRSAProcessorWith(generator, NewBlockCodec(), logger), nil
}

// NewTextbookRSAProcessorWith assembles a processor from explicit collaborators
func NewTextbookRSAProcessorWith(generator cryptoalg.KeyGenerator, codec cryptoalg.BlockCodec, logger logger.Logger) cryptoalg.TextbookRSAProcessor {
	return &textbookRSAProcessor{
		generator: generator,
		codec:     codec,
		logger:    logger,
	}
}

// GenerateKeys delegates to the key generator
func (r *textbookRSAProcessor) GenerateKeys(bitLength int) (*cryptoalg.KeyPair, error) {
	keyPair, err := r.generator.GenerateKeys(bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate textbook RSA keys: %w", err)
	}
	return keyPair, nil
}

// Encrypt checks the block size bound before touching the message, then encodes and
// encrypts block by block.
func (r *textbookRSAProcessor) Encrypt(message string, publicKey *cryptoalg.PublicKey, blockSize int) (*cryptoalg.Envelope, error) {
	if err := publicKey.Validate(); err != nil {
		return nil, err
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: got %d", cryptoalg.ErrInvalidBlockSize, blockSize)
	}

	modulusBits := publicKey.N.BitLen()
	if blockSize == 0 {
		// a modulus below SymbolCount yields 0 here and is reported as too small for one symbol
		blockSize = max(MaxBlockSize(modulusBits), 1)
		r.logger.Debug("Derived block size ", blockSize, " for ", modulusBits, "-bit modulus")
	}
	if err := checkBlockSize(blockSize, modulusBits); err != nil {
		return nil, err
	}

	blocks, err := r.codec.TextToBlocks(message, blockSize)
	if err != nil {
		return nil, err
	}

	encrypted := make([]*big.Int, len(blocks))
	for i, block := range blocks {
		encrypted[i] = new(big.Int).Exp(block, publicKey.E, publicKey.N)
	}

	r.logger.Info("Textbook RSA encryption succeeded for ", len(blocks), " block(s)")
	return &cryptoalg.Envelope{
		MessageLength: utf8.RuneCountInString(message),
		BlockSize:     blockSize,
		Blocks:        encrypted,
	}, nil
}

// Decrypt applies the same block size bound as Encrypt, then decrypts and decodes every block.
func (r *textbookRSAProcessor) Decrypt(envelope *cryptoalg.Envelope, privateKey *cryptoalg.PrivateKey) (string, error) {
	if err := privateKey.Validate(); err != nil {
		return "", err
	}
	if envelope == nil {
		return "", fmt.Errorf("%w: envelope cannot be nil", cryptoalg.ErrCiphertextFormat)
	}
	if err := checkBlockSize(envelope.BlockSize, privateKey.N.BitLen()); err != nil {
		return "", err
	}

	decrypted := make([]*big.Int, len(envelope.Blocks))
	for i, block := range envelope.Blocks {
		if block == nil || block.Sign() < 0 {
			return "", fmt.Errorf("%w: block %d is not a non-negative integer", cryptoalg.ErrCiphertextFormat, i)
		}
		decrypted[i] = new(big.Int).Exp(block, privateKey.D, privateKey.N)
	}

	message, err := r.codec.BlocksToText(decrypted, envelope.MessageLength, envelope.BlockSize)
	if err != nil {
		return "", err
	}

	r.logger.Info("Textbook RSA decryption succeeded for ", len(decrypted), " block(s)")
	return message, nil
}

// SavePublicKeyToFile saves the public key as "{n},{e}"
func (r *textbookRSAProcessor) SavePublicKeyToFile(publicKey *cryptoalg.PublicKey, filename string) error {
	if err := publicKey.Validate(); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(filename), []byte(publicKey.String()), publicKeyFileMode); err != nil {
		return fmt.Errorf("failed to write public key file %s: %w", filename, err)
	}

	r.logger.Info(fmt.Sprintf("Saved public key to %s", filename))
	return nil
}

// SavePrivateKeyToFile saves the private key as "{n},{d}", readable by the owner only
func (r *textbookRSAProcessor) SavePrivateKeyToFile(privateKey *cryptoalg.PrivateKey, filename string) error {
	if err := privateKey.Validate(); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(filename), []byte(privateKey.String()), privateKeyFileMode); err != nil {
		return fmt.Errorf("failed to write private key file %s: %w", filename, err)
	}

	r.logger.Info(fmt.Sprintf("Saved private key to %s", filename))
	return nil
}

// ReadPublicKey reads and parses a public key file
func (r *textbookRSAProcessor) ReadPublicKey(publicKeyPath string) (*cryptoalg.PublicKey, error) {
	data, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file %s: %w", publicKeyPath, err)
	}

	publicKey, err := cryptoalg.ParsePublicKey(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key file %s: %w", publicKeyPath, err)
	}

	r.logger.Info(fmt.Sprintf("Read public key from %s", publicKeyPath))
	return publicKey, nil
}

// ReadPrivateKey reads and parses a private key file
func (r *textbookRSAProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoalg.PrivateKey, error) {
	data, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", privateKeyPath, err)
	}

	privateKey, err := cryptoalg.ParsePrivateKey(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key file %s: %w", privateKeyPath, err)
	}

	r.logger.Info(fmt.Sprintf("Read private key from %s", privateKeyPath))
	return privateKey, nil
}

// DeleteKeyFiles removes both files. Absent files are logged and skipped; every other
// failure is collected so that one bad path does not stop the other from being removed.
func (r *textbookRSAProcessor) DeleteKeyFiles(publicKeyPath, privateKeyPath string) (int, error) {
	var result *multierror.Error
	removed := 0

	for _, path := range []string{publicKeyPath, privateKeyPath} {
		err := os.Remove(filepath.Clean(path))
		switch {
		case err == nil:
			removed++
			r.logger.Info(fmt.Sprintf("Deleted key file %s", path))
		case errors.Is(err, fs.ErrNotExist):
			r.logger.Warn(fmt.Sprintf("Key file %s does not exist", path))
		default:
			result = multierror.Append(result, fmt.Errorf("failed to delete key file %s: %w", path, err))
		}
	}

	return removed, result.ErrorOrNil()
}
