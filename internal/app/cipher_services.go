package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// cipherService implements the CipherService interface using the key files of stored key pairs
type cipherService struct {
	keyPairRepo keys.KeyPairRepository
	processor   cryptoalg.TextbookRSAProcessor
	logger      logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(keyPairRepo keys.KeyPairRepository, processor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (keys.CipherService, error) {
	return &cipherService{
		keyPairRepo: keyPairRepo,
		processor:   processor,
		logger:      logger,
	}, nil
}

// Encrypt encrypts message with the public key file of keyPairID.
func (s *cipherService) Encrypt(ctx context.Context, keyPairID, message string, blockSize int) (string, error) {
	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", fmt.Errorf("failed to get key pair metadata: %w", err)
	}

	publicKey, err := s.processor.ReadPublicKey(keyPairMeta.PublicKeyPath)
	if err != nil {
		return "", err
	}

	envelope, err := s.processor.Encrypt(message, publicKey, blockSize)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with key pair %s: %w", keyPairID, err)
	}

	return envelope.String(), nil
}

// Decrypt parses ciphertext and decrypts it with the private key file of keyPairID.
func (s *cipherService) Decrypt(ctx context.Context, keyPairID, ciphertext string) (string, error) {
	envelope, err := cryptoalg.ParseEnvelope(ciphertext)
	if err != nil {
		return "", err
	}

	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", fmt.Errorf("failed to get key pair metadata: %w", err)
	}

	privateKey, err := s.processor.ReadPrivateKey(keyPairMeta.PrivateKeyPath)
	if err != nil {
		return "", err
	}

	message, err := s.processor.Decrypt(envelope, privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt with key pair %s: %w", keyPairID, err)
	}

	return message, nil
}
