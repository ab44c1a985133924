package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/google/uuid"
)

// keyPairService implements the KeyPairService interface on top of key files and a metadata repository
type keyPairService struct {
	keyPairRepo keys.KeyPairRepository
	processor   cryptoalg.TextbookRSAProcessor
	settings    config.KeyStoreSettings
	logger      logger.Logger
}

// NewKeyPairService creates a new keyPairService instance
func NewKeyPairService(
	keyPairRepo keys.KeyPairRepository,
	processor cryptoalg.TextbookRSAProcessor,
	settings config.KeyStoreSettings,
	logger logger.Logger,
) (keys.KeyPairService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &keyPairService{
		keyPairRepo: keyPairRepo,
		processor:   processor,
		settings:    settings,
		logger:      logger,
	}, nil
}

type generateResult struct {
	keyPair *cryptoalg.KeyPair
	err     error
}

// Generate generates a key pair, stores both key files as {id}-{file name} in the key directory and records the metadata.
func (s *keyPairService) Generate(ctx context.Context, bitLength int) (*keys.KeyPairMeta, error) {
	if bitLength < validators.MinKeyBitLength || bitLength > validators.MaxKeyBitLength {
		return nil, fmt.Errorf("%w: %d, must be between %d and %d",
			numtheory.ErrInvalidBitLength, bitLength, validators.MinKeyBitLength, validators.MaxKeyBitLength)
	}

	keyPair, err := s.generate(ctx, bitLength)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.settings.Directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory %s: %w", s.settings.Directory, err)
	}

	keyPairID := uuid.NewString()
	publicKeyPath := filepath.Join(s.settings.Directory, fmt.Sprintf("%s-%s", keyPairID, s.settings.PublicKeyFile))
	privateKeyPath := filepath.Join(s.settings.Directory, fmt.Sprintf("%s-%s", keyPairID, s.settings.PrivateKeyFile))

	if err := s.processor.SavePublicKeyToFile(keyPair.Public, publicKeyPath); err != nil {
		return nil, err
	}
	if err := s.processor.SavePrivateKeyToFile(keyPair.Private, privateKeyPath); err != nil {
		s.removeKeyFiles(publicKeyPath, privateKeyPath)
		return nil, err
	}

	keyPairMeta := &keys.KeyPairMeta{
		ID:              keyPairID,
		BitLength:       bitLength,
		ModulusBits:     keyPair.Public.N.BitLen(),
		Modulus:         keyPair.Public.N.String(),
		PublicExponent:  keyPair.Public.E.String(),
		PublicKeyPath:   publicKeyPath,
		PrivateKeyPath:  privateKeyPath,
		DateTimeCreated: time.Now(),
	}

	if err := s.keyPairRepo.Create(ctx, keyPairMeta); err != nil {
		s.removeKeyFiles(publicKeyPath, privateKeyPath)
		return nil, fmt.Errorf("failed to store key pair metadata: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Generated key pair %s with %d-bit modulus", keyPairID, keyPairMeta.ModulusBits))
	return keyPairMeta, nil
}

// generate runs key generation in the background so that a cancelled ctx returns immediately.
// Prime search cannot be interrupted; an abandoned search finishes and its result is dropped.
func (s *keyPairService) generate(ctx context.Context, bitLength int) (*cryptoalg.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan generateResult, 1)
	go func() {
		keyPair, err := s.processor.GenerateKeys(bitLength)
		done <- generateResult{keyPair: keyPair, err: err}
	}()

	select {
	case <-ctx.Done():
		s.logger.Warn("Key generation cancelled: ", ctx.Err())
		return nil, ctx.Err()
	case result := <-done:
		return result.keyPair, result.err
	}
}

func (s *keyPairService) removeKeyFiles(publicKeyPath, privateKeyPath string) {
	if _, err := s.processor.DeleteKeyFiles(publicKeyPath, privateKeyPath); err != nil {
		s.logger.Error("Failed to clean up key files: ", err)
	}
}

// List retrieves key pair metadata based on a query.
func (s *keyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	keyPairMetas, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key pair metadata: %w", err)
	}

	return keyPairMetas, nil
}

// GetByID retrieves the metadata of a key pair by its ID.
func (s *keyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key pair metadata %s: %w", keyPairID, err)
	}

	return keyPairMeta, nil
}

// DeleteByID deletes both key files of a key pair and then its metadata.
func (s *keyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return fmt.Errorf("failed to get key pair metadata: %w", err)
	}

	removed, err := s.processor.DeleteKeyFiles(keyPairMeta.PublicKeyPath, keyPairMeta.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to delete key files: %w", err)
	}
	s.logger.Info(fmt.Sprintf("Removed %d key file(s) of key pair %s", removed, keyPairID))

	if err := s.keyPairRepo.DeleteByID(ctx, keyPairID); err != nil {
		return fmt.Errorf("failed to delete key pair metadata: %w", err)
	}
	return nil
}
