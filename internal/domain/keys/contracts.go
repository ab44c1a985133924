package keys

import (
	"context"
)

// KeyPairService defines methods for generating textbook RSA key pairs and managing their metadata.
type KeyPairService interface {
	// Generate creates a key pair from two primes of bitLength bits, writes its key files
	// and records the metadata. Cancelling ctx abandons the generation.
	Generate(ctx context.Context, bitLength int) (*KeyPairMeta, error)

	// List retrieves key pair metadata considering a query filter when set.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves the metadata of a key pair by its unique ID.
	// It returns ErrKeyPairNotFound if the ID is unknown.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)

	// DeleteByID removes the key files of a key pair and then its metadata.
	DeleteByID(ctx context.Context, keyPairID string) error
}

// CipherService defines methods for encrypting and decrypting with stored key pairs.
type CipherService interface {
	// Encrypt encrypts message with the public key of keyPairID and returns the ciphertext wire format.
	// A blockSize of zero selects the largest block size the modulus admits.
	Encrypt(ctx context.Context, keyPairID, message string, blockSize int) (string, error)

	// Decrypt parses ciphertext and decrypts it with the private key of keyPairID.
	Decrypt(ctx context.Context, keyPairID, ciphertext string) (string, error)
}

// KeyPairRepository defines the interface for KeyPairMeta persistence
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}
