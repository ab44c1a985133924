package cryptoalg

import "math/big"

// KeyGenerator produces textbook RSA key pairs.
type KeyGenerator interface {
	// GenerateKeys samples two distinct primes of bitLength bits and derives (n, e) and (n, d).
	// The public exponent is drawn from the same range as the primes.
	GenerateKeys(bitLength int) (*KeyPair, error)
}

// BlockCodec converts alphabet text to and from base-SymbolCount integer blocks.
type BlockCodec interface {
	// TextToBlocks encodes message in chunks of blockSize characters, least significant character first.
	// Returns an InvalidCharacterError and no blocks if any character is outside Symbols.
	TextToBlocks(message string, blockSize int) ([]*big.Int, error)

	// BlocksToText decodes blocks back into exactly messageLength characters.
	// Returns a BlockDecodeRangeError when a digit falls outside the alphabet.
	BlocksToText(blocks []*big.Int, messageLength, blockSize int) (string, error)
}

// TextbookRSAProcessor handles unpadded RSA over alphabet-encoded blocks.
// NOTE: there is no padding and no integrity protection; this is for demonstration only.
type TextbookRSAProcessor interface {
	// GenerateKeys generates a key pair from two primes of bitLength bits each.
	GenerateKeys(bitLength int) (*KeyPair, error)

	// Encrypt encodes message into blocks and raises each to e modulo n.
	// A blockSize of zero derives the largest block size the modulus admits.
	Encrypt(message string, publicKey *PublicKey, blockSize int) (*Envelope, error)

	// Decrypt raises each block to d modulo n and decodes the result.
	Decrypt(envelope *Envelope, privateKey *PrivateKey) (string, error)

	// SavePublicKeyToFile writes "{n},{e}" to filename.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// SavePrivateKeyToFile writes "{n},{d}" to filename with owner-only permissions.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// ReadPublicKey reads a public key file.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)

	// ReadPrivateKey reads a private key file.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// DeleteKeyFiles removes both key files. Missing files are not an error;
	// the returned count says how many files were actually removed.
	DeleteKeyFiles(publicKeyPath, privateKeyPath string) (int, error)
}
