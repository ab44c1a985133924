package cryptoalg

import (
	"fmt"
	"math/big"
	"strings"
)

// PublicKey is the public half (n, e) of a textbook RSA key pair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the private half (n, d) of a textbook RSA key pair.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// KeyPair is the result of key generation. P and Q are kept for display and
// invariant checks only; they are never written to key files.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
	P       *big.Int
	Q       *big.Int
}

// String renders the key in its key file format "{n},{e}".
func (k *PublicKey) String() string {
	return fmt.Sprintf("%s,%s", k.N, k.E)
}

// Validate checks that the key is present and its modulus is at least 2.
func (k *PublicKey) Validate() error {
	if k == nil || k.N == nil || k.E == nil {
		return fmt.Errorf("%w: public key cannot be nil", ErrInvalidKey)
	}
	return validateModulus(k.N)
}

// String renders the key in its key file format "{n},{d}".
func (k *PrivateKey) String() string {
	return fmt.Sprintf("%s,%s", k.N, k.D)
}

// Validate checks that the key is present and its modulus is at least 2.
func (k *PrivateKey) Validate() error {
	if k == nil || k.N == nil || k.D == nil {
		return fmt.Errorf("%w: private key cannot be nil", ErrInvalidKey)
	}
	return validateModulus(k.N)
}

func validateModulus(n *big.Int) error {
	if n.Cmp(big.NewInt(2)) < 0 {
		return fmt.Errorf("%w: modulus must be at least 2, got %s", ErrInvalidKey, n)
	}
	return nil
}

// ParsePublicKey parses key file content of the form "{n},{e}".
func ParsePublicKey(content string) (*PublicKey, error) {
	n, e, err := parseKeyFields(content)
	if err != nil {
		return nil, err
	}
	return &PublicKey{N: n, E: e}, nil
}

// ParsePrivateKey parses key file content of the form "{n},{d}".
func ParsePrivateKey(content string) (*PrivateKey, error) {
	n, d, err := parseKeyFields(content)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{N: n, D: d}, nil
}

func parseKeyFields(content string) (*big.Int, *big.Int, error) {
	fields := strings.Split(strings.TrimSpace(content), ",")
	if len(fields) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 comma-separated fields, got %d", ErrKeyFileParse, len(fields))
	}

	modulus, err := parseNonNegative(fields[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: modulus: %v", ErrKeyFileParse, err)
	}
	if err := validateModulus(modulus); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeyFileParse, err)
	}

	exponent, err := parseNonNegative(fields[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: exponent: %v", ErrKeyFileParse, err)
	}
	return modulus, exponent, nil
}

// parseNonNegative parses a decimal integer, tolerating surrounding whitespace.
func parseNonNegative(token string) (*big.Int, error) {
	token = strings.TrimSpace(token)
	n, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", token)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%q is negative", token)
	}
	return n, nil
}
