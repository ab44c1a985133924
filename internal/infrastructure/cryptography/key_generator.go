package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

var bigOne = big.NewInt(1)

// keyGenerator struct that implements the KeyGenerator interface
type keyGenerator struct {
	oracle *numtheory.PrimalityOracle
	random io.Reader
	logger logger.Logger
}

// NewKeyGenerator creates a key generator drawing primes and exponents from random.
// A nil reader selects crypto/rand.
func NewKeyGenerator(random io.Reader, logger logger.Logger) (cryptoalg.KeyGenerator, error) {
	if random == nil {
		random = rand.Reader
	}
	return &keyGenerator{
		oracle: numtheory.NewPrimalityOracle(random),
		random: random,
		logger: logger,
	}, nil
}

// GenerateKeys samples two distinct primes p and q of bitLength bits, then draws e from
// [2^(bitLength-1), 2^bitLength) until it is coprime to (p-1)(q-1) and sets d = e^-1 mod (p-1)(q-1).
func (g *keyGenerator) GenerateKeys(bitLength int) (*cryptoalg.KeyPair, error) {
	if bitLength < numtheory.MinBitLength {
		return nil, fmt.Errorf("%w: %d, must be at least %d", numtheory.ErrInvalidBitLength, bitLength, numtheory.MinBitLength)
	}

	p, q, err := g.distinctPrimes(bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate primes: %w", err)
	}
	g.logger.Debug("Generated prime numbers p: ", p, " and q: ", q)

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	var e *big.Int
	for {
		e, err = numtheory.RandomWithBitLength(g.random, bitLength)
		if err != nil {
			return nil, fmt.Errorf("failed to sample public exponent: %w", err)
		}
		if numtheory.GCD(e, phi).Cmp(bigOne) == 0 {
			break
		}
	}

	d, err := numtheory.ModInverse(e, phi)
	if err != nil {
		// unreachable while e is coprime to phi
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	g.logger.Debug("Calculated n: ", n, ", selected e: ", e, ", calculated d: ", d)
	g.logger.Info("Generated textbook RSA key pair with ", n.BitLen(), "-bit modulus")

	return &cryptoalg.KeyPair{
		Public:  &cryptoalg.PublicKey{N: n, E: e},
		Private: &cryptoalg.PrivateKey{N: new(big.Int).Set(n), D: d},
		P:       p,
		Q:       q,
	}, nil
}

// distinctPrimes draws a fresh pair until the two primes differ.
func (g *keyGenerator) distinctPrimes(bitLength int) (*big.Int, *big.Int, error) {
	for {
		p, err := g.oracle.GenerateLargePrime(bitLength)
		if err != nil {
			return nil, nil, err
		}
		q, err := g.oracle.GenerateLargePrime(bitLength)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) != 0 {
			return p, q, nil
		}
		g.logger.Debug("Sampled p == q, retrying the pair")
	}
}
