package numtheory

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MillerRabinRounds is the number of random witnesses tried per candidate.
// A composite survives all of them with probability at most 4^-5.
const MillerRabinRounds = 5

// LowPrimeLimit bounds the trial-division table: it holds every prime below it.
const LowPrimeLimit = 100

// MinBitLength is the smallest bit length whose range [2^(k-1), 2^k) contains a prime.
const MinBitLength = 2

// ErrInvalidBitLength is returned when a bit length cannot produce a prime
var ErrInvalidBitLength = errors.New("invalid bit length")

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

var lowPrimes = primeSieve(LowPrimeLimit)

// primeSieve returns every prime below size using the sieve of Eratosthenes.
func primeSieve(size int) []*big.Int {
	if size < 2 {
		return nil
	}

	composite := make([]bool, size)
	for i := 2; i*i < size; i++ {
		if composite[i] {
			continue
		}
		for multiple := i * i; multiple < size; multiple += i {
			composite[multiple] = true
		}
	}

	var primes []*big.Int
	for i := 2; i < size; i++ {
		if !composite[i] {
			primes = append(primes, big.NewInt(int64(i)))
		}
	}
	return primes
}

// LowPrimes returns a copy of the small-prime table.
func LowPrimes() []int64 {
	table := make([]int64, len(lowPrimes))
	for i, p := range lowPrimes {
		table[i] = p.Int64()
	}
	return table
}

// PrimalityOracle decides primality and samples primes, drawing all randomness from one reader.
type PrimalityOracle struct {
	random io.Reader
	rounds int
}

// NewPrimalityOracle creates an oracle reading witnesses and candidates from random.
// A nil reader selects crypto/rand.
func NewPrimalityOracle(random io.Reader) *PrimalityOracle {
	if random == nil {
		random = rand.Reader
	}
	return &PrimalityOracle{
		random: random,
		rounds: MillerRabinRounds,
	}
}

// IsPrime reports whether num is prime. Numbers below 2 are rejected, small primes and
// their multiples are settled by trial division, everything else by Miller-Rabin.
// The only error source is the random reader.
func (o *PrimalityOracle) IsPrime(num *big.Int) (bool, error) {
	if num.Cmp(bigTwo) < 0 {
		return false, nil
	}

	remainder := new(big.Int)
	for _, prime := range lowPrimes {
		if num.Cmp(prime) == 0 {
			return true, nil
		}
		if remainder.Mod(num, prime).Sign() == 0 {
			return false, nil
		}
	}

	return o.millerRabin(num)
}

func (o *PrimalityOracle) millerRabin(num *big.Int) (bool, error) {
	if num.Cmp(bigTwo) < 0 || num.Bit(0) == 0 {
		return false, nil
	}
	if num.Cmp(bigThree) == 0 {
		return true, nil
	}

	// num-1 = s * 2^t with s odd
	numMinusOne := new(big.Int).Sub(num, bigOne)
	s := new(big.Int).Set(numMinusOne)
	t := 0
	for s.Bit(0) == 0 {
		s.Rsh(s, 1)
		t++
	}

	// witnesses are drawn from [2, num-2]
	span := new(big.Int).Sub(num, bigThree)

	for trial := 0; trial < o.rounds; trial++ {
		a, err := rand.Int(o.random, span)
		if err != nil {
			return false, fmt.Errorf("failed to sample Miller-Rabin witness: %w", err)
		}
		a.Add(a, bigTwo)

		v := new(big.Int).Exp(a, s, num)
		if v.Cmp(bigOne) == 0 {
			continue
		}
		for i := 0; v.Cmp(numMinusOne) != 0; i++ {
			if i == t-1 {
				return false, nil
			}
			v.Mul(v, v).Mod(v, num)
		}
	}
	return true, nil
}

// GenerateLargePrime samples integers from [2^(bitLength-1), 2^bitLength) until one is prime.
// There is no iteration cap; by the prime number theorem about bitLength*ln(2) draws are expected.
func (o *PrimalityOracle) GenerateLargePrime(bitLength int) (*big.Int, error) {
	if bitLength < MinBitLength {
		return nil, fmt.Errorf("%w: %d, must be at least %d", ErrInvalidBitLength, bitLength, MinBitLength)
	}

	for {
		candidate, err := RandomWithBitLength(o.random, bitLength)
		if err != nil {
			return nil, err
		}

		isPrime, err := o.IsPrime(candidate)
		if err != nil {
			return nil, err
		}
		if isPrime {
			return candidate, nil
		}
	}
}

// RandomWithBitLength returns an integer drawn uniformly from [2^(bitLength-1), 2^bitLength).
func RandomWithBitLength(random io.Reader, bitLength int) (*big.Int, error) {
	if bitLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitLength, bitLength)
	}

	low := new(big.Int).Lsh(bigOne, uint(bitLength-1))
	n, err := rand.Int(random, low)
	if err != nil {
		return nil, fmt.Errorf("failed to sample random integer: %w", err)
	}
	return n.Add(n, low), nil
}
