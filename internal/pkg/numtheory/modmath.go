package numtheory

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoInverse is returned by ModInverse when a and m share a factor
var ErrNoInverse = errors.New("no modular inverse")

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// The result is never negative; GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		r := new(big.Int).Mod(x, y)
		x, y = y, r
	}
	return x
}

// ModInverse returns the x in [0, m) with a*x ≡ 1 (mod m), computed with the extended
// Euclidean algorithm. It fails with ErrNoInverse unless gcd(a, m) == 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be positive, got %s", m)
	}
	if g := GCD(a, m); g.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNoInverse, a, m, g)
	}

	// invariant: u1*a ≡ u3 and v1*a ≡ v3 (mod m)
	u1, u3 := big.NewInt(1), new(big.Int).Mod(a, m)
	v1, v3 := big.NewInt(0), new(big.Int).Set(m)
	q := new(big.Int)
	for v3.Sign() != 0 {
		q.Quo(u3, v3)
		w1 := new(big.Int).Sub(u1, new(big.Int).Mul(q, v1))
		w3 := new(big.Int).Sub(u3, new(big.Int).Mul(q, v3))
		u1, u3 = v1, v3
		v1, v3 = w1, w3
	}
	return u1.Mod(u1, m), nil
}
