// Package numtheory holds the number-theoretic primitives behind textbook RSA:
// a small-prime sieve, the Miller-Rabin primality oracle, random prime sampling,
// Euclid's GCD and the extended-Euclid modular inverse.
//
// The small-prime table is built once at package initialization and never
// mutated afterwards, so every function here is safe for concurrent use.
package numtheory
