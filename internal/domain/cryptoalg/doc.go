// Package cryptoalg defines the textbook RSA domain: the fixed symbol alphabet, key and
// envelope types with their plain text formats, the error taxonomy shared by every layer,
// and the processor contracts implemented in the cryptography package.
package cryptoalg
