package cryptoalg

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidCharacter marks plaintext containing a character outside Symbols
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrBlockDecodeRange marks a decrypted block holding a digit >= SymbolCount,
	// which points at a wrong key or corrupted ciphertext
	ErrBlockDecodeRange = errors.New("decoded symbol index out of range")
	// ErrBlockSizeTooLarge marks a block size whose blocks could exceed the modulus
	ErrBlockSizeTooLarge = errors.New("block size is too large for key and symbol set size")
	// ErrInvalidBlockSize marks a block size below one
	ErrInvalidBlockSize = errors.New("block size must be positive")
	// ErrInvalidKey marks a missing key or a modulus that cannot carry a single block
	ErrInvalidKey = errors.New("invalid key")
	// ErrKeyFileParse marks key file content that is not "{n},{exponent}"
	ErrKeyFileParse = errors.New("malformed key file")
	// ErrCiphertextFormat marks ciphertext that is not "{length};{block size};{b1},...,{bk}"
	ErrCiphertextFormat = errors.New("malformed ciphertext")
)

// InvalidCharacterError reports the first character of a message missing from Symbols.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidCharacter, e.Char, e.Position)
}

// Is lets errors.Is match ErrInvalidCharacter.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// BlockDecodeRangeError reports the block and the digit that fell outside the alphabet.
type BlockDecodeRangeError struct {
	Block int
	Digit *big.Int
}

func (e *BlockDecodeRangeError) Error() string {
	return fmt.Sprintf("%v: digit %s in block %d, alphabet has %d symbols", ErrBlockDecodeRange, e.Digit, e.Block, SymbolCount)
}

// Is lets errors.Is match ErrBlockDecodeRange.
func (e *BlockDecodeRangeError) Is(target error) bool {
	return target == ErrBlockDecodeRange
}

// BlockSizeTooLargeError reports a requested block size against the largest one the modulus admits.
type BlockSizeTooLargeError struct {
	BlockSize    int
	MaxBlockSize int
	ModulusBits  int
}

func (e *BlockSizeTooLargeError) Error() string {
	return fmt.Sprintf("%v: block size %d exceeds %d for a %d-bit modulus", ErrBlockSizeTooLarge, e.BlockSize, e.MaxBlockSize, e.ModulusBits)
}

// Is lets errors.Is match ErrBlockSizeTooLarge.
func (e *BlockSizeTooLargeError) Is(target error) bool {
	return target == ErrBlockSizeTooLarge
}
