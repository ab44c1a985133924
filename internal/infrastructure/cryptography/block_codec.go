package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

var bigSymbolCount = big.NewInt(int64(cryptoalg.SymbolCount))

// blockCodec struct that implements the BlockCodec interface
type blockCodec struct{}

// NewBlockCodec creates a codec over cryptoalg.Symbols
func NewBlockCodec() cryptoalg.BlockCodec {
	return &blockCodec{}
}

// symbolPowers returns S^0 ... S^(blockSize-1).
func symbolPowers(blockSize int) []*big.Int {
	powers := make([]*big.Int, blockSize)
	power := big.NewInt(1)
	for i := range powers {
		powers[i] = new(big.Int).Set(power)
		power.Mul(power, bigSymbolCount)
	}
	return powers
}

// TextToBlocks gives the character at absolute position i the weight S^(i mod blockSize),
// so the first character of every chunk is the least significant digit of its block.
func (c *blockCodec) TextToBlocks(message string, blockSize int) ([]*big.Int, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: got %d", cryptoalg.ErrInvalidBlockSize, blockSize)
	}

	runes := []rune(message)
	digits := make([]int64, len(runes))
	for i, r := range runes {
		index, ok := cryptoalg.SymbolIndex(r)
		if !ok {
			return nil, &cryptoalg.InvalidCharacterError{Char: r, Position: i}
		}
		digits[i] = int64(index)
	}

	powers := symbolPowers(blockSize)
	blocks := make([]*big.Int, 0, (len(digits)+blockSize-1)/blockSize)
	term := new(big.Int)
	for start := 0; start < len(digits); start += blockSize {
		end := min(start+blockSize, len(digits))

		block := new(big.Int)
		for i := start; i < end; i++ {
			term.Mul(big.NewInt(digits[i]), powers[i%blockSize])
			block.Add(block, term)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// BlocksToText peels digits off each block from the most significant position down.
// Positions that would run past messageLength are skipped, which is how the short
// final block avoids producing trailing characters.
func (c *blockCodec) BlocksToText(blocks []*big.Int, messageLength, blockSize int) (string, error) {
	if blockSize < 1 {
		return "", fmt.Errorf("%w: got %d", cryptoalg.ErrInvalidBlockSize, blockSize)
	}
	if messageLength < 0 {
		return "", fmt.Errorf("message length must not be negative, got %d", messageLength)
	}

	powers := symbolPowers(blockSize)
	// messageLength comes off the wire unchecked, so only the blocks bound the output
	message := make([]rune, 0, min(messageLength, len(blocks)*blockSize))
	for b, block := range blocks {
		count := min(blockSize, messageLength-len(message))
		if count <= 0 {
			continue
		}

		remaining := new(big.Int).Set(block)
		segment := make([]rune, count)
		for i := count - 1; i >= 0; i-- {
			digit, remainder := new(big.Int).QuoRem(remaining, powers[i], new(big.Int))
			if digit.Sign() < 0 || digit.Cmp(bigSymbolCount) >= 0 {
				return "", &cryptoalg.BlockDecodeRangeError{Block: b, Digit: digit}
			}
			segment[i] = cryptoalg.SymbolAt(int(digit.Int64()))
			remaining = remainder
		}
		message = append(message, segment...)
	}
	return string(message), nil
}
