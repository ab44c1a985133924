package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// MaxBlockSize returns floor(log_S(2^modulusBits)), the largest block size B with
// S^B <= 2^modulusBits. It is computed on integers; S is not a power of two, so the
// logarithm is never an integer and no rounding question arises.
func MaxBlockSize(modulusBits int) int {
	if modulusBits < 0 {
		return 0
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(modulusBits))
	power := new(big.Int).Set(bigSymbolCount)
	size := 0
	for power.Cmp(limit) <= 0 {
		size++
		power.Mul(power, bigSymbolCount)
	}
	return size
}

// checkBlockSize rejects block sizes below one and above MaxBlockSize(modulusBits).
func checkBlockSize(blockSize, modulusBits int) error {
	if blockSize < 1 {
		return fmt.Errorf("%w: got %d", cryptoalg.ErrInvalidBlockSize, blockSize)
	}
	if maxBlockSize := MaxBlockSize(modulusBits); blockSize > maxBlockSize {
		return &cryptoalg.BlockSizeTooLargeError{
			BlockSize:    blockSize,
			MaxBlockSize: maxBlockSize,
			ModulusBits:  modulusBits,
		}
	}
	return nil
}
