//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInts(values ...int64) []*big.Int {
	ints := make([]*big.Int, len(values))
	for i, v := range values {
		ints[i] = big.NewInt(v)
	}
	return ints
}

func TestBlockCodec(t *testing.T) {
	codec := NewBlockCodec()

	t.Run("EncodesFirstCharacterAsLeastSignificantDigit", func(t *testing.T) {
		// H=7, i=34, 1=52: 7 + 34*66 + 52*66^2
		blocks, err := codec.TextToBlocks("Hi1", 3)
		require.NoError(t, err)
		assert.Equal(t, bigInts(228763), blocks)
	})

	t.Run("WeightRestartsForEveryBlock", func(t *testing.T) {
		blocks, err := codec.TextToBlocks("BCDE", 2)
		require.NoError(t, err)
		assert.Equal(t, bigInts(1+2*66, 3+4*66), blocks)
	})

	t.Run("ShortFinalBlock", func(t *testing.T) {
		blocks, err := codec.TextToBlocks("abcde", 2)
		require.NoError(t, err)
		require.Len(t, blocks, 3)
		assert.Equal(t, big.NewInt(30), blocks[2])

		text, err := codec.BlocksToText(blocks, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, "abcde", text)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		blocks, err := codec.TextToBlocks("", 4)
		require.NoError(t, err)
		assert.Empty(t, blocks)

		text, err := codec.BlocksToText(blocks, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("RoundTripAcrossBlockSizes", func(t *testing.T) {
		message := "The quick brown fox jumps over 13 lazy dogs. Really?!"
		for blockSize := 1; blockSize <= len(message)+2; blockSize++ {
			blocks, err := codec.TextToBlocks(message, blockSize)
			require.NoError(t, err)
			assert.Len(t, blocks, (len(message)+blockSize-1)/blockSize)

			text, err := codec.BlocksToText(blocks, len(message), blockSize)
			require.NoError(t, err)
			assert.Equal(t, message, text, "block size %d", blockSize)
		}
	})

	t.Run("InvalidCharacter", func(t *testing.T) {
		blocks, err := codec.TextToBlocks("Hi\tthere", 3)
		assert.Nil(t, blocks)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cryptoalg.ErrInvalidCharacter))

		var charErr *cryptoalg.InvalidCharacterError
		require.True(t, errors.As(err, &charErr))
		assert.Equal(t, '\t', charErr.Char)
		assert.Equal(t, 2, charErr.Position)
	})

	t.Run("DigitOutOfRange", func(t *testing.T) {
		_, err := codec.BlocksToText(bigInts(5, 66), 2, 1)
		require.Error(t, err)

		var rangeErr *cryptoalg.BlockDecodeRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, 1, rangeErr.Block)
		assert.Equal(t, big.NewInt(66), rangeErr.Digit)
	})

	t.Run("MessageLengthBeyondBlocks", func(t *testing.T) {
		var text string
		var err error
		require.NotPanics(t, func() {
			text, err = codec.BlocksToText(bigInts(7, 34), math.MaxInt, 1)
		})
		require.NoError(t, err)
		assert.Equal(t, "Hi", text)
	})

	t.Run("InvalidBlockSize", func(t *testing.T) {
		_, err := codec.TextToBlocks("abc", 0)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidBlockSize)

		_, err = codec.BlocksToText(bigInts(1), 1, -1)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidBlockSize)
	})
}

func TestMaxBlockSize(t *testing.T) {
	tests := []struct {
		modulusBits int
		expected    int
	}{
		{0, 0},
		{6, 0},
		{7, 1},
		{12, 1},
		{13, 2},
		{18, 2},
		{19, 3},
		{64, 10},
		{1024, 169},
		{2048, 338},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaxBlockSize(tt.modulusBits), "%d-bit modulus", tt.modulusBits)
	}
}

func TestCheckBlockSize(t *testing.T) {
	assert.NoError(t, checkBlockSize(1, 12))
	assert.NoError(t, checkBlockSize(3, 20))
	assert.ErrorIs(t, checkBlockSize(0, 12), cryptoalg.ErrInvalidBlockSize)

	err := checkBlockSize(3, 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoalg.ErrBlockSizeTooLarge)

	var sizeErr *cryptoalg.BlockSizeTooLargeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, 3, sizeErr.BlockSize)
	assert.Equal(t, 1, sizeErr.MaxBlockSize)
	assert.Equal(t, 12, sizeErr.ModulusBits)
}
