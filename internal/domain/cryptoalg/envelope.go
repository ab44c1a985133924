package cryptoalg

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Envelope carries everything needed to reconstruct a plaintext: its length in
// characters, the block size it was encoded with and the encrypted blocks in order.
type Envelope struct {
	MessageLength int
	BlockSize     int
	Blocks        []*big.Int
}

// String renders the envelope in wire format "{message_length};{block_size};{b1},{b2},...,{bk}".
func (e *Envelope) String() string {
	blocks := make([]string, len(e.Blocks))
	for i, block := range e.Blocks {
		blocks[i] = block.String()
	}
	return fmt.Sprintf("%d;%d;%s", e.MessageLength, e.BlockSize, strings.Join(blocks, ","))
}

// ParseEnvelope parses the wire format produced by Envelope.String.
// An empty block field is an envelope without blocks, as produced for the empty message.
func ParseEnvelope(ciphertext string) (*Envelope, error) {
	fields := strings.Split(strings.TrimSpace(ciphertext), ";")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 semicolon-separated fields, got %d", ErrCiphertextFormat, len(fields))
	}

	messageLength, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || messageLength < 0 {
		return nil, fmt.Errorf("%w: message length %q is not a non-negative integer", ErrCiphertextFormat, fields[0])
	}

	blockSize, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %q is not a positive integer", ErrCiphertextFormat, fields[1])
	}

	envelope := &Envelope{
		MessageLength: messageLength,
		BlockSize:     blockSize,
	}

	if strings.TrimSpace(fields[2]) == "" {
		return envelope, nil
	}

	for i, token := range strings.Split(fields[2], ",") {
		block, err := parseNonNegative(token)
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrCiphertextFormat, i, err)
		}
		envelope.Blocks = append(envelope.Blocks, block)
	}
	return envelope, nil
}
