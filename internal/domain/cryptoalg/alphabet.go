package cryptoalg

// Symbols is the ordered alphabet every plaintext character must belong to.
// A character's index in Symbols is its digit value inside a block.
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890 !?."

// SymbolCount is the radix S of the block encoding.
const SymbolCount = len(Symbols)

var symbolIndex = func() map[rune]int {
	index := make(map[rune]int, SymbolCount)
	for i, r := range Symbols {
		index[r] = i
	}
	return index
}()

// SymbolIndex returns the digit value of r and whether r belongs to the alphabet.
func SymbolIndex(r rune) (int, bool) {
	i, ok := symbolIndex[r]
	return i, ok
}

// SymbolAt returns the character whose digit value is i. i must be in [0, SymbolCount).
func SymbolAt(i int) rune {
	return rune(Symbols[i])
}
