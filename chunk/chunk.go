package chunk

// Bitmap indexes byte-local properties inside a chunk.
//
// Bit i corresponds to byte offset i in chunk-local coordinates.
type Bitmap = uint64

// MaxBase is the maximum chunk payload length in bytes.
const MaxBase = 64

// Chunk stores up to MaxBase decimal digits together with a bitmap of
// matching neighbours.
//
// Bit i of the match bitmap is set if digit i equals digit i+1. The last
// digit of a chunk never has its bit set, as its successor lives outside
// of the chunk. Crossing chunk boundaries is left to Summary and Monoid.
//
// The chunk is immutable by convention.
type Chunk struct {
	matches Bitmap
	text    [MaxBase]byte
	n       uint8
}

// New creates a chunk from a string of decimal digits.
//
// Returns a *NotADigitError for the first byte outside '0'…'9', or
// ErrChunkTooLarge if the text exceeds MaxBase bytes.
func New(text string) (Chunk, error) {
	if len(text) > MaxBase {
		return Chunk{}, ErrChunkTooLarge
	}
	var c Chunk
	for i := 0; i < len(text); i++ {
		if !IsDigit(text[i]) {
			return Chunk{}, &NotADigitError{Offset: i, Char: text[i]}
		}
		c.text[i] = text[i]
		if i > 0 && text[i] == text[i-1] {
			c.matches |= bit(i - 1)
		}
	}
	c.n = uint8(len(text))
	return c, nil
}

// NewBytes creates a chunk from a byte slice of decimal digits.
// The input is copied.
func NewBytes(text []byte) (Chunk, error) {
	if len(text) > MaxBase {
		return Chunk{}, ErrChunkTooLarge
	}
	var c Chunk
	for i, b := range text {
		if !IsDigit(b) {
			return Chunk{}, &NotADigitError{Offset: i, Char: b}
		}
		c.text[i] = b
		if i > 0 && b == text[i-1] {
			c.matches |= bit(i - 1)
		}
	}
	c.n = uint8(len(text))
	return c, nil
}

// IsDigit is a predicate: is b one of '0'…'9'?
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Len returns the number of digits in the chunk.
func (c Chunk) Len() int {
	return int(c.n)
}

// IsEmpty reports whether the chunk has no digits.
func (c Chunk) IsEmpty() bool {
	return c.n == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return string(c.text[:c.n])
}

// --- Bitmap helpers --------------------------------------------------------

func bit(offset int) Bitmap {
	if offset < 0 || offset >= MaxBase {
		return 0
	}
	return Bitmap(1) << uint(offset)
}

func prefixMask(offset int) Bitmap {
	switch {
	case offset <= 0:
		return 0
	case offset >= MaxBase:
		return ^Bitmap(0)
	default:
		return (Bitmap(1) << uint(offset)) - 1
	}
}
