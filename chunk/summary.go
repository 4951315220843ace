package chunk

import "math/bits"

// Summary aggregates digit-run metrics for a chunk, or for any contiguous
// concatenation of chunks.
//
// Inner is the sum of digit values over adjacent equal pairs inside the run.
// First and Last are digit values, valid only if Digits > 0.
type Summary struct {
	Digits uint64
	First  uint8
	Last   uint8
	Inner  uint64
}

// Summary returns aggregate metrics for this chunk.
func (c Chunk) Summary() Summary {
	return summarize(c.text[:c.n], c.matches)
}

func summarize(text []byte, matches Bitmap) Summary {
	if len(text) == 0 {
		return Summary{}
	}
	var inner uint64
	for m := matches & prefixMask(len(text)-1); m != 0; m &= m - 1 {
		inner += uint64(text[bits.TrailingZeros64(m)] - '0')
	}
	return Summary{
		Digits: uint64(len(text)),
		First:  text[0] - '0',
		Last:   text[len(text)-1] - '0',
		Inner:  inner,
	}
}

// Circular closes the run into a ring and returns the sum of all digits
// equal to their circular successor. Runs of less than two digits have no
// distinct neighbour and yield 0.
func (s Summary) Circular() uint64 {
	if s.Digits < 2 {
		return 0
	}
	return s.Inner + matchValue(s.Last, s.First)
}

// Monoid aggregates digit-run summaries of adjacent runs, left to right.
// It is not commutative.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries of adjacent runs.
func (Monoid) Add(left, right Summary) Summary {
	if left.Digits == 0 {
		return right
	}
	if right.Digits == 0 {
		return left
	}
	return Summary{
		Digits: left.Digits + right.Digits,
		First:  left.First,
		Last:   right.Last,
		Inner:  left.Inner + right.Inner + matchValue(left.Last, right.First),
	}
}

func matchValue(a, b uint8) uint64 {
	if a == b {
		return uint64(a)
	}
	return 0
}
