package digitring

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Digits is the type constraint for in-memory digit sequences.
type Digits interface {
	~string | ~[]byte
}

// Option restricts the range a ring is formed from.
type Option func(*bounds)

type bounds struct {
	start, end uint64
}

// From sets the start of the range (inclusive). Defaults to 0.
func From(start uint64) Option {
	return func(b *bounds) {
		b.start = start
	}
}

// To sets the end of the range (exclusive). Defaults to the length of the
// sequence.
func To(end uint64) Option {
	return func(b *bounds) {
		b.end = end
	}
}

// SumMatching sums all digits of seq which equal their successor, with the
// last digit followed by the first one. Options From and To restrict the ring
// to a range of seq.
//
// Please refer to SumMatchingRange for errors and edge cases.
func SumMatching[S Digits](seq S, opts ...Option) (uint64, error) {
	b := bounds{start: 0, end: uint64(len(seq))}
	for _, opt := range opts {
		opt(&b)
	}
	return SumMatchingRange(seq, b.start, b.end)
}

// SumMatchingRange sums all digits in seq[start:end] which equal their
// successor, where the digit at end-1 is followed by the digit at start.
//
// If [start, end) does not specify a valid slice of seq, a *RangeError is
// returned. Ranges of less than two digits have no distinct neighbour and
// always yield 0. Otherwise the first non-digit in range is reported
// as an *InvalidDigitError.
//
// The result is at most 9 × (end − start).
func SumMatchingRange[S Digits](seq S, start, end uint64) (uint64, error) {
	if start > end || end > uint64(len(seq)) {
		return 0, &RangeError{Start: start, End: end, Length: uint64(len(seq))}
	}
	if end-start <= 1 {
		return 0, nil
	}
	first, err := digitAt(seq, start)
	if err != nil {
		return 0, err
	}
	sum, last, err := scan(seq, start+1, end, first)
	if err != nil {
		return 0, err
	}
	return sum + matchValue(first, last), nil
}

// scan runs from i to end, comparing every digit to its predecessor prev.
// It returns the sum of matching predecessors and the last digit visited.
func scan[S Digits](seq S, i, end uint64, prev uint8) (uint64, uint8, error) {
	var sum uint64
	for ; i < end; i++ {
		d, err := digitAt(seq, i)
		if err != nil {
			return 0, 0, err
		}
		sum += matchValue(prev, d)
		prev = d
	}
	return sum, prev, nil
}

// matchValue returns the value of digit a if it matches digit b, 0 otherwise.
func matchValue(a, b uint8) uint64 {
	if a == b {
		return uint64(a)
	}
	return 0
}

func digitAt[S Digits](seq S, i uint64) (uint8, error) {
	c := seq[i]
	if c < '0' || c > '9' {
		return 0, &InvalidDigitError{Pos: i, Char: c}
	}
	return c - '0', nil
}
