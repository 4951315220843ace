package chunk

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBuildsMatchBitmap(t *testing.T) {
	c, err := New("1122")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if c.Len() != 4 {
		t.Fatalf("unexpected len: %d", c.Len())
	}
	for _, off := range []int{0, 2} {
		if c.matches&bit(off) == 0 {
			t.Fatalf("expected match bit at %d", off)
		}
	}
	for _, off := range []int{1, 3} {
		if c.matches&bit(off) != 0 {
			t.Fatalf("unexpected match bit at %d", off)
		}
	}
}

func TestLastDigitNeverMatches(t *testing.T) {
	c, err := New(strings.Repeat("7", MaxBase))
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if c.matches != prefixMask(MaxBase-1) {
		t.Fatalf("expected all but the last bit set, got %064b", c.matches)
	}
}

func TestNewRejectsNonDigits(t *testing.T) {
	_, err := New("12a4")
	var nd *NotADigitError
	if !errors.As(err, &nd) {
		t.Fatalf("expected *NotADigitError, got %v", err)
	}
	if nd.Offset != 2 || nd.Char != 'a' {
		t.Fatalf("unexpected error details: %+v", nd)
	}
	if !errors.Is(err, ErrNotADigit) {
		t.Fatalf("expected error to match ErrNotADigit")
	}
	_, err = NewBytes([]byte("9 "))
	if !errors.As(err, &nd) || nd.Offset != 1 {
		t.Fatalf("expected *NotADigitError at offset 1 from NewBytes, got %v", err)
	}
}

func TestNewRejectsOversizedText(t *testing.T) {
	_, err := New(strings.Repeat("1", MaxBase+1))
	if !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge, got %v", err)
	}
	_, err = NewBytes([]byte(strings.Repeat("1", MaxBase+1)))
	if !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge from NewBytes, got %v", err)
	}
}

func TestNewBytesCopiesInput(t *testing.T) {
	src := []byte("4242")
	c, err := NewBytes(src)
	if err != nil {
		t.Fatalf("unexpected NewBytes error: %v", err)
	}
	src[0] = '0'
	if c.String() != "4242" {
		t.Fatalf("chunk should not alias source bytes, got %q", c.String())
	}
}

func TestEmptyChunk(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if !c.IsEmpty() || c.Summary() != (Summary{}) {
		t.Fatalf("expected empty chunk with zero summary, got %+v", c.Summary())
	}
}
