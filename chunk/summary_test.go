package chunk

import "testing"

func TestChunkSummary(t *testing.T) {
	c, err := New("91212129")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	s := c.Summary()
	if s.Digits != 8 || s.First != 9 || s.Last != 9 || s.Inner != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Circular() != 9 {
		t.Fatalf("expected circular sum 9, got %d", s.Circular())
	}
}

func TestCircularExamples(t *testing.T) {
	cases := []struct {
		digits string
		want   uint64
	}{
		{"1122", 3},
		{"1111", 4},
		{"1234", 0},
		{"91212129", 9},
		{"5", 0},
		{"55", 10},
		{"", 0},
	}
	for _, tc := range cases {
		c, err := New(tc.digits)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", tc.digits, err)
		}
		if got := c.Summary().Circular(); got != tc.want {
			t.Errorf("Circular(%q) = %d, want %d", tc.digits, got, tc.want)
		}
	}
}

func TestSummaryMonoid(t *testing.T) {
	m := Monoid{}
	if z := m.Zero(); z != (Summary{}) {
		t.Fatalf("unexpected monoid zero value: %+v", z)
	}
	a := mustSummary(t, "1122")
	b := mustSummary(t, "2211")
	ab := m.Add(a, b)
	want := mustSummary(t, "11222211")
	if ab != want {
		t.Fatalf("Add(1122, 2211) = %+v, want %+v", ab, want)
	}
	if m.Add(m.Zero(), a) != a || m.Add(a, m.Zero()) != a {
		t.Fatalf("zero summary is not neutral")
	}
	// associativity over three runs
	c := mustSummary(t, "19")
	if m.Add(m.Add(a, b), c) != m.Add(a, m.Add(b, c)) {
		t.Fatalf("monoid add is not associative")
	}
}

func mustSummary(t *testing.T, digits string) Summary {
	t.Helper()
	c, err := New(digits)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", digits, err)
	}
	return c.Summary()
}
