package cell

import (
	"errors"
	"testing"
)

func TestRuneMapping(t *testing.T) {
	cases := []struct {
		r  rune
		id Cell
	}{
		{' ', 0},
		{'0', 0},
		{'5', 5},
		{'b', 11},
		{'z', 35},
		{'A', 36},
		{'X', 59},
		{'Z', 61},
		{'_', Border},
		{'*', Wildcard},
	}
	for _, tc := range cases {
		if got := FromRune(tc.r); got != tc.id {
			t.Fatalf("FromRune(%q) = %d, want %d", tc.r, got, tc.id)
		}
	}

	// The mapping must be bijective over the usable alphabet.
	for id := Cell(1); id <= 61; id++ {
		if got := FromRune(id.Rune()); got != id {
			t.Fatalf("round trip for id %d produced %d via %q", id, got, id.Rune())
		}
	}
	if Border.Rune() != '_' || Wildcard.Rune() != '*' {
		t.Fatalf("sentinel runes wrong: border %q, wildcard %q", Border.Rune(), Wildcard.Rune())
	}
	if FromRune('?') != Blank {
		t.Fatal("unknown runes must map to the blank cell")
	}
}

func TestGetSetBounds(t *testing.T) {
	g := New(2, 3)
	if err := g.Set(1, 2, 7); err != nil {
		t.Fatalf("in-range set failed: %v", err)
	}
	if v, ok := g.Get(1, 2); !ok || v != 7 {
		t.Fatalf("Get(1,2) = %d, %v; want 7, true", v, ok)
	}

	if _, ok := g.Get(2, 0); ok {
		t.Fatal("Get past the last row must report false")
	}
	if _, ok := g.Get(0, -1); ok {
		t.Fatal("Get with a negative column must report false")
	}

	err := g.Set(5, 1, 1)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Set out of range returned %v, want OutOfBoundsError", err)
	}
	if oob.Row != 5 || oob.Col != 1 || oob.Rows != 2 || oob.Cols != 3 {
		t.Fatalf("error carries wrong coordinates: %+v", oob)
	}
}

func TestFromStringPadsShortLines(t *testing.T) {
	g := FromString("ab\nc")
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("grid is %dx%d, want 2x2", g.Rows(), g.Cols())
	}
	if g.At(1, 0) != FromRune('c') || g.At(1, 1) != Blank {
		t.Fatalf("short line not padded: got %d, %d", g.At(1, 0), g.At(1, 1))
	}
	if got := g.String(); got != "ab\nc " {
		t.Fatalf("String() = %q, want %q", got, "ab\nc ")
	}
	if !FromString(g.String()).Equal(g) {
		t.Fatal("String/FromString must round-trip")
	}
}

func TestFromStringDropsTrailingNewline(t *testing.T) {
	g := FromString("ab\ncd\n")
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("grid is %dx%d, want 2x2", g.Rows(), g.Cols())
	}
	if got := g.String(); got != "ab\ncd" {
		t.Fatalf("String() = %q, want %q", got, "ab\ncd")
	}

	// Only the final newline is conventional; further empty lines are
	// blank rows.
	if g := FromString("ab\n\n"); g.Rows() != 2 || g.At(1, 0) != Blank {
		t.Fatalf("explicit blank row lost: %dx%d", g.Rows(), g.Cols())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := FromString("xy")
	clone := g.Clone()
	if !clone.Equal(g) {
		t.Fatal("clone differs from source")
	}
	g.SetAt(0, 0, 9)
	if clone.Equal(g) {
		t.Fatal("mutating the source must not affect the clone")
	}
}

func TestWrap(t *testing.T) {
	g := New(3, 4)
	if r, c := g.Wrap(-1, 4); r != 2 || c != 0 {
		t.Fatalf("Wrap(-1, 4) = (%d, %d), want (2, 0)", r, c)
	}
	if r, c := g.Wrap(3, -1); r != 0 || c != 3 {
		t.Fatalf("Wrap(3, -1) = (%d, %d), want (0, 3)", r, c)
	}
}

func TestFromValues(t *testing.T) {
	g, ok := FromValues([]Cell{1, 2, 3, 4, 5, 6}, 3)
	if !ok {
		t.Fatal("FromValues rejected a valid slice")
	}
	if g.Rows() != 2 || g.At(1, 2) != 6 {
		t.Fatalf("unexpected layout: %dx%d, last=%d", g.Rows(), g.Cols(), g.At(1, 2))
	}
	if _, ok := FromValues([]Cell{1, 2, 3}, 2); ok {
		t.Fatal("FromValues must reject slices that do not fill the last row")
	}
}
