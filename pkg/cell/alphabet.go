package cell

// Cell is one discrete automaton state. The usable alphabet covers ids 0-61;
// 126 and 127 are reserved sentinels.
type Cell uint8

const (
	// Blank is the empty cell, printed as a space.
	Blank Cell = 0
	// Border marks reads that fall outside the grid under a sentinel
	// boundary, printed as '_'.
	Border Cell = 126
	// Wildcard matches any cell in a pattern's before template and leaves
	// the cell untouched in its after template, printed as '*'.
	Wildcard Cell = 127
)

// FromRune converts a printable symbol to its cell id. The mapping is
// bijective over ' ', '1'-'9', 'a'-'z' and 'A'-'Z'; unknown runes map to
// Blank.
func FromRune(r rune) Cell {
	switch {
	case r >= '0' && r <= '9':
		return Cell(r - '0')
	case r >= 'a' && r <= 'z':
		return Cell(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return Cell(r-'A') + 36
	case r == '_':
		return Border
	case r == '*':
		return Wildcard
	default:
		return Blank
	}
}

// Rune converts a cell id back to its printable symbol.
func (c Cell) Rune() rune {
	switch {
	case c == Blank:
		return ' '
	case c >= 1 && c <= 9:
		return rune(c) + '0'
	case c >= 10 && c <= 35:
		return rune(c-10) + 'a'
	case c >= 36 && c <= 61:
		return rune(c-36) + 'A'
	case c == Border:
		return '_'
	case c == Wildcard:
		return '*'
	default:
		return ' '
	}
}
