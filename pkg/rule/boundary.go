package rule

import (
	"fmt"
	"strings"

	"gridca/pkg/cell"
)

// Boundary decides how out-of-range neighborhood and pattern reads resolve.
// The zero value is Sentinel(cell.Blank).
type Boundary struct {
	periodic bool
	symbol   cell.Cell
}

// Periodic wraps out-of-range coordinates modulo the grid dimension.
func Periodic() Boundary { return Boundary{periodic: true} }

// Sentinel resolves out-of-range reads to a fixed symbol. Pattern windows
// that would leave the grid are excluded from the search entirely under
// this policy, never wrapped.
func Sentinel(symbol cell.Cell) Boundary { return Boundary{symbol: symbol} }

// IsPeriodic reports whether the boundary wraps around.
func (b Boundary) IsPeriodic() bool { return b.periodic }

// Symbol returns the sentinel symbol. Meaningless for periodic boundaries.
func (b Boundary) Symbol() cell.Cell { return b.symbol }

// String renders the boundary in its wire form, "Periodic" or
// "Symbol:<char>".
func (b Boundary) String() string {
	if b.periodic {
		return "Periodic"
	}
	return "Symbol:" + string(b.symbol.Rune())
}

// ParseBoundary inverts String. Malformed specs are reported as errors
// wrapping ErrBadRuleFormat rather than falling back to a default symbol.
func ParseBoundary(s string) (Boundary, error) {
	if s == "Periodic" {
		return Periodic(), nil
	}
	if rest, ok := strings.CutPrefix(s, "Symbol:"); ok {
		runes := []rune(rest)
		if len(runes) != 1 {
			return Boundary{}, fmt.Errorf("%w: boundary symbol %q must be a single character", ErrBadRuleFormat, rest)
		}
		return Sentinel(cell.FromRune(runes[0])), nil
	}
	return Boundary{}, fmt.Errorf("%w: unknown boundary spec %q", ErrBadRuleFormat, s)
}

// MarshalText implements encoding.TextMarshaler using the wire form.
func (b Boundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(data []byte) error {
	parsed, err := ParseBoundary(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
