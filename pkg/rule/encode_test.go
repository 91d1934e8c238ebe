package rule

import (
	"errors"
	"strings"
	"testing"

	"gridca/pkg/cell"
)

func TestTextRoundTrip(t *testing.T) {
	r := mustRule(t, Periodic(), Sentinel(cell.FromRune('_')),
		mustPattern(t, 0.5, 2, "X \n *", " X\n *"),
		mustPattern(t, 1, 0, "F", " "),
	)

	text := r.String()
	parsed, err := ParsePatternRule(text)
	if err != nil {
		t.Fatalf("parsing own output: %v", err)
	}

	if parsed.String() != text {
		t.Fatalf("round trip drifted:\n%q\nwant\n%q", parsed.String(), text)
	}

	rowB, colB := parsed.Boundaries()
	if !rowB.IsPeriodic() {
		t.Fatal("row boundary lost")
	}
	if colB.IsPeriodic() || colB.Symbol() != cell.Border {
		t.Fatal("column boundary lost")
	}
	pats := parsed.Patterns()
	if len(pats) != 2 {
		t.Fatalf("got %d patterns, want 2", len(pats))
	}
	if pats[0].Chance != 0.5 || pats[0].Priority != 2 {
		t.Fatalf("pattern scalars lost: %+v", pats[0])
	}
	if !pats[0].Before.Equal(cell.FromString("X \n *")) {
		t.Fatalf("before template lost: %q", pats[0].Before.String())
	}
}

func TestTextFormShape(t *testing.T) {
	r := mustRule(t, Periodic(), Periodic(),
		mustPattern(t, 1, 0, "X", "y"),
	)
	want := "Periodic;\n\nPeriodic;\n\n1;\n0;\nX;\ny;\n"
	if got := r.String(); got != want {
		t.Fatalf("serialized form:\n%q\nwant\n%q", got, want)
	}
}

func TestParseToleratesTrailingNewlines(t *testing.T) {
	text := "Periodic;\n\nPeriodic;\n\n1;\n0;\nX;\ny;\n\n\n"
	r, err := ParsePatternRule(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(r.Patterns()) != 1 {
		t.Fatalf("got %d patterns, want 1", len(r.Patterns()))
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"missing boundaries": "Periodic;\n",
		"unknown boundary":   "Wrap;\n\nPeriodic;\n",
		"long symbol":        "Symbol:ab;\n\nPeriodic;\n",
		"short block":        "Periodic;\n\nPeriodic;\n\n1;\nX;\ny;\n",
		"bad chance":         "Periodic;\n\nPeriodic;\n\nmaybe;\n0;\nX;\ny;\n",
		"mismatched dims":    "Periodic;\n\nPeriodic;\n\n1;\n0;\nXX;\ny;\n",
	}
	for name, text := range cases {
		if _, err := ParsePatternRule(text); !errors.Is(err, ErrBadRuleFormat) {
			t.Errorf("%s: got %v, want ErrBadRuleFormat", name, err)
		}
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	r := mustRule(t, Sentinel(cell.Blank), Periodic(),
		mustPattern(t, 0.25, 1, "X\n ", " \nX"),
	)

	data, err := r.MarshalTOML()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "row_boundary") {
		t.Fatalf("document missing boundary key:\n%s", data)
	}

	parsed, err := UnmarshalPatternRuleTOML(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.String() != r.String() {
		t.Fatalf("round trip drifted:\n%q\nwant\n%q", parsed.String(), r.String())
	}
}

func TestUnmarshalTOMLRejectsBadPattern(t *testing.T) {
	doc := `
row_boundary = "Periodic"
col_boundary = "Periodic"

[[patterns]]
chance = 2.0
priority = 0.0
before = ["X"]
after = ["y"]
`
	if _, err := UnmarshalPatternRuleTOML([]byte(doc)); !errors.Is(err, ErrBadRuleFormat) {
		t.Fatalf("got %v, want ErrBadRuleFormat", err)
	}
}
