package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"gridca/pkg/cell"
)

// The text form of a pattern rule is the row boundary spec, the column
// boundary spec and one block per pattern, separated by ";\n\n" and
// terminated by ";\n". Each pattern block holds chance, priority, the
// before rows and the after rows, separated by ";\n". Rows within a
// template are joined by plain newlines; spaces are significant.

// String serializes the rule in its text form. ParsePatternRule inverts it.
func (pr *PatternRule) String() string {
	parts := make([]string, 0, len(pr.patterns)+2)
	parts = append(parts, pr.rowBoundary.String(), pr.colBoundary.String())
	for _, p := range pr.patterns {
		parts = append(parts, fmt.Sprintf("%s;\n%s;\n%s;\n%s",
			formatFloat(p.Chance), formatFloat(p.Priority),
			p.Before.String(), p.After.String()))
	}
	return strings.Join(parts, ";\n\n") + ";\n"
}

// ParsePatternRule recovers a rule from its text form. The returned rule is
// seeded from entropy; pin it with WithSeed if reproducibility is needed.
// Malformed input is reported as an error wrapping ErrBadRuleFormat.
func ParsePatternRule(text string) (*PatternRule, error) {
	trimmed := strings.ReplaceAll(text, "\r", "")
	trimmed = strings.TrimRight(trimmed, "\n")
	trimmed = strings.TrimSuffix(trimmed, ";")

	sections := strings.Split(trimmed, ";\n\n")
	if len(sections) < 2 {
		return nil, fmt.Errorf("%w: expected boundary specs and pattern blocks", ErrBadRuleFormat)
	}

	rowB, err := ParseBoundary(sections[0])
	if err != nil {
		return nil, fmt.Errorf("row boundary: %w", err)
	}
	colB, err := ParseBoundary(sections[1])
	if err != nil {
		return nil, fmt.Errorf("column boundary: %w", err)
	}

	rule := NewPatternRule(rowB, colB)
	for i, block := range sections[2:] {
		fields := strings.Split(block, ";\n")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: pattern block %d has %d fields, want 4", ErrBadRuleFormat, i, len(fields))
		}
		chance, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern block %d chance: %v", ErrBadRuleFormat, i, err)
		}
		priority, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern block %d priority: %v", ErrBadRuleFormat, i, err)
		}
		p := Pattern{
			Chance:   chance,
			Priority: priority,
			Before:   cell.FromString(fields[2]),
			After:    cell.FromString(fields[3]),
		}
		if err := rule.Append(p); err != nil {
			return nil, fmt.Errorf("%w: pattern block %d: %v", ErrBadRuleFormat, i, err)
		}
	}
	return rule, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// patternDoc and ruleDoc mirror the rule's logical fields for structured
// serialization. Templates are stored as one string per row.
type patternDoc struct {
	Chance   float64  `toml:"chance"`
	Priority float64  `toml:"priority"`
	Before   []string `toml:"before"`
	After    []string `toml:"after"`
}

type ruleDoc struct {
	RowBoundary Boundary     `toml:"row_boundary"`
	ColBoundary Boundary     `toml:"col_boundary"`
	Patterns    []patternDoc `toml:"patterns"`
}

// MarshalTOML serializes the rule's logical fields as TOML.
func (pr *PatternRule) MarshalTOML() ([]byte, error) {
	doc := ruleDoc{RowBoundary: pr.rowBoundary, ColBoundary: pr.colBoundary}
	for _, p := range pr.patterns {
		doc.Patterns = append(doc.Patterns, patternDoc{
			Chance:   p.Chance,
			Priority: p.Priority,
			Before:   strings.Split(p.Before.String(), "\n"),
			After:    strings.Split(p.After.String(), "\n"),
		})
	}
	return toml.Marshal(doc)
}

// UnmarshalPatternRuleTOML recovers a rule from its TOML form.
func UnmarshalPatternRuleTOML(data []byte) (*PatternRule, error) {
	var doc ruleDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRuleFormat, err)
	}
	rule := NewPatternRule(doc.RowBoundary, doc.ColBoundary)
	for i, p := range doc.Patterns {
		pat := Pattern{
			Chance:   p.Chance,
			Priority: p.Priority,
			Before:   cell.FromString(strings.Join(p.Before, "\n")),
			After:    cell.FromString(strings.Join(p.After, "\n")),
		}
		if err := rule.Append(pat); err != nil {
			return nil, fmt.Errorf("%w: pattern %d: %v", ErrBadRuleFormat, i, err)
		}
	}
	return rule, nil
}
