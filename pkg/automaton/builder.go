package automaton

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"gridca/pkg/cell"
	"gridca/pkg/rule"
)

// Builder assembles an Automaton from an initial state source, rules,
// colors and timing. Configuration errors stick and surface from Build.
type Builder struct {
	grid    *cell.Grid
	img     image.Image
	imgPath string

	patterns []rule.Pattern
	patRowB  rule.Boundary
	patColB  rule.Boundary
	rules    []rule.Rule

	colors  map[cell.Cell]color.RGBA
	minStep time.Duration
	seed    int64
	hasSeed bool

	err error
}

// NewBuilder returns a builder with no source, no rules and sentinel-blank
// pattern boundaries.
func NewBuilder() *Builder {
	return &Builder{
		patRowB: rule.Sentinel(cell.Blank),
		patColB: rule.Sentinel(cell.Blank),
		colors:  make(map[cell.Cell]color.RGBA),
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// FromGrid uses a prepared grid as the initial state.
func (b *Builder) FromGrid(g *cell.Grid) *Builder {
	if g == nil {
		return b.fail(fmt.Errorf("initial grid must not be nil"))
	}
	b.grid = g
	return b
}

// FromValues builds the initial state from a flat row-major slice with the
// given column count.
func (b *Builder) FromValues(values []cell.Cell, cols int) *Builder {
	g, ok := cell.FromValues(values, cols)
	if !ok {
		return b.fail(fmt.Errorf("initial values of length %d do not fill rows of %d columns", len(values), cols))
	}
	b.grid = g
	return b
}

// FromTextFile loads the initial state from a delimited text file: rows are
// lines, columns span the longest line and short lines are space-padded.
func (b *Builder) FromTextFile(path string) *Builder {
	content, err := os.ReadFile(path)
	if err != nil {
		return b.fail(fmt.Errorf("read initial state: %w", err))
	}
	b.grid = cell.FromString(string(content))
	return b
}

// FromImage derives the initial state from an image. At build time each
// pixel is matched against the configured color table; unmatched colors
// fall back to the blank cell.
func (b *Builder) FromImage(img image.Image) *Builder {
	if img == nil {
		return b.fail(fmt.Errorf("initial image must not be nil"))
	}
	b.img = img
	return b
}

// FromImageFile loads the initial state from a raster image file.
func (b *Builder) FromImageFile(path string) *Builder {
	b.imgPath = path
	return b
}

// WithRule appends a rule. Multiple rules apply sequentially per tick.
func (b *Builder) WithRule(r rule.Rule) *Builder {
	if r == nil {
		return b.fail(fmt.Errorf("rule must not be nil"))
	}
	b.rules = append(b.rules, r)
	return b
}

// WithPattern appends a pattern to the automaton's pattern rule.
func (b *Builder) WithPattern(p rule.Pattern) *Builder {
	b.patterns = append(b.patterns, p)
	return b
}

// WithPatterns appends several patterns at once.
func (b *Builder) WithPatterns(patterns []rule.Pattern) *Builder {
	b.patterns = append(b.patterns, patterns...)
	return b
}

// WithPatternBoundaries sets the boundary pair of the pattern rule.
func (b *Builder) WithPatternBoundaries(row, col rule.Boundary) *Builder {
	b.patRowB, b.patColB = row, col
	return b
}

// WithColor maps a cell value to a display color.
func (b *Builder) WithColor(c cell.Cell, col color.RGBA) *Builder {
	b.colors[c] = col
	return b
}

// WithColors merges a color table into the builder.
func (b *Builder) WithColors(colors map[cell.Cell]color.RGBA) *Builder {
	for c, col := range colors {
		b.colors[c] = col
	}
	return b
}

// WithMinTimeStep throttles NextStep to at most one step per interval.
func (b *Builder) WithMinTimeStep(d time.Duration) *Builder {
	b.minStep = d
	return b
}

// WithSeed pins the random source of the builder's pattern rule.
func (b *Builder) WithSeed(seed int64) *Builder {
	b.seed = seed
	b.hasSeed = true
	return b
}

// Build assembles the automaton, reporting any configuration error
// collected along the way. Without a source the state is a blank 10x10
// grid; with more than one rule they are wrapped in a rule.Multi.
func (b *Builder) Build() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}

	state, err := b.buildState()
	if err != nil {
		return nil, err
	}

	rules := b.rules
	if len(b.patterns) > 0 {
		pr, err := rule.FromPatterns(b.patterns, b.patRowB, b.patColB)
		if err != nil {
			return nil, err
		}
		if b.hasSeed {
			pr.WithSeed(b.seed)
		}
		rules = append(rules, pr)
	}

	var r rule.Rule
	switch len(rules) {
	case 1:
		r = rules[0]
	default:
		r = &rule.Multi{Rules: rules}
	}

	return &Automaton{
		state:   state,
		rule:    r,
		minStep: b.minStep,
		colors:  b.colors,
	}, nil
}

func (b *Builder) buildState() (*cell.Grid, error) {
	if b.grid != nil {
		return b.grid, nil
	}
	if b.imgPath != "" {
		f, err := os.Open(b.imgPath)
		if err != nil {
			return nil, fmt.Errorf("read initial image: %w", err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode initial image: %w", err)
		}
		return b.gridFromImage(img), nil
	}
	if b.img != nil {
		return b.gridFromImage(b.img), nil
	}
	return cell.New(10, 10), nil
}

func (b *Builder) gridFromImage(img image.Image) *cell.Grid {
	lookup := make(map[color.RGBA]cell.Cell, len(b.colors))
	for c, col := range b.colors {
		lookup[col] = c
	}
	bounds := img.Bounds()
	g := cell.New(bounds.Dy(), bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g.SetAt(y-bounds.Min.Y, x-bounds.Min.X, lookup[rgbaAt(img, x, y)])
		}
	}
	return g
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
