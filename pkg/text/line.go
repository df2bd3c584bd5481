package text

import (
	"fmt"
	"math"

	"github.com/Faultbox/textmesh/pkg/encoding"
)

// StyleRange is the half-open span [Start, End) of a line's glyphs drawn
// with styles[Style].
type StyleRange struct {
	Start int
	End   int
	Style int
}

// Len returns the number of glyphs in the range.
func (r StyleRange) Len() int {
	return r.End - r.Start
}

// Line is one row of laid out text. Ranges are sorted, do not overlap and
// never hold two adjacent ranges of the same style. Height is the largest
// line height among the styles that contributed to the line.
type Line struct {
	Glyphs []rune
	Ranges []StyleRange
	Width  float32
	Height float32
}

// String returns the line's characters.
func (l Line) String() string {
	return string(l.Glyphs)
}

func (l *Line) raiseHeight(h float32) {
	if h > l.Height {
		l.Height = h
	}
}

func (l *Line) push(glyphs []rune, width float32, style int, lineHeight float32) {
	l.Glyphs = append(l.Glyphs, glyphs...)
	l.Width += width
	l.raiseHeight(lineHeight)

	if n := len(l.Ranges); n > 0 && l.Ranges[n-1].Style == style {
		l.Ranges[n-1].End = len(l.Glyphs)
		return
	}
	l.Ranges = append(l.Ranges, StyleRange{
		Start: len(l.Glyphs) - len(glyphs),
		End:   len(l.Glyphs),
		Style: style,
	})
}

// WrapOptions controls line building.
type WrapOptions struct {
	// MaxWidth is the widest a line may grow before the next token moves
	// to a new line. Zero or negative disables wrapping.
	MaxWidth float32

	// HardBreaks makes '\n' end the current line. Without it a newline only
	// raises the current line to the active style's line height.
	HardBreaks bool

	// FoldASCII strips diacritics from resolved text before layout so
	// accented letters render as their base letter instead of '?'.
	FoldASCII bool
}

func (o WrapOptions) maxWidth() float32 {
	if o.MaxWidth <= 0 {
		return float32(math.Inf(1))
	}
	return o.MaxWidth
}

// BuildLines resolves segments against vars and greedily wraps them into
// lines no wider than maxWidth. A word wider than maxWidth is put on a line
// of its own and never split.
//
// Every segment's Style must index styles; BuildLines panics otherwise.
// The result always holds at least one line.
func BuildLines(segments []TextSegment, styles []FontStyle, vars VariableStorage, maxWidth float32) []Line {
	return BuildLinesWithOptions(segments, styles, vars, WrapOptions{MaxWidth: maxWidth})
}

// BuildLinesWithOptions is BuildLines with the full set of wrap options.
func BuildLinesWithOptions(segments []TextSegment, styles []FontStyle, vars VariableStorage, opts WrapOptions) []Line {
	maxWidth := opts.maxWidth()
	lines := []Line{{}}

	for i, seg := range segments {
		checkStyle(i, seg.Style, styles)
		style := styles[seg.Style]
		lineHeight := style.LineHeight()

		resolved := seg.Text(vars)
		if opts.FoldASCII {
			resolved = encoding.FoldASCII(resolved)
		}

		for _, tok := range tokenize(resolved) {
			cur := &lines[len(lines)-1]

			if tok == "\n" {
				cur.raiseHeight(lineHeight)
				if opts.HardBreaks {
					lines = append(lines, Line{Height: lineHeight})
				}
				continue
			}

			width := style.Width(tok)
			if len(cur.Glyphs) > 0 && cur.Width+width > maxWidth {
				lines = append(lines, Line{Height: lineHeight})
				cur = &lines[len(lines)-1]
			}
			cur.push([]rune(tok), width, seg.Style, lineHeight)
		}
	}

	return lines
}

func checkStyle(segment, style int, styles []FontStyle) {
	if style < 0 || style >= len(styles) {
		panic(fmt.Sprintf("text: segment %d uses style %d, but only %d styles were given", segment, style, len(styles)))
	}
}

// tokenize splits s into words and single whitespace characters.
func tokenize(s string) []string {
	var (
		tokens []string
		start  int
	)
	for i := 0; i < len(s); i++ {
		if !isASCIISpace(s[i]) {
			continue
		}
		if start < i {
			tokens = append(tokens, s[start:i])
		}
		tokens = append(tokens, s[i:i+1])
		start = i + 1
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
