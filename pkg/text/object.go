package text

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Faultbox/textmesh/pkg/math"
)

// HAlign is the horizontal alignment of each line within the bounds.
type HAlign uint8

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

func (a HAlign) String() string {
	switch a {
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	default:
		return fmt.Sprintf("HAlign(%d)", a)
	}
}

// ParseHAlign parses "left", "center" or "right".
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(s) {
	case "left":
		return HAlignLeft, nil
	case "center", "centre":
		return HAlignCenter, nil
	case "right":
		return HAlignRight, nil
	}
	return 0, fmt.Errorf("text: unknown horizontal alignment %q", s)
}

// VAlign is the vertical alignment of the text block within the bounds.
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

func (a VAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return fmt.Sprintf("VAlign(%d)", a)
	}
}

// ParseVAlign parses "top", "middle" or "bottom".
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "top":
		return VAlignTop, nil
	case "middle", "center":
		return VAlignMiddle, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return 0, fmt.Errorf("text: unknown vertical alignment %q", s)
}

// Layout is the result of wrapping a TextObject for a style slice.
type Layout struct {
	Lines []Line
	// Styles are the styles the lines were built with. They differ from the
	// requested styles only in Size, when size-to-fit shrank the text.
	Styles []FontStyle
	// Scale is the factor applied to every style size, 1 unless shrunk.
	Scale  float32
	Height float32
}

// Width returns the width of the widest line.
func (l *Layout) Width() float32 {
	var w float32
	for _, line := range l.Lines {
		w = max(w, line.Width)
	}
	return w
}

type layoutCache struct {
	styles []FontStyle
	layout *Layout
}

// TextObject is a paragraph of styled segments with its variables and
// placement. Setters mark the object dirty when they change something;
// the renderer that owns the object tesselates it when NeedsUpdate reports
// true and then calls SetClean. The object never clears the flag itself.
//
// A TextObject is not safe for concurrent use.
type TextObject struct {
	segments []TextSegment
	vars     VariableStorage

	hAlign        HAlign
	vAlign        VAlign
	bounds        math.Bounds
	autoLineBreak bool
	sizeToFit     bool
	hardBreaks    bool
	foldASCII     bool

	dirty    bool
	maxStyle int
	cache    *layoutCache
}

// NewTextObject creates static text drawn with style 0.
func NewTextObject(text string) *TextObject {
	return NewTextObjectWithStorage(text, EmptyStorage{})
}

// NewTextObjectWithVariables creates text whose placeholders resolve
// against fresh storage for set.
func NewTextObjectWithVariables(text string, set *VariableSet) *TextObject {
	return NewTextObjectWithStorage(text, NewEnumStorage(set))
}

// NewTextObjectWithStorage creates text backed by the given storage.
// A nil storage is replaced with EmptyStorage.
func NewTextObjectWithStorage(text string, vars VariableStorage) *TextObject {
	if vars == nil {
		vars = EmptyStorage{}
	}
	return &TextObject{
		segments: []TextSegment{NewTextSegment(text, 0)},
		vars:     vars,
		hAlign:   HAlignCenter,
		vAlign:   VAlignMiddle,
		dirty:    true,
	}
}

func (o *TextObject) invalidate() {
	o.dirty = true
	o.cache = nil
}

// NeedsUpdate reports whether the object changed since the last SetClean.
func (o *TextObject) NeedsUpdate() bool {
	return o.dirty
}

// SetClean acknowledges the current state as rendered.
func (o *TextObject) SetClean() {
	o.dirty = false
}

// Segments returns a copy of the segments.
func (o *TextObject) Segments() []TextSegment {
	return slices.Clone(o.segments)
}

// AddSegment appends a segment.
func (o *TextObject) AddSegment(seg TextSegment) {
	if seg.parts == nil {
		seg.parts = compileTemplate(seg.Template)
	}
	o.segments = append(o.segments, seg)
	o.maxStyle = max(o.maxStyle, seg.Style)
	o.invalidate()
}

// MaxStyle returns the highest style index used by any segment. A style
// slice passed to Lines or Tesselate must be longer than this.
func (o *TextObject) MaxStyle() int {
	return o.maxStyle
}

// Storage returns the variable storage. Writes made through it bypass
// change tracking; use SetVariable to update text that is on screen.
func (o *TextObject) Storage() VariableStorage {
	return o.vars
}

// Variable returns the value bound to name.
func (o *TextObject) Variable(name string) (Value, bool) {
	return o.vars.Get(name)
}

// SetVariable binds value to name. It reports whether name is a variable
// of the object's storage. Setting the value already bound is not a change.
func (o *TextObject) SetVariable(name string, value Value) bool {
	if old, ok := o.vars.Get(name); ok && old == value {
		return true
	}
	if !o.vars.SetByName(name, value) {
		return false
	}
	o.invalidate()
	return true
}

// Text returns the resolved text of all segments.
func (o *TextObject) Text() string {
	var sb strings.Builder
	for _, seg := range o.segments {
		sb.WriteString(seg.Text(o.vars))
	}
	return sb.String()
}

func (o *TextObject) HAlign() HAlign      { return o.hAlign }
func (o *TextObject) VAlign() VAlign      { return o.vAlign }
func (o *TextObject) Bounds() math.Bounds { return o.bounds }
func (o *TextObject) AutoLineBreak() bool { return o.autoLineBreak }
func (o *TextObject) SizeToFit() bool     { return o.sizeToFit }
func (o *TextObject) HardBreaks() bool    { return o.hardBreaks }
func (o *TextObject) FoldASCII() bool     { return o.foldASCII }

func (o *TextObject) SetHAlign(a HAlign) {
	if o.hAlign != a {
		o.hAlign = a
		o.invalidate()
	}
}

func (o *TextObject) SetVAlign(a VAlign) {
	if o.vAlign != a {
		o.vAlign = a
		o.invalidate()
	}
}

func (o *TextObject) SetBounds(b math.Bounds) {
	if o.bounds != b {
		o.bounds = b
		o.invalidate()
	}
}

// SetAutoLineBreak enables wrapping at the bounds width.
func (o *TextObject) SetAutoLineBreak(on bool) {
	if o.autoLineBreak != on {
		o.autoLineBreak = on
		o.invalidate()
	}
}

// SetSizeToFit enables shrinking every style uniformly until the text fits
// the bounds. Text is never grown.
func (o *TextObject) SetSizeToFit(on bool) {
	if o.sizeToFit != on {
		o.sizeToFit = on
		o.invalidate()
	}
}

// SetHardBreaks makes '\n' start a new line.
func (o *TextObject) SetHardBreaks(on bool) {
	if o.hardBreaks != on {
		o.hardBreaks = on
		o.invalidate()
	}
}

// SetFoldASCII strips diacritics from resolved text before layout.
func (o *TextObject) SetFoldASCII(on bool) {
	if o.foldASCII != on {
		o.foldASCII = on
		o.invalidate()
	}
}

func (o *TextObject) wrapOptions() WrapOptions {
	opts := WrapOptions{
		HardBreaks: o.hardBreaks,
		FoldASCII:  o.foldASCII,
	}
	if o.autoLineBreak {
		opts.MaxWidth = o.bounds.Width()
	}
	return opts
}

// Layout wraps the segments for styles. The result is cached until the
// object changes or a different style slice is passed; callers must not
// modify it.
func (o *TextObject) Layout(styles []FontStyle) *Layout {
	if o.maxStyle >= len(styles) {
		panic(fmt.Sprintf("text: object uses style %d, but only %d styles were given", o.maxStyle, len(styles)))
	}
	if o.cache != nil && slices.Equal(o.cache.styles, styles) {
		return o.cache.layout
	}

	opts := o.wrapOptions()
	l := &Layout{
		Lines:  BuildLinesWithOptions(o.segments, styles, o.vars, opts),
		Styles: styles,
		Scale:  1,
	}
	l.Height = TotalHeight(l.Lines)

	if o.sizeToFit {
		if k := o.fitScale(l); k < 1 {
			scaled := make([]FontStyle, len(styles))
			for i, s := range styles {
				scaled[i] = s.WithSize(s.Size * k)
			}
			l = &Layout{
				Lines:  BuildLinesWithOptions(o.segments, scaled, o.vars, opts),
				Styles: scaled,
				Scale:  k,
			}
			l.Height = TotalHeight(l.Lines)
		}
	}

	o.cache = &layoutCache{styles: slices.Clone(styles), layout: l}
	return l
}

// fitScale returns the factor that shrinks l into the bounds, or 1 if it
// already fits or the bounds have no extent.
func (o *TextObject) fitScale(l *Layout) float32 {
	k := float32(1)
	bw, bh := o.bounds.Width(), o.bounds.Height()
	if w := l.Width(); bw > 0 && w > bw {
		k = min(k, bw/w)
	}
	if bh > 0 && l.Height > bh {
		k = min(k, bh/l.Height)
	}
	return k
}

// Lines returns the wrapped lines for styles.
func (o *TextObject) Lines(styles []FontStyle) []Line {
	return o.Layout(styles).Lines
}

// Tesselate lays out the object and returns one mesh per style, indexed by
// style. It does not clear the dirty flag.
func (o *TextObject) Tesselate(styles []FontStyle) []Mesh {
	l := o.Layout(styles)
	return Tesselate(l.Lines, l.Styles, o.Placement())
}

// Placement returns the rectangle and alignment lines are placed with.
func (o *TextObject) Placement() Placement {
	return Placement{
		Bounds: o.bounds,
		HAlign: o.hAlign,
		VAlign: o.vAlign,
	}
}
