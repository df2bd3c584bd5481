package math

// Bounds is an axis-aligned rectangle. The text layout uses a y-down
// convention (Top < Bottom), but nothing here depends on it: Width and
// Height are always Right-Left and Bottom-Top.
type Bounds struct {
	Left   float32 `json:"left" yaml:"left"`
	Top    float32 `json:"top" yaml:"top"`
	Right  float32 `json:"right" yaml:"right"`
	Bottom float32 `json:"bottom" yaml:"bottom"`
}

// NewBounds creates bounds from its four edges.
func NewBounds(left, top, right, bottom float32) Bounds {
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// NewBoundsWithCenter creates bounds of the given size around center.
func NewBoundsWithCenter(center Vec2, width, height float32) Bounds {
	return Bounds{
		Left:   center.X - width/2,
		Top:    center.Y - height/2,
		Right:  center.X + width/2,
		Bottom: center.Y + height/2,
	}
}

// NewBoundsWithSize creates bounds anchored at the origin.
func NewBoundsWithSize(size Vec2) Bounds {
	return Bounds{Right: size.X, Bottom: size.Y}
}

// Width returns Right - Left.
func (b Bounds) Width() float32 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Bounds) Height() float32 {
	return b.Bottom - b.Top
}

// Size returns the width and height as a vector.
func (b Bounds) Size() Vec2 {
	return Vec2{b.Width(), b.Height()}
}

// IsEmpty reports whether either extent is zero.
func (b Bounds) IsEmpty() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Center returns the midpoint.
func (b Bounds) Center() Vec2 {
	return Vec2{b.Left + b.Width()/2, b.Top + b.Height()/2}
}

func (b Bounds) TopLeft() Vec2     { return Vec2{b.Left, b.Top} }
func (b Bounds) TopRight() Vec2    { return Vec2{b.Right, b.Top} }
func (b Bounds) BottomLeft() Vec2  { return Vec2{b.Left, b.Bottom} }
func (b Bounds) BottomRight() Vec2 { return Vec2{b.Right, b.Bottom} }

func (b Bounds) TopCenter() Vec2    { return Vec2{b.Left + b.Width()/2, b.Top} }
func (b Bounds) BottomCenter() Vec2 { return Vec2{b.Left + b.Width()/2, b.Bottom} }
func (b Bounds) LeftCenter() Vec2   { return Vec2{b.Left, b.Top + b.Height()/2} }
func (b Bounds) RightCenter() Vec2  { return Vec2{b.Right, b.Top + b.Height()/2} }

// Translated returns the bounds moved by (x, y).
func (b Bounds) Translated(x, y float32) Bounds {
	return Bounds{
		Left:   b.Left + x,
		Top:    b.Top + y,
		Right:  b.Right + x,
		Bottom: b.Bottom + y,
	}
}

// Scaled returns the bounds with every edge multiplied by (sx, sy).
func (b Bounds) Scaled(sx, sy float32) Bounds {
	return Bounds{
		Left:   b.Left * sx,
		Top:    b.Top * sy,
		Right:  b.Right * sx,
		Bottom: b.Bottom * sy,
	}
}

// Transformed scales by (sx, sy) and then translates by (x, y).
func (b Bounds) Transformed(x, y, sx, sy float32) Bounds {
	return Bounds{
		Left:   b.Left*sx + x,
		Top:    b.Top*sy + y,
		Right:  b.Right*sx + x,
		Bottom: b.Bottom*sy + y,
	}
}

// CenteredAt returns bounds of the same size centered on center.
func (b Bounds) CenteredAt(center Vec2) Bounds {
	return NewBoundsWithCenter(center, b.Width(), b.Height())
}

// CenteredWithin returns bounds of the same size centered inside other.
func (b Bounds) CenteredWithin(other Bounds) Bounds {
	return b.CenteredAt(other.Center())
}

// NormalizedWithin maps b into the unit square of container, so that the
// container's top-left corner is (0, 0) and its bottom-right corner (1, 1).
// A zero-extent container axis maps to 0.
func (b Bounds) NormalizedWithin(container Bounds) Bounds {
	return Bounds{
		Left:   normalize(b.Left, container.Left, container.Width()),
		Top:    normalize(b.Top, container.Top, container.Height()),
		Right:  normalize(b.Right, container.Left, container.Width()),
		Bottom: normalize(b.Bottom, container.Top, container.Height()),
	}
}

// NormalizePoint maps p into the unit square of b.
func (b Bounds) NormalizePoint(p Vec2) Vec2 {
	return Vec2{
		normalize(p.X, b.Left, b.Width()),
		normalize(p.Y, b.Top, b.Height()),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= min(b.Left, b.Right) && p.X <= max(b.Left, b.Right) &&
		p.Y >= min(b.Top, b.Bottom) && p.Y <= max(b.Top, b.Bottom)
}

// Union returns the smallest bounds covering b and other. Both must be
// ordered left <= right and top <= bottom.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Left:   min(b.Left, other.Left),
		Top:    min(b.Top, other.Top),
		Right:  max(b.Right, other.Right),
		Bottom: max(b.Bottom, other.Bottom),
	}
}

// Inset shrinks b by d on every side. An inset larger than half an extent
// collapses that axis to its center. b must be ordered.
func (b Bounds) Inset(d float32) Bounds {
	dx := min(d, b.Width()/2)
	dy := min(d, b.Height()/2)
	return Bounds{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right - dx,
		Bottom: b.Bottom - dy,
	}
}

func normalize(v, origin, extent float32) float32 {
	if extent == 0 {
		return 0
	}
	return (v - origin) / extent
}
