package atlas

// shelfPacker places rectangles left to right on horizontal shelves. A shelf
// is as tall as the first rectangle placed on it, so rectangles should be
// added tallest first.
type shelfPacker struct {
	width     int
	maxHeight int
	padding   int
	shelves   []shelf
}

type shelf struct {
	y      int
	height int
	x      int
}

func newShelfPacker(width, maxHeight, padding int) *shelfPacker {
	return &shelfPacker{
		width:     width,
		maxHeight: maxHeight,
		padding:   padding,
	}
}

// allocate returns the top-left corner for a w x h rectangle.
func (p *shelfPacker) allocate(w, h int) (x, y int, ok bool) {
	pw, ph := w+p.padding, h+p.padding
	if pw > p.width {
		return 0, 0, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if h <= s.height && s.x+pw <= p.width {
			x, y = s.x, s.y
			s.x += pw
			return x, y, true
		}
	}

	y = p.padding
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height + p.padding
	}
	if y+ph > p.maxHeight {
		return 0, 0, false
	}

	p.shelves = append(p.shelves, shelf{y: y, height: h, x: p.padding + pw})
	return p.padding, y, true
}

// usedHeight returns the bottom edge of the lowest shelf plus padding.
func (p *shelfPacker) usedHeight() int {
	if len(p.shelves) == 0 {
		return 0
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height + p.padding
}
