package inspector

import (
	"github.com/Faultbox/textmesh/internal/engine/textrender"
	"github.com/Faultbox/textmesh/pkg/text"
)

// stats summarizes a layout and its uploaded meshes.
type stats struct {
	lines  int
	width  float32
	height float32
	scale  float32
	quads  []int // per style
	total  int
}

func computeStats(l *text.Layout, batches []textrender.Batch) stats {
	s := stats{
		lines:  len(l.Lines),
		width:  l.Width(),
		height: l.Height,
		scale:  l.Scale,
		quads:  make([]int, len(l.Styles)),
	}
	for _, b := range batches {
		if b.Style < len(s.quads) {
			n := b.Quads()
			s.quads[b.Style] += n
			s.total += n
		}
	}
	return s
}
