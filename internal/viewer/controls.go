package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/textmesh/pkg/text"
)

// counter is the integer variable driven by + and -.
type counter struct {
	name  string
	value int64
}

// applyKey changes obj in response to a key press and reports whether the
// key was handled.
//
//	left/right  horizontal alignment
//	up/down     vertical alignment
//	+/-         counter variable
//	w           automatic line breaks
//	f           size to fit
func applyKey(obj *text.TextObject, key sdl.Keycode, c *counter) bool {
	switch key {
	case sdl.K_LEFT:
		obj.SetHAlign(cycleHAlign(obj.HAlign(), -1))
	case sdl.K_RIGHT:
		obj.SetHAlign(cycleHAlign(obj.HAlign(), 1))
	case sdl.K_UP:
		obj.SetVAlign(cycleVAlign(obj.VAlign(), -1))
	case sdl.K_DOWN:
		obj.SetVAlign(cycleVAlign(obj.VAlign(), 1))
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		return c.add(obj, 1)
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return c.add(obj, -1)
	case sdl.K_w:
		obj.SetAutoLineBreak(!obj.AutoLineBreak())
	case sdl.K_f:
		obj.SetSizeToFit(!obj.SizeToFit())
	default:
		return false
	}
	return true
}

func (c *counter) add(obj *text.TextObject, delta int64) bool {
	if c == nil || c.name == "" {
		return false
	}
	c.value += delta
	return obj.SetVariable(c.name, text.IntValue(c.value))
}

func cycleHAlign(a text.HAlign, step int) text.HAlign {
	const n = int(text.HAlignRight) + 1
	return text.HAlign((int(a) + step + n) % n)
}

func cycleVAlign(a text.VAlign, step int) text.VAlign {
	const n = int(text.VAlignBottom) + 1
	return text.VAlign((int(a) + step + n) % n)
}
