package config

import (
	"fmt"

	"github.com/Faultbox/textmesh/pkg/text"
)

// TextObject builds the configured text object. Segment styles resolve to
// positions in Styles. Bounds are left for the caller to set.
func (c *Config) TextObject() (*text.TextObject, error) {
	names := make([]string, len(c.Text.Variables))
	for i, v := range c.Text.Variables {
		names[i] = v.Name
	}

	var obj *text.TextObject
	if len(names) == 0 {
		obj = text.NewTextObject("")
	} else {
		set, err := NewVariableSet(names)
		if err != nil {
			return nil, err
		}
		obj = text.NewTextObjectWithVariables("", set)
		for _, v := range c.Text.Variables {
			val, err := text.ValueOf(v.Value)
			if err != nil {
				return nil, fmt.Errorf("variable %q: %w", v.Name, err)
			}
			obj.SetVariable(v.Name, val)
		}
	}

	for i, seg := range c.Text.Segments {
		style, ok := c.StyleIndex(seg.Style)
		if !ok {
			return nil, fmt.Errorf("segment %d: unknown style %q", i, seg.Style)
		}
		obj.AddSegment(text.NewTextSegment(seg.Text, style))
	}

	h, err := text.ParseHAlign(c.Layout.HAlign)
	if err != nil {
		return nil, err
	}
	v, err := text.ParseVAlign(c.Layout.VAlign)
	if err != nil {
		return nil, err
	}
	obj.SetHAlign(h)
	obj.SetVAlign(v)
	obj.SetAutoLineBreak(c.Layout.AutoLineBreak)
	obj.SetSizeToFit(c.Layout.SizeToFit)
	obj.SetHardBreaks(c.Layout.HardBreaks)
	obj.SetFoldASCII(c.Layout.FoldASCII)

	return obj, nil
}

// NewVariableSet registers names, returning an error instead of panicking
// on an empty or duplicate name.
func NewVariableSet(names []string) (set *text.VariableSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("variables: %v", r)
		}
	}()
	return text.NewVariableSet(names...), nil
}
