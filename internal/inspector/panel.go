package inspector

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/textmesh/pkg/text"
)

var (
	hAligns = []text.HAlign{text.HAlignLeft, text.HAlignCenter, text.HAlignRight}
	vAligns = []text.VAlign{text.VAlignTop, text.VAlignMiddle, text.VAlignBottom}
)

var (
	headerColor = imgui.NewVec4(0.6, 0.8, 1.0, 1.0)
	errorColor  = imgui.NewVec4(1.0, 0.4, 0.4, 1.0)
)

// renderPanel draws the controls. Every edit goes through a TextObject
// setter, so the preview re-tesselates only when something changed.
func (in *Inspector) renderPanel() {
	in.renderLayout()
	imgui.Spacing()
	in.renderStyles()
	imgui.Spacing()
	in.renderVariables()
	imgui.Spacing()
	in.renderStats()

	if in.status != "" {
		imgui.Separator()
		imgui.TextColored(errorColor, in.status)
	}
}

func (in *Inspector) renderLayout() {
	imgui.TextColored(headerColor, "Layout")
	imgui.Separator()

	imgui.Text("Horizontal")
	for i, a := range hAligns {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.SelectableBoolV(a.String()+"##h", in.obj.HAlign() == a, 0, imgui.NewVec2(70, 0)) {
			in.obj.SetHAlign(a)
		}
	}

	imgui.Text("Vertical")
	for i, a := range vAligns {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.SelectableBoolV(a.String()+"##v", in.obj.VAlign() == a, 0, imgui.NewVec2(70, 0)) {
			in.obj.SetVAlign(a)
		}
	}

	wrap := in.obj.AutoLineBreak()
	if imgui.Checkbox("Wrap lines", &wrap) {
		in.obj.SetAutoLineBreak(wrap)
	}
	fit := in.obj.SizeToFit()
	if imgui.Checkbox("Shrink to fit", &fit) {
		in.obj.SetSizeToFit(fit)
	}
	hard := in.obj.HardBreaks()
	if imgui.Checkbox("Hard line breaks", &hard) {
		in.obj.SetHardBreaks(hard)
	}
	fold := in.obj.FoldASCII()
	if imgui.Checkbox("Fold to ASCII", &fold) {
		in.obj.SetFoldASCII(fold)
	}

	if imgui.SliderFloatV("Padding", &in.padding, 0, 200, "%.0f px", imgui.SliderFlagsNone) {
		in.layoutBounds()
	}
	b := in.obj.Bounds()
	imgui.TextDisabled(fmt.Sprintf("Bounds %.0f,%.0f  %.0fx%.0f", b.Left, b.Top, b.Width(), b.Height()))
}

func (in *Inspector) renderStyles() {
	imgui.TextColored(headerColor, "Styles")
	imgui.Separator()

	for i := range in.styles {
		label := fmt.Sprintf("%s (%s)##style%d", in.cfg.Styles[i].Name, in.styleFonts[i], i)
		if imgui.SelectableBoolV(label, in.selected == i, 0, imgui.NewVec2(0, 0)) {
			in.selected = i
		}
		imgui.SliderFloatV(fmt.Sprintf("Size##size%d", i), &in.styles[i].Size, 4, 256, "%.0f px", imgui.SliderFlagsNone)
	}

	if imgui.ButtonV("Open font for selected style...", imgui.NewVec2(-1, 0)) {
		in.openFontDialog()
	}
}

func (in *Inspector) renderVariables() {
	if len(in.vars) == 0 {
		return
	}
	imgui.TextColored(headerColor, "Variables")
	imgui.Separator()

	for i := range in.vars {
		f := &in.vars[i]
		if imgui.InputTextWithHint(f.name, "value", &f.input, 0, nil) {
			in.obj.SetVariable(f.name, text.ParseValue(f.input))
		}
	}
}

func (in *Inspector) renderStats() {
	imgui.TextColored(headerColor, "Layout stats")
	imgui.Separator()

	s := computeStats(in.obj.Layout(in.styles), in.text.Batches())
	imgui.Text(fmt.Sprintf("Lines: %d", s.lines))
	imgui.Text(fmt.Sprintf("Size: %.1f x %.1f", s.width, s.height))
	imgui.Text(fmt.Sprintf("Scale: %.3f", s.scale))
	imgui.Text(fmt.Sprintf("Quads: %d", s.total))
	for i, n := range s.quads {
		imgui.TextDisabled(fmt.Sprintf("  %s: %d", in.cfg.Styles[i].Name, n))
	}
	imgui.TextDisabled(in.obj.Text())
}
