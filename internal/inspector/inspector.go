// Package inspector implements an ImGui tool for tuning a text object: its
// alignment, wrapping, fitting, styles and variables, with live layout
// statistics.
package inspector

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/assets"
	"github.com/Faultbox/textmesh/internal/config"
	"github.com/Faultbox/textmesh/internal/engine/framebuffer"
	"github.com/Faultbox/textmesh/internal/engine/textrender"
	"github.com/Faultbox/textmesh/internal/engine/ui"
	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/pkg/math"
	"github.com/Faultbox/textmesh/pkg/text"
)

const (
	title      = "textinspect"
	panelWidth = 340
)

// variableField is the edit buffer of one variable.
type variableField struct {
	name  string
	input string
}

// Inspector shows the configured text in a preview panel next to its
// controls.
type Inspector struct {
	cfg *config.Config
	log *zap.Logger

	backend    *ui.Backend
	fb         *framebuffer.Framebuffer
	text       *textrender.Renderer
	background text.Color
	released   bool

	fonts      *assets.Registry
	styles     []text.FontStyle
	styleFonts []string
	obj        *text.TextObject
	vars       []variableField
	padding    float32
	selected   int

	pending chan string
	status  string
}

// New opens the inspector window and prepares the configured text.
func New(cfg *config.Config) (*Inspector, error) {
	in := &Inspector{
		cfg:     cfg,
		log:     logger.Named("inspector"),
		padding: cfg.Layout.Padding,
		pending: make(chan string, 1),
	}

	var err error
	if in.background, err = text.ParseHexColor(cfg.Display.Background); err != nil {
		return nil, fmt.Errorf("display background: %w", err)
	}

	in.fonts = assets.NewRegistry()
	if err := in.fonts.LoadConfig(cfg.Fonts); err != nil {
		return nil, err
	}
	if in.styles, err = in.fonts.Styles(cfg.Styles); err != nil {
		return nil, err
	}
	in.styleFonts = make([]string, len(cfg.Styles))
	for i, s := range cfg.Styles {
		in.styleFonts[i] = s.Font
	}
	if in.obj, err = cfg.TextObject(); err != nil {
		return nil, err
	}
	in.vars = variableFields(in.obj, cfg.Text.Variables)

	in.backend, err = ui.NewBackend(title, cfg.Display.Width, cfg.Display.Height, in.background)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui backend: %w", err)
	}

	in.fb, err = framebuffer.New(int32(cfg.Display.Width), int32(cfg.Display.Height))
	if err != nil {
		return nil, err
	}
	in.text = textrender.New(logger.Named("textrender"), cfg.Display.Width, cfg.Display.Height)
	for _, name := range in.fonts.Names() {
		f, _ := in.fonts.Font(name)
		if f.Image == nil {
			in.release()
			return nil, fmt.Errorf("font %q has no atlas image", name)
		}
		if err := in.text.AddFont(f.Data, f.Image); err != nil {
			in.release()
			return nil, err
		}
	}
	in.backend.OnClose(in.release)

	in.log.Info("inspector initialized",
		zap.Int("styles", len(in.styles)),
		zap.Int("variables", len(in.vars)))
	return in, nil
}

// Run starts the UI loop. It returns when the window is closed.
func (in *Inspector) Run() error {
	in.log.Info("starting inspector loop")
	in.backend.Run(in.render)
	return nil
}

// Close releases GPU resources if the window did not already.
func (in *Inspector) Close() {
	in.log.Info("closing inspector")
	in.release()
}

func (in *Inspector) release() {
	if in.released {
		return
	}
	in.released = true
	if in.text != nil {
		in.text.Close()
	}
	if in.fb != nil {
		in.fb.Destroy()
	}
}

func (in *Inspector) render() {
	in.processPending()

	if ui.IsKeyPressed(imgui.KeyEscape) {
		in.backend.Quit()
	}

	in.renderMenuBar()

	x, y, w, h := ui.Viewport()
	pw := min(float32(panelWidth), w/2)
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(pw, h))
	if imgui.BeginV("Inspector", nil, flags) {
		in.renderPanel()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(x+pw, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w-pw, h))
	if imgui.BeginV("Preview", nil, flags) {
		in.renderPreview()
	}
	imgui.End()
}

func (in *Inspector) renderMenuBar() {
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open font...") {
				in.openFontDialog()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				in.backend.Quit()
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}
}

// renderPreview draws the text into the framebuffer sized to the panel and
// shows it.
func (in *Inspector) renderPreview() {
	avail := imgui.ContentRegionAvail()
	w, h := int32(avail.X), int32(avail.Y)
	if w < 1 || h < 1 {
		return
	}
	if in.fb.Resize(w, h) {
		in.text.Resize(int(w), int(h))
		in.layoutBounds()
	}

	in.text.Sync(in.obj, in.styles)

	restore := in.fb.BindWithViewport()
	c := in.background
	in.fb.Clear(c.R, c.G, c.B, c.A)
	in.text.Draw(in.obj.Layout(in.styles).Styles)
	restore()

	fw, fh := in.fb.Size()
	ui.Image(in.fb.ColorTexture(), float32(fw), float32(fh), in.background)
}

// layoutBounds fits the text rectangle to the framebuffer minus padding.
func (in *Inspector) layoutBounds() {
	w, h := in.fb.Size()
	in.obj.SetBounds(math.NewBounds(0, 0, float32(w), float32(h)).Inset(in.padding))
}

// variableFields seeds an edit buffer per configured variable with its
// current value.
func variableFields(obj *text.TextObject, vars []config.VariableConfig) []variableField {
	fields := make([]variableField, 0, len(vars))
	for _, v := range vars {
		val, _ := obj.Variable(v.Name)
		fields = append(fields, variableField{name: v.Name, input: val.String()})
	}
	return fields
}
