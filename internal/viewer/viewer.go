// Package viewer implements the interactive text viewer loop.
package viewer

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/assets"
	"github.com/Faultbox/textmesh/internal/config"
	"github.com/Faultbox/textmesh/internal/engine/input"
	"github.com/Faultbox/textmesh/internal/engine/renderer"
	"github.com/Faultbox/textmesh/internal/engine/textrender"
	"github.com/Faultbox/textmesh/internal/engine/window"
	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/pkg/math"
	"github.com/Faultbox/textmesh/pkg/text"
)

const title = "textview"

// Viewer shows one configured text object in a window.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	text     *textrender.Renderer
	input    *input.Input

	fonts   *assets.Registry
	styles  []text.FontStyle
	obj     *text.TextObject
	counter counter
}

// New opens the window and prepares the configured text.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	background, err := text.ParseHexColor(cfg.Display.Background)
	if err != nil {
		return nil, fmt.Errorf("display background: %w", err)
	}

	v.fonts = assets.NewRegistry()
	if err := v.fonts.LoadConfig(cfg.Fonts); err != nil {
		return nil, err
	}
	if v.styles, err = v.fonts.Styles(cfg.Styles); err != nil {
		return nil, err
	}
	if v.obj, err = cfg.TextObject(); err != nil {
		return nil, err
	}
	v.counter = findCounter(cfg.Text.Variables)

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.GetDrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.text = textrender.New(logger.Named("textrender"), width, height)
	for _, name := range v.fonts.Names() {
		f, _ := v.fonts.Font(name)
		if f.Image == nil {
			v.Close()
			return nil, fmt.Errorf("font %q has no atlas image", name)
		}
		if err := v.text.AddFont(f.Data, f.Image); err != nil {
			v.Close()
			return nil, err
		}
	}

	v.input = input.New()
	v.resize(width, height)

	v.log.Info("viewer initialized",
		zap.Int("styles", len(v.styles)),
		zap.Int("segments", len(v.obj.Segments())),
		zap.String("counter", v.counter.name),
	)
	return v, nil
}

// Run starts the main loop. It returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.resize(v.window.GetDrawableSize())
			case input.EventKeyDown:
				if applyKey(v.obj, event.Key, &v.counter) {
					v.updateTitle()
				}
			}
		}

		if v.text.Sync(v.obj, v.styles) {
			l := v.obj.Layout(v.styles)
			v.log.Debug("text changed",
				zap.String("text", v.obj.Text()),
				zap.Int("lines", len(l.Lines)),
				zap.Float32("scale", l.Scale),
			)
		}

		v.renderer.Begin()
		v.text.Draw(v.obj.Layout(v.styles).Styles)
		v.renderer.End()

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases all resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.text != nil {
		v.text.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// resize fits the text rectangle to the drawable area minus padding.
func (v *Viewer) resize(width, height int) {
	v.renderer.Resize(width, height)
	v.text.Resize(width, height)
	v.obj.SetBounds(textBounds(width, height, v.cfg.Layout.Padding))
	v.updateTitle()
}

func (v *Viewer) updateTitle() {
	v.window.SetTitle(fmt.Sprintf("%s - %s/%s wrap=%t fit=%t",
		title, v.obj.HAlign(), v.obj.VAlign(), v.obj.AutoLineBreak(), v.obj.SizeToFit()))
}

// textBounds insets the viewport by padding, collapsing to its center when
// the padding is larger than the viewport.
func textBounds(width, height int, padding float32) math.Bounds {
	return math.NewBounds(0, 0, float32(width), float32(height)).Inset(padding)
}

// findCounter picks the first integer variable.
func findCounter(vars []config.VariableConfig) counter {
	for _, v := range vars {
		val, err := text.ValueOf(v.Value)
		if err != nil || val.Kind() != text.KindInteger {
			continue
		}
		n, _ := strconv.ParseInt(val.String(), 10, 64)
		return counter{name: v.Name, value: n}
	}
	return counter{}
}
