// Package renderer owns the OpenGL frame: initialization, viewport and clearing.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/pkg/text"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background text.Color
}

// Renderer handles per-frame OpenGL state.
type Renderer struct {
	config Config
	log    *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// text is drawn back to front with blending; no depth buffer is requested
	gl.Disable(gl.DEPTH_TEST)
	r.SetBackground(cfg.Background)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}

// SetBackground sets the clear color.
func (r *Renderer) SetBackground(c text.Color) {
	r.config.Background = c
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// End finishes the current frame and reports pending GL errors.
func (r *Renderer) End() {
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		r.log.Warn("OpenGL error", zap.Uint32("code", code))
	}
}
