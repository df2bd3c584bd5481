// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/textmesh/pkg/text"
)

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Fonts   []FontConfig  `yaml:"fonts"`
	Styles  []StyleConfig `yaml:"styles"`
	Layout  LayoutConfig  `yaml:"layout"`
	Text    TextConfig    `yaml:"text"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"` // hex color
	Inspector  bool   `yaml:"inspector"`  // show the ImGui inspector instead of the plain viewer
}

// FontConfig names a font. Either Atlas (an msdf-atlas-gen JSON file, with
// Image holding its PNG) or Source (a TTF/OTF file, or "goregular" for the
// bundled Go font) must be set; sources are baked at startup.
type FontConfig struct {
	Name     string  `yaml:"name"`
	Atlas    string  `yaml:"atlas,omitempty"`
	Image    string  `yaml:"image,omitempty"`
	Source   string  `yaml:"source,omitempty"`
	BakeSize float64 `yaml:"bake_size,omitempty"`
}

// StyleConfig is a named font style. Its position in Styles is the style
// index segments are laid out with.
type StyleConfig struct {
	Name  string  `yaml:"name"`
	Font  string  `yaml:"font"`
	Size  float32 `yaml:"size"`
	Color string  `yaml:"color"`
}

// LayoutConfig holds text object placement settings.
type LayoutConfig struct {
	HAlign        string  `yaml:"h_align"`
	VAlign        string  `yaml:"v_align"`
	AutoLineBreak bool    `yaml:"auto_line_break"`
	SizeToFit     bool    `yaml:"size_to_fit"`
	HardBreaks    bool    `yaml:"hard_breaks"`
	FoldASCII     bool    `yaml:"fold_ascii"`
	Padding       float32 `yaml:"padding"` // inset of the bounds from the window edges
}

// TextConfig holds the displayed text.
type TextConfig struct {
	Segments  []SegmentConfig  `yaml:"segments"`
	Variables []VariableConfig `yaml:"variables"`
}

// SegmentConfig is one template drawn with a named style.
type SegmentConfig struct {
	Text  string `yaml:"text"`
	Style string `yaml:"style"`
}

// VariableConfig declares a variable and its initial value.
type VariableConfig struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config that shows a score counter in the bundled Go font.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: "#1E1E28",
		},
		Fonts: []FontConfig{
			{Name: "go", Source: "goregular", BakeSize: 48},
		},
		Styles: []StyleConfig{
			{Name: "body", Font: "go", Size: 48, Color: "#FFFFFF"},
			{Name: "accent", Font: "go", Size: 64, Color: "#FFCC33"},
		},
		Layout: LayoutConfig{
			HAlign:        "center",
			VAlign:        "middle",
			AutoLineBreak: true,
			HardBreaks:    true,
			FoldASCII:     true,
			Padding:       40,
		},
		Text: TextConfig{
			Segments: []SegmentConfig{
				{Text: "Score: ", Style: "body"},
				{Text: "{score}", Style: "accent"},
				{Text: "\nPress + and - to change it, arrows to align.", Style: "body"},
			},
			Variables: []VariableConfig{
				{Name: "score", Value: 0},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StyleIndex returns the position of the named style.
func (c *Config) StyleIndex(name string) (int, bool) {
	for i, s := range c.Styles {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Font returns the named font configuration.
func (c *Config) Font(name string) (FontConfig, bool) {
	for _, f := range c.Fonts {
		if f.Name == name {
			return f, true
		}
	}
	return FontConfig{}, false
}

// Validate reports every inconsistency in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display: invalid size %dx%d", c.Display.Width, c.Display.Height))
	}
	if _, err := text.ParseHexColor(c.Display.Background); c.Display.Background != "" && err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	seen := make(map[string]bool)
	for _, f := range c.Fonts {
		switch {
		case f.Name == "":
			errs = append(errs, errors.New("fonts: font without a name"))
		case seen[f.Name]:
			errs = append(errs, fmt.Errorf("fonts: duplicate font %q", f.Name))
		case f.Atlas == "" && f.Source == "":
			errs = append(errs, fmt.Errorf("fonts: %q needs an atlas or a source", f.Name))
		}
		seen[f.Name] = true
	}

	if len(c.Styles) == 0 {
		errs = append(errs, errors.New("styles: at least one style is required"))
	}
	for _, s := range c.Styles {
		if _, ok := c.Font(s.Font); !ok {
			errs = append(errs, fmt.Errorf("styles: %q uses unknown font %q", s.Name, s.Font))
		}
		if s.Size <= 0 {
			errs = append(errs, fmt.Errorf("styles: %q has size %v", s.Name, s.Size))
		}
		if _, err := text.ParseHexColor(s.Color); err != nil {
			errs = append(errs, fmt.Errorf("styles: %q: %w", s.Name, err))
		}
	}

	if _, err := text.ParseHAlign(c.Layout.HAlign); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}
	if _, err := text.ParseVAlign(c.Layout.VAlign); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}

	for i, seg := range c.Text.Segments {
		if _, ok := c.StyleIndex(seg.Style); !ok {
			errs = append(errs, fmt.Errorf("text: segment %d uses unknown style %q", i, seg.Style))
		}
	}
	for _, v := range c.Text.Variables {
		if _, err := text.ValueOf(v.Value); err != nil {
			errs = append(errs, fmt.Errorf("text: variable %q: %w", v.Name, err))
		}
	}

	return errors.Join(errs...)
}
