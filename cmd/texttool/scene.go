package main

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/Faultbox/textmesh/internal/assets"
	"github.com/Faultbox/textmesh/internal/config"
	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/pkg/math"
	"github.com/Faultbox/textmesh/pkg/text"
)

// variable is one -var assignment.
type variable struct {
	name  string
	value text.Value
}

// varFlags collects repeated -var name=value flags.
type varFlags []variable

func (v *varFlags) String() string {
	parts := make([]string, len(*v))
	for i, a := range *v {
		parts[i] = a.name + "=" + a.value.String()
	}
	return strings.Join(parts, ",")
}

func (v *varFlags) Set(s string) error {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	*v = append(*v, variable{name: name, value: text.ParseValue(raw)})
	return nil
}

func (v varFlags) names() []string {
	names := make([]string, 0, len(v))
	for _, a := range v {
		if !slices.Contains(names, a.name) {
			names = append(names, a.name)
		}
	}
	return names
}

// sceneFlags are the options shared by layout, mesh and preview.
type sceneFlags struct {
	config string
	font   string
	size   float64
	width  float64
	height float64
	halign string
	valign string
	wrap   bool
	fit    bool
	hard   bool
	fold   bool
	debug  bool
	vars   varFlags
}

func addSceneFlags(fs *flag.FlagSet) *sceneFlags {
	sf := &sceneFlags{}
	fs.StringVar(&sf.config, "config", "", "Config file with fonts, styles and text")
	fs.StringVar(&sf.font, "font", assets.BuiltinGoRegular, "Font description (.json) or font file to bake")
	fs.Float64Var(&sf.size, "size", 32, "Font size in pixels")
	fs.Float64Var(&sf.width, "width", 640, "Layout width (0 = unbounded)")
	fs.Float64Var(&sf.height, "height", 360, "Layout height")
	fs.StringVar(&sf.halign, "halign", "center", "Horizontal alignment: left, center, right")
	fs.StringVar(&sf.valign, "valign", "middle", "Vertical alignment: top, middle, bottom")
	fs.BoolVar(&sf.wrap, "wrap", true, "Break lines that overflow the width")
	fs.BoolVar(&sf.fit, "fit", false, "Shrink the text to fit the rectangle")
	fs.BoolVar(&sf.hard, "hard", true, "Start a new line at each newline")
	fs.BoolVar(&sf.fold, "fold", false, "Fold non-ASCII letters to ASCII")
	fs.BoolVar(&sf.debug, "debug", false, "Enable debug logging")
	fs.Var(&sf.vars, "var", "Variable assignment name=value (repeatable)")
	return sf
}

type scene struct {
	obj    *text.TextObject
	styles []text.FontStyle
}

// build creates the text object. An empty str keeps the configured text
// when -config is set.
func (sf *sceneFlags) build(str string) (*scene, error) {
	if sf.debug {
		if err := logger.Init("debug", ""); err != nil {
			return nil, err
		}
	}

	if sf.config != "" {
		return sf.buildFromConfig(str)
	}

	reg := assets.NewRegistry()
	var (
		font *assets.Font
		err  error
	)
	if strings.HasSuffix(strings.ToLower(sf.font), ".json") {
		font, err = reg.Load("font", sf.font, "")
	} else {
		font, err = reg.Bake("font", sf.font, 48)
	}
	if err != nil {
		return nil, err
	}
	styles := []text.FontStyle{text.NewFontStyle(font.Data).WithSize(float32(sf.size))}

	var obj *text.TextObject
	if names := sf.vars.names(); len(names) > 0 {
		set, err := config.NewVariableSet(names)
		if err != nil {
			return nil, err
		}
		obj = text.NewTextObjectWithVariables(str, set)
	} else {
		obj = text.NewTextObject(str)
	}

	if err := sf.apply(obj); err != nil {
		return nil, err
	}
	return &scene{obj: obj, styles: styles}, nil
}

func (sf *sceneFlags) buildFromConfig(str string) (*scene, error) {
	cfg, err := config.LoadFile(sf.config)
	if err != nil {
		return nil, err
	}
	if str != "" {
		cfg.Text.Segments = []config.SegmentConfig{{Text: str, Style: cfg.Styles[0].Name}}
	}

	reg := assets.NewRegistry()
	if err := reg.LoadConfig(cfg.Fonts); err != nil {
		return nil, err
	}
	styles, err := reg.Styles(cfg.Styles)
	if err != nil {
		return nil, err
	}
	obj, err := cfg.TextObject()
	if err != nil {
		return nil, err
	}

	if err := sf.apply(obj); err != nil {
		return nil, err
	}
	return &scene{obj: obj, styles: styles}, nil
}

// apply sets the layout flags and variables on obj.
func (sf *sceneFlags) apply(obj *text.TextObject) error {
	h, err := text.ParseHAlign(sf.halign)
	if err != nil {
		return err
	}
	v, err := text.ParseVAlign(sf.valign)
	if err != nil {
		return err
	}
	obj.SetHAlign(h)
	obj.SetVAlign(v)
	obj.SetAutoLineBreak(sf.wrap)
	obj.SetSizeToFit(sf.fit)
	obj.SetHardBreaks(sf.hard)
	obj.SetFoldASCII(sf.fold)
	obj.SetBounds(math.NewBounds(0, 0, float32(sf.width), float32(sf.height)))

	for _, a := range sf.vars {
		if !obj.SetVariable(a.name, a.value) {
			return fmt.Errorf("unknown variable %q", a.name)
		}
	}
	return nil
}
