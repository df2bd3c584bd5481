package inspector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/assets"
)

// sourceKind is what a picked file is loaded as.
type sourceKind int

const (
	sourceUnknown sourceKind = iota
	sourceAtlas              // msdf-atlas-gen JSON with an image beside it
	sourceFont               // TTF/OTF baked on load
)

func sourceKindOf(path string) sourceKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return sourceAtlas
	case ".ttf", ".otf":
		return sourceFont
	default:
		return sourceUnknown
	}
}

// bakeSize is the em size picked TTF/OTF files are rasterized at.
const bakeSize = 64

// atlasImageExts are tried in order next to an atlas description.
var atlasImageExts = []string{".png", ".tga", ".bmp", ".tiff", ".tif"}

// atlasImagePath returns the first existing image with the description's
// base name, or "" if there is none.
func atlasImagePath(jsonPath string) string {
	base := strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath))
	for _, ext := range atlasImageExts {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext
		}
	}
	return ""
}

// uniqueFontName derives a registry name from the file name, numbering it
// when taken.
func uniqueFontName(path string, taken func(string) bool) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = "font"
	}
	if !taken(name) {
		return name
	}
	for i := 2; ; i++ {
		candidate := name + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}

// openFont registers the file at path. Atlases need an image beside them
// because the renderer samples it.
func openFont(reg *assets.Registry, path string, bakeSize float64) (*assets.Font, error) {
	name := uniqueFontName(path, func(n string) bool {
		_, ok := reg.Font(n)
		return ok
	})

	switch sourceKindOf(path) {
	case sourceAtlas:
		img := atlasImagePath(path)
		if img == "" {
			return nil, fmt.Errorf("no atlas image next to %s", path)
		}
		return reg.Load(name, path, img)
	case sourceFont:
		return reg.Bake(name, path, bakeSize)
	default:
		return nil, fmt.Errorf("unsupported font file %s", path)
	}
}

// openFontDialog shows a native file picker. The native dialog blocks, so
// it runs off the main thread and hands the path back through pending.
func (in *Inspector) openFontDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Fonts and atlases", "json", "ttf", "otf").
			Filter("All Files", "*").
			Title("Open Font").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				in.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case in.pending <- filename:
		default:
			in.log.Debug("font already pending, dropping", zap.String("path", filename))
		}
	}()
}

// processPending loads a picked font on the main thread, where the GL
// context lives, and assigns it to the selected style.
func (in *Inspector) processPending() {
	var path string
	select {
	case path = <-in.pending:
	default:
		return
	}

	f, err := openFont(in.fonts, path, bakeSize)
	if err == nil {
		err = in.text.AddFont(f.Data, f.Image)
	}
	if err != nil {
		in.status = err.Error()
		in.log.Error("failed to open font", zap.String("path", path), zap.Error(err))
		return
	}

	in.styles[in.selected].Font = f.Data
	in.styleFonts[in.selected] = f.Name
	in.status = fmt.Sprintf("%s -> %s", f.Name, in.cfg.Styles[in.selected].Name)
	in.log.Info("font opened",
		zap.String("path", path),
		zap.String("font", f.Name),
		zap.String("style", in.cfg.Styles[in.selected].Name))
}
