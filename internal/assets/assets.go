// Package assets loads fonts and keeps them for the lifetime of the process.
// Styles borrow font data from the registry by pointer.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/tiff"

	"github.com/Faultbox/textmesh/internal/config"
	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/pkg/atlas"
	"github.com/Faultbox/textmesh/pkg/text"
)

// BuiltinGoRegular names the bundled Go font as a bake source.
const BuiltinGoRegular = "goregular"

// Font is a loaded font and, when available, its atlas image.
type Font struct {
	Name  string
	Data  *text.FontData
	Image image.Image
}

// Registry owns every loaded font.
type Registry struct {
	fonts map[string]*Font
	cache *Cache[*text.FontData]
	mu    sync.RWMutex
	log   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*Font),
		cache: NewCache[*text.FontData](),
		log:   logger.Named("assets"),
	}
}

// Load registers name from an atlas description and optional PNG image.
// Descriptions are parsed once per path.
func (r *Registry) Load(name, jsonPath, imagePath string) (*Font, error) {
	data, ok := r.cache.Get(jsonPath)
	if !ok {
		var err error
		data, err = text.LoadFontData(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("loading font %s: %w", name, err)
		}
		r.cache.Set(jsonPath, data)
	}

	var img image.Image
	if imagePath != "" {
		var err error
		img, err = loadImage(imagePath)
		if err != nil {
			return nil, fmt.Errorf("loading font %s: %w", name, err)
		}
	}

	r.log.Info("font loaded",
		zap.String("name", name),
		zap.String("atlas", jsonPath),
		zap.Stringer("type", data.Atlas.Type),
		zap.Bool("image", img != nil))

	return r.Add(name, data, img)
}

// Bake registers name from a TTF/OTF file, or from the bundled Go font when
// source is BuiltinGoRegular.
func (r *Registry) Bake(name, source string, size float64) (*Font, error) {
	var ttf []byte
	if source == BuiltinGoRegular {
		ttf = goregular.TTF
	} else {
		var err error
		ttf, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("baking font %s: %w", name, err)
		}
	}

	res, err := atlas.Bake(ttf, atlas.Options{Size: size})
	if err != nil {
		return nil, fmt.Errorf("baking font %s: %w", name, err)
	}

	r.log.Info("font baked",
		zap.String("name", name),
		zap.String("source", source),
		zap.Uint32("width", res.Descriptor.Atlas.Width),
		zap.Uint32("height", res.Descriptor.Atlas.Height))

	return r.Add(name, res.Font, res.Image)
}

// Add registers already loaded font data.
func (r *Registry) Add(name string, data *text.FontData, img image.Image) (*Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fonts[name]; exists {
		return nil, fmt.Errorf("font %q already registered", name)
	}
	f := &Font{Name: name, Data: data, Image: img}
	r.fonts[name] = f
	return f, nil
}

// Font returns the named font.
func (r *Registry) Font(name string) (*Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[name]
	return f, ok
}

// Names returns the registered font names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stats returns description cache statistics.
func (r *Registry) Stats() (hits, misses int) {
	return r.cache.Stats()
}

// LoadConfig loads every configured font.
func (r *Registry) LoadConfig(fonts []config.FontConfig) error {
	for _, fc := range fonts {
		var err error
		if fc.Atlas != "" {
			_, err = r.Load(fc.Name, fc.Atlas, fc.Image)
		} else {
			_, err = r.Bake(fc.Name, fc.Source, fc.BakeSize)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Styles builds the style slice for the configured styles. Style i is
// styles[i], so segment style indices line up with the configuration.
func (r *Registry) Styles(styles []config.StyleConfig) ([]text.FontStyle, error) {
	out := make([]text.FontStyle, len(styles))
	for i, sc := range styles {
		f, ok := r.Font(sc.Font)
		if !ok {
			return nil, fmt.Errorf("style %q: font %q not loaded", sc.Name, sc.Font)
		}
		color, err := text.ParseHexColor(sc.Color)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", sc.Name, err)
		}
		out[i] = text.NewFontStyle(f.Data).WithSize(sc.Size).WithColor(color)
	}
	return out, nil
}

// loadImage decodes an atlas image. TGA is recognized by extension; PNG,
// BMP and TIFF by content.
func loadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = decodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Cache is an in-memory cache keyed by path.
type Cache[V any] struct {
	data map[string]V
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{
		data: make(map[string]V),
	}
}

// Get retrieves an item from cache.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set stores an item in cache.
func (c *Cache[V]) Set(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = v
}

// Clear empties the cache and resets statistics.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]V)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache[V]) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
