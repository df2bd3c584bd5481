// texttool is a CLI utility for inspecting font atlases and text layouts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/Faultbox/textmesh/internal/assets"
	"github.com/Faultbox/textmesh/internal/preview"
	"github.com/Faultbox/textmesh/pkg/atlas"
	"github.com/Faultbox/textmesh/pkg/text"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "layout":
		cmdLayout(args)
	case "mesh":
		cmdMesh(args)
	case "preview":
		cmdPreview(args)
	case "bake":
		cmdBake(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`texttool - text layout and font atlas utility

Usage:
  texttool <command> [options]

Commands:
  info <font.json>                   Show atlas and metrics of a font description
  layout [options] <text>            Print the wrapped lines of a text
  mesh [options] <text>              Print the meshes of a text, one per style
  preview [options] <out.pdf> <text> Draw bounds, lines and glyph quads as PDF
  bake [options] <font.ttf> <prefix> Rasterize a font into prefix.json and prefix.png

Layout options:
  -font <font.json|goregular>  Font description or TTF (default goregular)
  -size, -width, -height       Style size and layout rectangle
  -halign, -valign             Alignment (left/center/right, top/middle/bottom)
  -wrap, -fit, -hard, -fold    Line breaking, size-to-fit, newlines, ASCII folding
  -var name=value              Set a variable (repeatable)
  -config <config.yaml>        Take fonts, styles and text from a config file

Examples:
  texttool info atlas.json
  texttool layout -width 200 -var score=12 "Score: {score}"
  texttool preview -halign left out.pdf "Hello, world"
  texttool bake -size 64 DejaVuSans.ttf fonts/dejavu`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: texttool info <font.json>")
		os.Exit(1)
	}

	font, err := text.LoadFontData(args[0])
	if err != nil {
		fatal(err)
	}

	a, m := font.Atlas, font.Metrics
	fmt.Printf("Font:     %s\n", args[0])
	fmt.Printf("Atlas:    %s, %dx%d, %s origin\n", a.Type, a.Width, a.Height, a.YOrigin)
	fmt.Printf("Size:     %g px/em, distance range %g\n", a.Size, a.DistanceRange)
	fmt.Printf("Metrics:  line height %g, ascender %g, descender %g\n", m.LineHeight, m.Ascender, m.Descender)
	fmt.Printf("Underline: y %g, thickness %g\n", m.UnderlineY, m.UnderlineThickness)
	fmt.Println()

	var renderable int
	var missing []string
	fallback := font.Glyph('?')
	for r := rune(0x20); r < 0x7f; r++ {
		g := font.Glyph(r)
		if g.Renderable() {
			renderable++
		}
		if r != '?' && g == fallback {
			missing = append(missing, string(r))
		}
	}
	fmt.Printf("Printable ASCII: %d renderable\n", renderable)
	if len(missing) > 0 {
		fmt.Printf("Missing (drawn as '?'): %s\n", strings.Join(missing, " "))
	}
}

func cmdLayout(args []string) {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	sf := addSceneFlags(fs)
	fs.Parse(args)

	sc, err := sf.build(strings.Join(fs.Args(), " "))
	if err != nil {
		fatal(err)
	}

	l := sc.obj.Layout(sc.styles)
	b := sc.obj.Bounds()
	fmt.Printf("Bounds: %gx%g at (%g, %g)\n", b.Width(), b.Height(), b.Left, b.Top)
	fmt.Printf("Lines:  %d, %gx%g, scale %g\n", len(l.Lines), l.Width(), l.Height, l.Scale)
	fmt.Println()

	boxes := sc.obj.Placement().LineBoxes(l.Lines)
	for i, line := range l.Lines {
		fmt.Printf("%3d  %-40q w=%-8.2f h=%-8.2f x=%-8.2f y=%.2f\n",
			i, line.String(), line.Width, line.Height, boxes[i].Left, boxes[i].Top)
		for _, r := range line.Ranges {
			fmt.Printf("       [%d:%d] style %d\n", r.Start, r.End, r.Style)
		}
	}
}

func cmdMesh(args []string) {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	sf := addSceneFlags(fs)
	verbose := fs.Bool("v", false, "Print every vertex")
	fs.Parse(args)

	sc, err := sf.build(strings.Join(fs.Args(), " "))
	if err != nil {
		fatal(err)
	}

	meshes := sc.obj.Tesselate(sc.styles)
	sc.obj.SetClean()

	for _, m := range meshes {
		fmt.Printf("Style %d: %d quads, %d vertices, %d indices\n", m.Style, m.Quads(), len(m.Vertices), len(m.Indices))
		if !*verbose {
			continue
		}
		for i, v := range m.Vertices {
			fmt.Printf("  %4d pos=(%.2f, %.2f) atlas=(%.4f, %.4f) glyph=(%g, %g) bounds=(%.3f, %.3f)\n",
				i, v.Position[0], v.Position[1], v.AtlasCoords[0], v.AtlasCoords[1],
				v.GlyphCoords[0], v.GlyphCoords[1], v.BoundsCoords[0], v.BoundsCoords[1])
		}
	}
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	sf := addSceneFlags(fs)
	scale := fs.Float64("scale", preview.DefaultOptions().Scale, "Millimetres per layout unit")
	noLines := fs.Bool("no-lines", false, "Do not draw line boxes")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: texttool preview [options] <out.pdf> <text>")
		os.Exit(1)
	}
	out := fs.Arg(0)

	sc, err := sf.build(strings.Join(fs.Args()[1:], " "))
	if err != nil {
		fatal(err)
	}

	opts := preview.DefaultOptions()
	opts.Scale = *scale
	opts.ShowLines = !*noLines
	opts.Title = filepath.Base(out)

	f, err := os.Create(out)
	if err != nil {
		fatal(err)
	}
	if err := preview.Render(f, sc.obj, sc.styles, opts); err != nil {
		f.Close()
		fatal(err)
	}
	if err := f.Close(); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s\n", out)
}

func cmdBake(args []string) {
	fs := flag.NewFlagSet("bake", flag.ExitOnError)
	size := fs.Float64("size", 48, "Rasterization size in pixels per em")
	width := fs.Int("atlas-width", 512, "Atlas width in pixels")
	padding := fs.Int("padding", 2, "Gap between glyph cells in pixels (0 = default, negative = none)")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: texttool bake [options] <font.ttf|goregular> <prefix>")
		os.Exit(1)
	}
	source, prefix := fs.Arg(0), fs.Arg(1)

	ttf, err := readFontSource(source)
	if err != nil {
		fatal(err)
	}
	res, err := atlas.Bake(ttf, atlas.Options{Size: *size, Width: *width, Padding: *padding})
	if err != nil {
		fatal(err)
	}

	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fatal(err)
		}
	}
	if err := writeFile(prefix+".json", res.WriteJSON); err != nil {
		fatal(err)
	}
	if err := writeFile(prefix+".png", res.WritePNG); err != nil {
		fatal(err)
	}

	fmt.Printf("Baked %s: %d glyphs into %dx%d\n",
		res.Name, len(res.Descriptor.Glyphs), res.Descriptor.Atlas.Width, res.Descriptor.Atlas.Height)
	fmt.Printf("  %s.json\n  %s.png\n", prefix, prefix)
}

func readFontSource(source string) ([]byte, error) {
	if source == assets.BuiltinGoRegular {
		return goregular.TTF, nil
	}
	return os.ReadFile(source)
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
