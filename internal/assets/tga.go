package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: pixel data truncated")

// decodeTGA decodes uncompressed or RLE true-color and grayscale TGA files.
// Grayscale atlases decode to *image.Gray, everything else to *image.NRGBA.
func decodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}

	gray := imageType == tgaGray || imageType == tgaGrayRLE
	switch {
	case imageType != tgaTrueColor && imageType != tgaTrueColorRLE && !gray:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported true-color depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	var (
		img image.Image
		put func(x, y int, px []byte)
	)
	rect := image.Rect(0, 0, width, height)
	if gray {
		g := image.NewGray(rect)
		img = g
		put = func(x, y int, px []byte) { g.SetGray(x, y, color.Gray{Y: px[0]}) }
	} else {
		n := image.NewNRGBA(rect)
		img = n
		put = func(x, y int, px []byte) {
			a := uint8(255)
			if len(px) == 4 {
				a = px[3]
			}
			n.SetNRGBA(x, y, color.NRGBA{R: px[2], G: px[1], B: px[0], A: a})
		}
	}

	bytesPerPixel := bpp / 8
	i := 0
	for px := range tgaPixels(data[offset:], width*height, bytesPerPixel, imageType >= tgaTrueColorRLE) {
		x, y := i%width, i/width
		if !topToBottom {
			y = height - 1 - y
		}
		put(x, y, px)
		i++
	}
	if i < width*height {
		return nil, errTGATruncated
	}
	return img, nil
}

// tgaPixels yields up to count pixels of size bytes, expanding RLE packets.
func tgaPixels(data []byte, count, size int, rle bool) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		pos, emitted := 0, 0
		next := func() ([]byte, bool) {
			if pos+size > len(data) {
				return nil, false
			}
			px := data[pos : pos+size]
			pos += size
			return px, true
		}

		for emitted < count {
			run, repeat := 1, false
			if rle {
				if pos >= len(data) {
					return
				}
				packet := data[pos]
				pos++
				run = int(packet&0x7f) + 1
				repeat = packet&0x80 != 0
			}

			var px []byte
			for j := 0; j < run && emitted < count; j++ {
				if j == 0 || !repeat {
					var ok bool
					if px, ok = next(); !ok {
						return
					}
				}
				if !yield(px) {
					return
				}
				emitted++
			}
		}
	}
}
