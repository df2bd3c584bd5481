package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func tgaHeader(imageType byte, width, height int, bpp byte, topToBottom bool) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = bpp
	if topToBottom {
		h[17] = 0x20
	}
	return h
}

func TestDecodeTGAGray(t *testing.T) {
	// bottom-up rows: 3 4 is the bottom row
	data := append(tgaHeader(tgaGray, 2, 2, 8, false), 3, 4, 1, 2)

	img, err := decodeTGA(data)
	if err != nil {
		t.Fatalf("decodeTGA() error = %v", err)
	}
	g, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decodeTGA() = %T, want *image.Gray", img)
	}
	want := [][]uint8{{1, 2}, {3, 4}}
	for y, row := range want {
		for x, v := range row {
			if got := g.GrayAt(x, y).Y; got != v {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, v)
			}
		}
	}
}

func TestDecodeTGATrueColorRLE(t *testing.T) {
	data := tgaHeader(tgaTrueColorRLE, 3, 1, 32, true)
	// run of two blue pixels, then one raw red pixel (BGRA order)
	data = append(data, 0x81, 255, 0, 0, 255)
	data = append(data, 0x00, 0, 0, 255, 128)

	img, err := decodeTGA(data)
	if err != nil {
		t.Fatalf("decodeTGA() error = %v", err)
	}
	n := img.(*image.NRGBA)
	want := []color.NRGBA{{0, 0, 255, 255}, {0, 0, 255, 255}, {255, 0, 0, 128}}
	for x, c := range want {
		if got := n.NRGBAAt(x, 0); got != c {
			t.Errorf("pixel %d = %v, want %v", x, got, c)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := tgaHeader(tgaTrueColor, 1, 1, 24, false); h[1] = 1; return h }()},
		{"unsupported type", tgaHeader(1, 1, 1, 8, false)},
		{"gray depth", tgaHeader(tgaGray, 1, 1, 16, false)},
		{"true-color depth", tgaHeader(tgaTrueColor, 1, 1, 16, false)},
		{"truncated", append(tgaHeader(tgaTrueColor, 2, 1, 24, false), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(tgaGrayRLE, 4, 1, 8, false), 0x81, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeTGA(tt.data); err == nil {
				t.Error("decodeTGA() error = nil")
			}
		})
	}
}

func TestLoadImageTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.TGA")
	data := append(tgaHeader(tgaGray, 1, 1, 8, true), 200)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	img, err := loadImage(path)
	if err != nil {
		t.Fatalf("loadImage() error = %v", err)
	}
	if got := img.(*image.Gray).GrayAt(0, 0).Y; got != 200 {
		t.Errorf("pixel = %d, want 200", got)
	}
}
