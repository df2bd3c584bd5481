package framebuffer

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int32
		wantW, wantH int32
	}{
		{"positive", 640, 480, 640, 480},
		{"zero", 0, 0, 1, 1},
		{"negative width", -5, 10, 1, 10},
		{"negative height", 10, -1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := clampSize(tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("clampSize(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
