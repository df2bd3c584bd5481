package atlas

import "testing"

func TestShelfPackerRows(t *testing.T) {
	p := newShelfPacker(32, 64, 0)

	want := []struct{ x, y int }{
		{0, 0}, {10, 0}, {20, 0}, // first shelf holds three 10-wide cells
		{0, 10}, {10, 10},
	}
	for i, w := range want {
		x, y, ok := p.allocate(10, 10)
		if !ok {
			t.Fatalf("allocate #%d failed", i)
		}
		if x != w.x || y != w.y {
			t.Errorf("allocate #%d = (%d, %d), want (%d, %d)", i, x, y, w.x, w.y)
		}
	}
	if got := p.usedHeight(); got != 20 {
		t.Errorf("usedHeight() = %d, want 20", got)
	}
}

func TestShelfPackerPadding(t *testing.T) {
	p := newShelfPacker(32, 64, 2)

	x, y, _ := p.allocate(10, 10)
	if x != 2 || y != 2 {
		t.Errorf("first allocate = (%d, %d), want (2, 2)", x, y)
	}
	x, y, _ = p.allocate(10, 8)
	if x != 14 || y != 2 {
		t.Errorf("second allocate = (%d, %d), want (14, 2)", x, y)
	}
	// 26 + 12 > 32: next shelf.
	x, y, _ = p.allocate(10, 10)
	if x != 2 || y != 14 {
		t.Errorf("third allocate = (%d, %d), want (2, 14)", x, y)
	}
}

func TestShelfPackerTallerItemOpensShelf(t *testing.T) {
	p := newShelfPacker(100, 100, 0)
	p.allocate(10, 10)

	x, y, ok := p.allocate(10, 20)
	if !ok || x != 0 || y != 10 {
		t.Errorf("allocate(10, 20) = (%d, %d, %v), want (0, 10, true)", x, y, ok)
	}
}

func TestShelfPackerFull(t *testing.T) {
	p := newShelfPacker(16, 16, 0)

	if _, _, ok := p.allocate(17, 1); ok {
		t.Error("allocate wider than the packer should fail")
	}
	if _, _, ok := p.allocate(16, 16); !ok {
		t.Fatal("allocate(16, 16) should fit exactly")
	}
	if _, _, ok := p.allocate(1, 1); ok {
		t.Error("allocate into a full packer should fail")
	}
}
