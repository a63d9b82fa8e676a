package pondfeeder

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"pellets", "pellets"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"hold 30/frames", "hold_30_frames"},
		{"v1.2-final", "v1.2-final"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestScreenshotQueue(t *testing.T) {
	g := NewGame(nil)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 {
		t.Errorf("queue = %v", g.screenshotQueue)
	}
}
