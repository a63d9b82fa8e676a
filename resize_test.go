package pondfeeder

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestResize(t *testing.T) {
	cam := NewPerspectiveCamera(DefaultFOV, 1, DefaultNear, DefaultFar)
	r := NewRenderer(100, 100)

	Resize(cam, r, 1024, 768)
	if cam.Aspect != 1024.0/768.0 {
		t.Errorf("Aspect = %v, want %v", cam.Aspect, 1024.0/768.0)
	}
	want := mgl64.Perspective(mgl64.DegToRad(DefaultFOV), 1024.0/768.0, DefaultNear, DefaultFar)
	if !cam.ProjectionMatrix().ApproxEqual(want) {
		t.Error("projection matrix not updated")
	}
	if w, h := r.Size(); w != 1024 || h != 768 {
		t.Errorf("renderer size = %dx%d, want 1024x768", w, h)
	}
}

func TestResizeIgnoresEmpty(t *testing.T) {
	cam := NewPerspectiveCamera(DefaultFOV, 2, DefaultNear, DefaultFar)
	r := NewRenderer(200, 100)
	before := cam.ProjectionMatrix()

	for _, size := range [][2]int{{0, 0}, {0, 100}, {100, 0}, {-5, 10}} {
		Resize(cam, r, size[0], size[1])
	}
	if cam.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", cam.Aspect)
	}
	if cam.ProjectionMatrix() != before {
		t.Error("projection changed on an empty resize")
	}
	if w, h := r.Size(); w != 200 || h != 100 {
		t.Errorf("renderer size = %dx%d, want 200x100", w, h)
	}
}

func TestResizeIdempotent(t *testing.T) {
	cam := NewPerspectiveCamera(DefaultFOV, 1, DefaultNear, DefaultFar)
	r := NewRenderer(1, 1)
	Resize(cam, r, 640, 480)
	first := cam.ProjectionMatrix()
	Resize(cam, r, 640, 480)
	if cam.ProjectionMatrix() != first {
		t.Error("second resize with the same size changed the projection")
	}
}

func TestResizeNilParts(t *testing.T) {
	Resize(nil, nil, 640, 480)
	r := NewRenderer(1, 1)
	Resize(nil, r, 640, 480)
	if w, _ := r.Size(); w != 640 {
		t.Errorf("renderer width = %d, want 640", w)
	}
}
