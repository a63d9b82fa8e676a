package pondfeeder

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root() is nil")
	}
	if s.Background != ColorHex(0x1e293b) {
		t.Errorf("Background = %v", s.Background)
	}
	if s.AttachedPellets() != 0 {
		t.Errorf("AttachedPellets = %d, want 0", s.AttachedPellets())
	}
}

func TestAttachPellet(t *testing.T) {
	s := NewScene()
	pos := mgl64.Vec3{1, 2, 3}
	h := s.AttachPellet(pos)

	if !s.PelletAttached(h) {
		t.Fatal("pellet should be attached")
	}
	if s.Root().NumChildren() != 1 {
		t.Fatalf("root children = %d, want 1", s.Root().NumChildren())
	}
	n := s.Root().Children()[0]
	if n.Position != pos {
		t.Errorf("Position = %v, want %v", n.Position, pos)
	}
	if n.Color != PelletColor {
		t.Errorf("Color = %v, want %v", n.Color, PelletColor)
	}
	if n.Geometry == nil || n.Geometry.TriangleCount() == 0 {
		t.Error("pellet should have sphere geometry")
	}
}

func TestMovePellet(t *testing.T) {
	s := NewScene()
	h := s.AttachPellet(mgl64.Vec3{})
	s.MovePellet(h, mgl64.Vec3{0, 5, 0})
	if got := s.Root().Children()[0].Position; got != (mgl64.Vec3{0, 5, 0}) {
		t.Errorf("Position = %v, want (0, 5, 0)", got)
	}
}

func TestDetachPellet(t *testing.T) {
	s := NewScene()
	h := s.AttachPellet(mgl64.Vec3{})
	if !s.DetachPellet(h) {
		t.Fatal("DetachPellet returned false")
	}
	if s.PelletAttached(h) {
		t.Error("pellet should be detached")
	}
	if s.Root().NumChildren() != 0 {
		t.Errorf("root children = %d, want 0", s.Root().NumChildren())
	}
	if s.DetachPellet(h) {
		t.Error("second DetachPellet should return false")
	}
	if s.AttachedPellets() != 0 {
		t.Errorf("AttachedPellets = %d, want 0", s.AttachedPellets())
	}
}

func TestZeroHandleInvalid(t *testing.T) {
	s := NewScene()
	s.AttachPellet(mgl64.Vec3{})
	if s.PelletAttached(Handle{}) {
		t.Error("zero handle should not be attached")
	}
	if s.DetachPellet(Handle{}) {
		t.Error("zero handle should not detach")
	}
}

func TestPelletPoolReuse(t *testing.T) {
	s := NewScene()
	old := s.AttachPellet(mgl64.Vec3{})
	oldNode := s.Root().Children()[0]
	s.DetachPellet(old)

	h := s.AttachPellet(mgl64.Vec3{1, 1, 1})
	if s.Root().Children()[0] != oldNode {
		t.Error("detached mesh should be reused")
	}
	if len(s.slots) != 1 {
		t.Errorf("slots = %d, want 1", len(s.slots))
	}

	// The stale handle must not touch the new occupant.
	s.MovePellet(old, mgl64.Vec3{9, 9, 9})
	if oldNode.Position != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("stale handle moved the pellet to %v", oldNode.Position)
	}
	if s.DetachPellet(old) {
		t.Error("stale handle should not detach")
	}
	if !s.PelletAttached(h) {
		t.Error("new handle should be attached")
	}
}

func TestSceneAdd(t *testing.T) {
	s := NewScene()
	a, b := NewGroup("a"), NewGroup("b")
	s.Add(a, b)
	if s.Root().FindChild("a") != a || s.Root().FindChild("b") != b {
		t.Error("Add should attach nodes under root")
	}
}

func TestSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !globalDebug {
		t.Error("globalDebug should follow SetDebugMode")
	}

	n := NewGroup("gone")
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("adding a disposed node in debug mode should panic")
		}
	}()
	s.Root().AddChild(n)
}
