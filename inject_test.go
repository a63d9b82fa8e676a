package pondfeeder

import "testing"

func TestInjectHoldQueue(t *testing.T) {
	g := NewGame(nil)
	g.InjectHold(3)
	if len(g.injectQueue) != 4 {
		t.Fatalf("queue = %d, want 4", len(g.injectQueue))
	}
	if g.injectQueue[0].gesture != GesturePress || g.injectQueue[3].gesture != GestureRelease {
		t.Error("hold should start with a press and end with a release")
	}
	for _, e := range g.injectQueue[1:3] {
		if !e.idle {
			t.Error("middle frames should be idle")
		}
	}
}

func TestInjectHoldMinimum(t *testing.T) {
	g := NewGame(nil)
	g.InjectHold(0)
	if len(g.injectQueue) != 2 {
		t.Errorf("queue = %d, want press and release", len(g.injectQueue))
	}
}

func TestInjectTouch(t *testing.T) {
	g := NewGame(nil)
	g.InjectTouch(2)
	if len(g.injectQueue) != 3 {
		t.Fatalf("queue = %d, want 3", len(g.injectQueue))
	}
	if g.injectQueue[0].gesture != GestureTouchStart || g.injectQueue[2].gesture != GestureTouchEnd {
		t.Error("touch should start and end the hold")
	}
}

func TestProcessInjectedOnePerFrame(t *testing.T) {
	g := NewGame(nil)
	g.InjectPress()
	g.InjectRelease()

	if !g.processInjected() {
		t.Fatal("first frame should consume an entry")
	}
	if !g.Signal().Feeding() {
		t.Error("press should publish feeding")
	}
	if len(g.injectQueue) != 1 {
		t.Fatalf("queue = %d, want 1", len(g.injectQueue))
	}
	g.processInjected()
	if g.Signal().Feeding() {
		t.Error("release should publish idle")
	}
	if g.processInjected() {
		t.Error("empty queue should report false")
	}
}

func TestProcessInjectedThroughButton(t *testing.T) {
	g := NewGame(nil)
	b := NewFeedButton(Rect{}, nil)
	g.SetFeedButton(b, false)
	var seen []Gesture
	b.OnGesture(func(gs Gesture) { seen = append(seen, gs) })

	g.InjectTouch(1)
	for g.processInjected() {
	}
	if want := []Gesture{GestureTouchStart, GestureTouchEnd}; !equalGestures(seen, want) {
		t.Errorf("gestures = %v, want %v", seen, want)
	}
}
