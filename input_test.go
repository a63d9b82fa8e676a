package pondfeeder

import "testing"

func TestFeedSignalLatestWins(t *testing.T) {
	s := NewFeedSignal()
	if s.Feeding() {
		t.Fatal("new signal should be idle")
	}
	s.Send(true)
	if !s.Feeding() {
		t.Error("Feeding() = false after Send(true)")
	}
	// Still true with nothing pending.
	if !s.Feeding() {
		t.Error("Feeding() should keep the last value")
	}
	s.Send(true)
	s.Send(false)
	if s.Feeding() {
		t.Error("press and release in one tick should end idle")
	}
}

func TestFeedSignalOverflow(t *testing.T) {
	s := NewFeedSignal()
	for i := 0; i < feedSignalCap*3; i++ {
		s.Send(i%2 == 0)
	}
	s.Send(true)
	if !s.Feeding() {
		t.Error("latest value should survive overflow")
	}
}

func TestGestureFeeding(t *testing.T) {
	tests := []struct {
		g    Gesture
		want bool
	}{
		{GesturePress, true},
		{GestureRelease, false},
		{GestureLeave, false},
		{GestureTouchStart, true},
		{GestureTouchEnd, false},
	}
	for _, tt := range tests {
		if got := tt.g.Feeding(); got != tt.want {
			t.Errorf("%v.Feeding() = %v, want %v", tt.g, got, tt.want)
		}
	}
	if Gesture(99).String() != "unknown" {
		t.Errorf("Gesture(99) = %q", Gesture(99))
	}
}

func newTestButton() (*FeedButton, *FeedSignal, *[]Gesture) {
	s := NewFeedSignal()
	b := NewFeedButton(Rect{X: 0, Y: 0, Width: 100, Height: 50}, s)
	var got []Gesture
	b.OnGesture(func(g Gesture) { got = append(got, g) })
	return b, s, &got
}

func TestFeedButtonDefaults(t *testing.T) {
	b := NewFeedButton(Rect{}, nil)
	if b.Label != "HOLD TO FEED" {
		t.Errorf("Label = %q", b.Label)
	}
	if b.Held() {
		t.Error("new button should not be held")
	}
	// No signal attached yet.
	b.Handle(GesturePress)
}

func TestMousePressRelease(t *testing.T) {
	b, s, got := newTestButton()

	b.processMouse(50, 25, true, true)
	if !b.Held() || !s.Feeding() {
		t.Fatal("press inside should start feeding")
	}
	b.processMouse(60, 30, false, true)
	if len(*got) != 1 {
		t.Errorf("holding should not emit gestures, got %v", *got)
	}
	b.processMouse(60, 30, false, false)
	if b.Held() || s.Feeding() {
		t.Error("release should stop feeding")
	}
	if want := []Gesture{GesturePress, GestureRelease}; !equalGestures(*got, want) {
		t.Errorf("gestures = %v, want %v", *got, want)
	}
}

func TestMousePressOutside(t *testing.T) {
	b, s, got := newTestButton()
	b.processMouse(500, 500, true, true)
	if b.Held() || s.Feeding() || len(*got) != 0 {
		t.Error("press outside the control should be ignored")
	}
}

func TestMouseLeave(t *testing.T) {
	b, s, got := newTestButton()
	b.processMouse(10, 10, true, true)
	b.processMouse(150, 10, false, true)
	if b.Held() || s.Feeding() {
		t.Error("leaving while held should stop feeding")
	}
	// Releasing outside afterwards emits nothing further.
	b.processMouse(150, 10, false, false)
	if want := []Gesture{GesturePress, GestureLeave}; !equalGestures(*got, want) {
		t.Errorf("gestures = %v, want %v", *got, want)
	}
}

func TestTouchStartEnd(t *testing.T) {
	b, s, got := newTestButton()
	if b.processTouchStart(1, 500, 500) {
		t.Error("touch outside should not be taken")
	}
	if !b.processTouchStart(1, 10, 10) {
		t.Fatal("touch inside should be taken")
	}
	if !s.Feeding() || !b.Held() {
		t.Error("touch should start feeding")
	}
	if b.processTouchStart(2, 20, 20) {
		t.Error("second touch should be ignored while one is tracked")
	}
	b.processTouchEnd()
	b.processTouchEnd()
	if s.Feeding() || b.Held() {
		t.Error("touch end should stop feeding")
	}
	if want := []Gesture{GestureTouchStart, GestureTouchEnd}; !equalGestures(*got, want) {
		t.Errorf("gestures = %v, want %v", *got, want)
	}
}

func TestHandlePreventDefault(t *testing.T) {
	b, _, _ := newTestButton()
	for _, g := range []Gesture{GesturePress, GestureRelease, GestureLeave, GestureTouchStart, GestureTouchEnd} {
		want := g == GestureTouchStart
		if got := b.Handle(g); got != want {
			t.Errorf("Handle(%v) = %v, want %v", g, got, want)
		}
	}
}

func equalGestures(a, b []Gesture) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
