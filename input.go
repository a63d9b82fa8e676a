package pondfeeder

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Gesture is a press-and-hold event on the feed control.
type Gesture uint8

const (
	GesturePress      Gesture = iota // pointer button pressed over the control
	GestureRelease                   // pointer button released
	GestureLeave                     // pointer left the control while held
	GestureTouchStart                // touch began on the control
	GestureTouchEnd                  // tracked touch ended
)

func (g Gesture) String() string {
	switch g {
	case GesturePress:
		return "press"
	case GestureRelease:
		return "release"
	case GestureLeave:
		return "leave"
	case GestureTouchStart:
		return "touchstart"
	case GestureTouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Feeding reports the feed state a gesture produces.
func (g Gesture) Feeding() bool {
	return g == GesturePress || g == GestureTouchStart
}

const feedSignalCap = 64

// FeedSignal carries feed state changes from the input side to the tick side.
// There is exactly one sender (the FeedButton) and one receiver (the host
// loop); the receiver only ever observes the most recent value.
type FeedSignal struct {
	ch   chan bool
	last bool
}

// NewFeedSignal creates an idle signal.
func NewFeedSignal() *FeedSignal {
	return &FeedSignal{ch: make(chan bool, feedSignalCap)}
}

// Send publishes a new feed state. It never blocks; if the receiver has fallen
// behind, the oldest pending value is dropped.
func (s *FeedSignal) Send(feeding bool) {
	for {
		select {
		case s.ch <- feeding:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Feeding drains pending values and returns the latest state. It implements
// FeedSource.
func (s *FeedSignal) Feeding() bool {
	for {
		select {
		case v := <-s.ch:
			s.last = v
		default:
			return s.last
		}
	}
}

// FeedButton turns mouse and touch gestures on a screen rectangle into feed
// state changes.
type FeedButton struct {
	// Bounds is the control's hit area in screen pixels.
	Bounds Rect
	// Label is drawn on the control.
	Label string

	signal    *FeedSignal
	mouseDown bool
	touching  bool
	touchID   ebiten.TouchID
	touchBuf  []ebiten.TouchID
	onGesture func(Gesture)
}

// NewFeedButton creates a control that publishes to signal.
func NewFeedButton(bounds Rect, signal *FeedSignal) *FeedButton {
	return &FeedButton{
		Bounds: bounds,
		Label:  "HOLD TO FEED",
		signal: signal,
	}
}

// OnGesture registers a callback invoked after every handled gesture.
func (b *FeedButton) OnGesture(fn func(Gesture)) {
	b.onGesture = fn
}

// Held reports whether a pointer or touch is currently holding the control.
func (b *FeedButton) Held() bool {
	return b.mouseDown || b.touching
}

// Handle applies a gesture. It returns true when the platform's default
// action (scrolling, text selection) should be suppressed, which is the case
// for touch starts.
func (b *FeedButton) Handle(g Gesture) (preventDefault bool) {
	if b.signal != nil {
		b.signal.Send(g.Feeding())
	}
	log.Debug().Stringer("gesture", g).Msg("feed control")
	if b.onGesture != nil {
		b.onGesture(g)
	}
	return g == GestureTouchStart
}

// Poll reads the current Ebitengine mouse and touch state and emits gestures.
// Call once per Update.
func (b *FeedButton) Poll() {
	cx, cy := ebiten.CursorPosition()
	b.processMouse(float64(cx), float64(cy),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	b.touchBuf = inpututil.AppendJustPressedTouchIDs(b.touchBuf[:0])
	for _, id := range b.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		if b.processTouchStart(id, float64(tx), float64(ty)) {
			break
		}
	}
	if b.touching && inpututil.IsTouchJustReleased(b.touchID) {
		b.processTouchEnd()
	}
}

// processMouse applies one frame of mouse state.
func (b *FeedButton) processMouse(x, y float64, justPressed, pressed bool) {
	inside := b.Bounds.Contains(x, y)
	switch {
	case !b.mouseDown && justPressed && inside:
		b.mouseDown = true
		b.Handle(GesturePress)
	case b.mouseDown && !pressed:
		b.mouseDown = false
		b.Handle(GestureRelease)
	case b.mouseDown && !inside:
		b.mouseDown = false
		b.Handle(GestureLeave)
	}
}

// processTouchStart begins tracking a touch that landed on the control. It
// reports whether the touch was taken.
func (b *FeedButton) processTouchStart(id ebiten.TouchID, x, y float64) bool {
	if b.touching || !b.Bounds.Contains(x, y) {
		return false
	}
	b.touching = true
	b.touchID = id
	b.Handle(GestureTouchStart)
	return true
}

// processTouchEnd ends the tracked touch.
func (b *FeedButton) processTouchEnd() {
	if !b.touching {
		return
	}
	b.touching = false
	b.Handle(GestureTouchEnd)
}
