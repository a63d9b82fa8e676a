package page

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultScrollDuration is how long a smooth scroll takes, in seconds.
const DefaultScrollDuration = 0.6

// Navigator scrolls the page smoothly to in-page anchors, leaving room for
// the fixed navigation bar.
type Navigator struct {
	// NavHeight is the height of the fixed navigation bar in pixels.
	NavHeight float64
	Duration  float32
	Ease      ease.TweenFunc

	anchors map[string]float64
	scrollY float64
	tween   *gween.Tween
}

// NewNavigator creates a navigator for a page with a nav bar of navHeight.
func NewNavigator(navHeight float64) *Navigator {
	return &Navigator{
		NavHeight: navHeight,
		Duration:  DefaultScrollDuration,
		Ease:      ease.InOutQuad,
		anchors:   make(map[string]float64),
	}
}

// SetAnchor records the document-space top of an anchor target.
func (n *Navigator) SetAnchor(href string, top float64) {
	n.anchors[href] = top
}

// ScrollY returns the current scroll position.
func (n *Navigator) ScrollY() float64 {
	return n.scrollY
}

// SetScrollY jumps to a scroll position and cancels any running animation.
func (n *Navigator) SetScrollY(y float64) {
	n.scrollY = y
	n.tween = nil
}

// Scrolling reports whether a smooth scroll is in progress.
func (n *Navigator) Scrolling() bool {
	return n.tween != nil
}

// Target returns the scroll position a link to href lands on.
func (n *Navigator) Target(href string) (float64, bool) {
	top, ok := n.anchors[href]
	if !ok {
		return 0, false
	}
	return top - n.NavHeight, true
}

// Click starts a smooth scroll to href. Unknown anchors are ignored and
// reported as false.
func (n *Navigator) Click(href string) bool {
	target, ok := n.Target(href)
	if !ok {
		return false
	}
	n.tween = gween.New(float32(n.scrollY), float32(target), n.Duration, n.Ease)
	return true
}

// Update advances the scroll animation by dt seconds and returns the scroll
// position.
func (n *Navigator) Update(dt float64) float64 {
	if n.tween == nil {
		return n.scrollY
	}
	val, done := n.tween.Update(float32(dt))
	n.scrollY = float64(val)
	if done {
		n.tween = nil
	}
	return n.scrollY
}
