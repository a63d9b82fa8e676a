package page

// RevealThreshold is the visible fraction at which an element is revealed.
const RevealThreshold = 0.1

// RevealObserver adds the "visible" class to elements the first time enough
// of them scrolls into view, then stops watching them.
type RevealObserver struct {
	Threshold float64

	watched  map[string]bool
	revealed map[string]bool
	onReveal func(id string)
}

// NewRevealObserver creates an observer using RevealThreshold.
func NewRevealObserver() *RevealObserver {
	return &RevealObserver{
		Threshold: RevealThreshold,
		watched:   make(map[string]bool),
		revealed:  make(map[string]bool),
	}
}

// OnReveal registers a callback invoked once per revealed element.
func (o *RevealObserver) OnReveal(fn func(id string)) {
	o.onReveal = fn
}

// Observe starts watching an element. Already revealed elements are not
// watched again.
func (o *RevealObserver) Observe(id string) {
	if o.revealed[id] {
		return
	}
	o.watched[id] = true
}

// Observing reports whether id is still being watched.
func (o *RevealObserver) Observing(id string) bool {
	return o.watched[id]
}

// Check reports the fraction of an element currently inside the viewport. It
// returns true if this call revealed the element.
func (o *RevealObserver) Check(id string, visibleRatio float64) bool {
	if !o.watched[id] || visibleRatio < o.Threshold {
		return false
	}
	delete(o.watched, id)
	o.revealed[id] = true
	if o.onReveal != nil {
		o.onReveal(id)
	}
	return true
}

// Visible reports whether id has been revealed.
func (o *RevealObserver) Visible(id string) bool {
	return o.revealed[id]
}

// Class returns the class list contribution for id.
func (o *RevealObserver) Class(id string) string {
	if o.revealed[id] {
		return ClassVisible
	}
	return ""
}
