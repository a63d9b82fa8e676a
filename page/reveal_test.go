package page

import "testing"

func TestRevealOnce(t *testing.T) {
	o := NewRevealObserver()
	var revealed []string
	o.OnReveal(func(id string) { revealed = append(revealed, id) })
	o.Observe("features")

	if o.Check("features", 0.05) {
		t.Error("below threshold should not reveal")
	}
	if o.Visible("features") || o.Class("features") != "" {
		t.Error("element should still be hidden")
	}
	if !o.Check("features", 0.1) {
		t.Error("at threshold should reveal")
	}
	if o.Class("features") != ClassVisible {
		t.Errorf("Class = %q, want %q", o.Class("features"), ClassVisible)
	}
	if o.Observing("features") {
		t.Error("revealed element should be unobserved")
	}

	// Scrolling away and back changes nothing.
	o.Check("features", 0)
	o.Check("features", 1)
	o.Observe("features")
	if o.Observing("features") {
		t.Error("revealed element should not be observed again")
	}
	if len(revealed) != 1 {
		t.Errorf("reveal callbacks = %v, want one", revealed)
	}
	if !o.Visible("features") {
		t.Error("reveal should be permanent")
	}
}

func TestRevealUnobserved(t *testing.T) {
	o := NewRevealObserver()
	if o.Check("pricing", 1) {
		t.Error("unobserved element should not reveal")
	}
}
