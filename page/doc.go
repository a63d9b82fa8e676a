// Package page holds the small interactive pieces of the marketing page that
// surrounds the pond animation: the mobile menu, scroll-reveal sections,
// smooth anchor navigation and the order form acknowledgment.
//
// Everything here is host-agnostic state. A host forwards clicks, scroll
// positions and elapsed time, and reads back class names and positions.
package page

// Class names toggled on page elements.
const (
	ClassActive  = "active"
	ClassVisible = "visible"
	ClassHidden  = "hidden"
)
