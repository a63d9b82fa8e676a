package page

// MobileMenu is the slide-in navigation shown on narrow screens.
type MobileMenu struct {
	active bool
}

// Toggle opens a closed menu or closes an open one. Both the menu button and
// the close button call this.
func (m *MobileMenu) Toggle() {
	m.active = !m.active
}

// LinkClicked closes the menu after a navigation link is chosen.
func (m *MobileMenu) LinkClicked() {
	m.active = false
}

// Active reports whether the menu is open.
func (m *MobileMenu) Active() bool {
	return m.active
}

// Class returns the class list for the menu element.
func (m *MobileMenu) Class() string {
	if m.active {
		return ClassActive
	}
	return ""
}
