package page

import "time"

// SuccessDisplayTime is how long the order confirmation stays visible.
const SuccessDisplayTime = 5 * time.Second

// OrderForm intercepts submission of the order form: nothing is sent
// anywhere, the fields are cleared and a confirmation is shown briefly.
type OrderForm struct {
	fields      map[string]string
	hasMessage  bool
	showing     bool
	remaining   time.Duration
	submissions int
}

// NewOrderForm creates a form. withMessage is false when the page has no
// success message element; submission still resets the fields.
func NewOrderForm(withMessage bool) *OrderForm {
	return &OrderForm{
		fields:     make(map[string]string),
		hasMessage: withMessage,
	}
}

// Set fills a field.
func (f *OrderForm) Set(name, value string) {
	f.fields[name] = value
}

// Value returns a field's current value.
func (f *OrderForm) Value(name string) string {
	return f.fields[name]
}

// Submit handles the submit event. The success message is shown, the fields
// are reset and the message is scheduled to hide after SuccessDisplayTime.
func (f *OrderForm) Submit() {
	f.submissions++
	clear(f.fields)
	if !f.hasMessage {
		return
	}
	f.showing = true
	f.remaining = SuccessDisplayTime
}

// Update advances the hide timer by dt.
func (f *OrderForm) Update(dt time.Duration) {
	if !f.showing {
		return
	}
	f.remaining -= dt
	if f.remaining <= 0 {
		f.showing = false
		f.remaining = 0
	}
}

// MessageVisible reports whether the success message is shown.
func (f *OrderForm) MessageVisible() bool {
	return f.showing
}

// MessageClass returns the class list for the success message element.
func (f *OrderForm) MessageClass() string {
	if f.showing {
		return ""
	}
	return ClassHidden
}

// Submissions returns the number of intercepted submissions.
func (f *OrderForm) Submissions() int {
	return f.submissions
}
