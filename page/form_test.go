package page

import (
	"testing"
	"time"
)

func TestOrderFormSubmit(t *testing.T) {
	f := NewOrderForm(true)
	f.Set("name", "Koi Farm")
	f.Set("email", "koi@example.com")
	if f.MessageClass() != ClassHidden {
		t.Fatal("message should start hidden")
	}

	f.Submit()
	if f.Value("name") != "" || f.Value("email") != "" {
		t.Error("fields should be cleared")
	}
	if !f.MessageVisible() || f.MessageClass() != "" {
		t.Error("message should be shown")
	}
	if f.Submissions() != 1 {
		t.Errorf("Submissions = %d, want 1", f.Submissions())
	}

	f.Update(4 * time.Second)
	if !f.MessageVisible() {
		t.Error("message hidden too early")
	}
	f.Update(time.Second)
	if f.MessageVisible() || f.MessageClass() != ClassHidden {
		t.Error("message should hide after SuccessDisplayTime")
	}
}

func TestOrderFormResubmitRestartsTimer(t *testing.T) {
	f := NewOrderForm(true)
	f.Submit()
	f.Update(3 * time.Second)
	f.Submit()
	f.Update(3 * time.Second)
	if !f.MessageVisible() {
		t.Error("second submit should restart the timer")
	}
	f.Update(2 * time.Second)
	if f.MessageVisible() {
		t.Error("message should hide 5s after the last submit")
	}
}

func TestOrderFormWithoutMessage(t *testing.T) {
	f := NewOrderForm(false)
	f.Set("name", "x")
	f.Submit()
	if f.Value("name") != "" {
		t.Error("fields should be cleared")
	}
	if f.MessageVisible() {
		t.Error("no message element means nothing to show")
	}
	f.Update(time.Minute)
}
