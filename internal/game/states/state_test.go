package states

import (
	"testing"

	"github.com/Faultbox/cubewell/internal/engine/input"
)

type stubState struct {
	entered int
	exited  int
	updates int
	events  int
}

func (s *stubState) Enter() error                    { s.entered++; return nil }
func (s *stubState) Exit() error                     { s.exited++; return nil }
func (s *stubState) Update(dt float64) error         { s.updates++; return nil }
func (s *stubState) Render() error                   { return nil }
func (s *stubState) HandleInput(ev input.Event) error { s.events++; return nil }

func TestManagerTransition(t *testing.T) {
	m := NewManager()
	a := &stubState{}
	b := &stubState{}

	m.Change(a)
	if err := m.Update(0.016); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.entered != 1 {
		t.Errorf("expected state entered once, got %d", a.entered)
	}
	if m.Current() != a {
		t.Error("expected current state to be a")
	}

	m.Change(b)
	if err := m.Update(0.016); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.exited != 1 {
		t.Errorf("expected a exited once, got %d", a.exited)
	}
	if b.entered != 1 {
		t.Errorf("expected b entered once, got %d", b.entered)
	}
	if m.Current() != b {
		t.Error("expected current state to be b")
	}
}

func TestManagerForwardsInput(t *testing.T) {
	m := NewManager()
	a := &stubState{}
	m.Change(a)
	m.Update(0)

	m.HandleInput(input.Event{Type: input.EventKeyDown})
	if a.events != 1 {
		t.Errorf("expected one forwarded event, got %d", a.events)
	}
}

func TestManagerEmptyIsNoop(t *testing.T) {
	m := NewManager()
	if err := m.Update(0.016); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if m.Current() != nil {
		t.Error("expected no current state")
	}
}
