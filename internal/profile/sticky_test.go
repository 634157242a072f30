package profile

import "testing"

func TestStickyState(t *testing.T) {
	var transitions []bool
	s := NewStickyState(func(stuck bool) {
		transitions = append(transitions, stuck)
	})

	if s.Stuck() {
		t.Fatal("expected initial state to be unstuck")
	}

	s.OnStick()
	s.OnStick()
	if !s.Stuck() {
		t.Error("expected stuck after OnStick")
	}

	s.OnUnstick()
	if s.Stuck() {
		t.Error("expected unstuck after OnUnstick")
	}

	if len(transitions) != 2 || transitions[0] != true || transitions[1] != false {
		t.Errorf("expected transitions [true false], got %v", transitions)
	}
}

func TestStickyState_Update(t *testing.T) {
	s := NewStickyState(nil)

	s.Update(10, 40)
	if s.Stuck() {
		t.Error("expected unstuck below threshold")
	}

	s.Update(41, 40)
	if !s.Stuck() {
		t.Error("expected stuck past threshold")
	}

	s.Update(0, 40)
	if s.Stuck() {
		t.Error("expected unstuck after scrolling back to top")
	}
}
