package core

import (
	"reflect"
	"testing"
)

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionJump)
	f.Set(ActionLeft)
	f.Set(ActionRight) // repeat ignored
	f.Set(ActionNone)  // never recorded

	want := []Action{ActionRight, ActionJump, ActionLeft}
	if got := f.Actions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Actions() = %v, expected %v", got, want)
	}
	if !f.Has(ActionJump) || f.Has(ActionPause) || f.Has(ActionNone) {
		t.Error("Has reports wrong membership")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() || f.Has(ActionJump) {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionJump) {
		t.Error("clone should be independent of the original")
	}

	f.Set(ActionLeft)
	if got := f.Actions(); len(got) != 1 || got[0] != ActionLeft {
		t.Errorf("after reuse, Actions() = %v", got)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || !f.Empty() {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("zero frame should accept actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
