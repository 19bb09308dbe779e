package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeftUp) {
		t.Error("fresh frame reports a held action")
	}

	f.Set(ActionLeftUp)
	f.Set(ActionReset)
	if !f.Has(ActionLeftUp) || !f.Has(ActionReset) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionLeftDown) {
		t.Error("unset action reported as held")
	}

	f.LeftDrag = Drag{Active: true, DeltaY: 12}
	f.Clear()
	if f.Has(ActionLeftUp) || f.Has(ActionReset) {
		t.Error("Clear left actions held")
	}
	if f.LeftDrag.Active || f.LeftDrag.DeltaY != 0 {
		t.Error("Clear left drag state behind")
	}
}

func TestInputFrameZeroValueSafe(t *testing.T) {
	// A zero-value frame (nil map) must not panic on any operation.
	var f InputFrame
	if f.Has(ActionLeftUp) {
		t.Error("zero frame reports a held action")
	}
	f.Set(ActionLeftUp)
	if !f.Has(ActionLeftUp) {
		t.Error("Set on zero frame did not stick")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeftDown)
	f.RightDrag = Drag{Active: true, DeltaY: -3}

	c := f.Clone()
	if !c.Has(ActionLeftDown) || c.RightDrag != f.RightDrag {
		t.Error("clone missing state")
	}

	// The clone must be independent.
	c.Set(ActionReset)
	if f.Has(ActionReset) {
		t.Error("mutating the clone changed the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeftUp.String() != "LeftUp" {
		t.Errorf("ActionLeftUp = %q", ActionLeftUp.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action = %q", Action(999).String())
	}
}

func TestNewRandDeterminism(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed diverged on Float64")
		}
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed diverged on Intn")
		}
	}
}
