package core

import "testing"

func TestStepChargeHoldAndRelease(t *testing.T) {
	var s ChargeState
	s.Bank(40)

	for i := 0; i < 3; i++ {
		if n, released := StepCharge(&s, true); released || n != 0 {
			t.Fatalf("frame %d: unexpected release of %d", i, n)
		}
	}
	if s.Accumulator != 30 || s.Banked != 37 || !s.Charging {
		t.Fatalf("after 3 frames: %+v", s)
	}

	n, released := StepCharge(&s, false)
	if !released || n != 30 {
		t.Fatalf("expected release of 30, got %d (released=%v)", n, released)
	}
	if s.Accumulator != 0 || s.Charging {
		t.Errorf("state not reset after release: %+v", s)
	}

	if n, released := StepCharge(&s, false); released || n != 0 {
		t.Errorf("idle frame released %d", n)
	}
}

func TestStepChargeFloor(t *testing.T) {
	var s ChargeState
	StepCharge(&s, true)
	if s.Accumulator != 0 {
		t.Fatalf("charging with nothing banked should not accumulate, got %d", s.Accumulator)
	}
	n, released := StepCharge(&s, false)
	if !released || n != MinSuperBang {
		t.Errorf("expected floor release of %d, got %d", MinSuperBang, n)
	}
}

func TestStepChargeRunsDry(t *testing.T) {
	var s ChargeState
	s.Bank(2)
	for i := 0; i < 5; i++ {
		StepCharge(&s, true)
	}
	if s.Banked != 0 || s.Accumulator != 20 {
		t.Errorf("expected banked 0 accumulator 20, got %+v", s)
	}
}
