package core

const (
	// ChargePerFrame is how many super-bang bullets one frame of charging adds.
	ChargePerFrame = 10
	// MinSuperBang is the size of a super bang released with nothing accumulated.
	MinSuperBang = 10
)

// ChargeState tracks banked charges and the bullets accumulated by the
// current hold.
type ChargeState struct {
	Banked      uint32
	Charging    bool
	Accumulator uint32
}

// Bank adds n charges.
func (s *ChargeState) Bank(n uint32) {
	s.Banked += n
}

// StepCharge advances the charge machine by one frame. While held, each
// frame converts one banked charge into ChargePerFrame bullets. On the first
// frame after a hold ends it reports a release of at least MinSuperBang
// bullets and resets the accumulator.
func StepCharge(s *ChargeState, held bool) (bullets uint32, released bool) {
	if held {
		s.Charging = true
		if s.Banked > 0 {
			s.Banked--
			s.Accumulator += ChargePerFrame
		}
		return 0, false
	}
	if !s.Charging {
		return 0, false
	}
	bullets = max(s.Accumulator, MinSuperBang)
	s.Accumulator = 0
	s.Charging = false
	return bullets, true
}
