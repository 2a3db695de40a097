package core

// Sound is a discrete sound event emitted by the simulation.
type Sound uint8

const (
	SoundBlip Sound = iota
	SoundFire
	SoundExplode
	SoundSuperBang
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundBlip:
		return "blip"
	case SoundFire:
		return "fire"
	case SoundExplode:
		return "explode"
	case SoundSuperBang:
		return "super-bang"
	default:
		return "unknown"
	}
}

// SoundPlayer triggers playback of sound events.
// Play must not block the frame.
type SoundPlayer interface {
	Play(s Sound)
}

// SilentPlayer discards every sound.
type SilentPlayer struct{}

// Play implements SoundPlayer.
func (SilentPlayer) Play(Sound) {}
