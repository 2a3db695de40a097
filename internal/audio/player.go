package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/colorbang/internal/core"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Player plays sound events on the default audio device. Until Init
// succeeds every Play call is dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

var _ core.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player at the given linear volume (1 is unity).
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the effect for s. It never blocks on the device.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Effect(s, SampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(gain(st, p.volume))
	speaker.Unlock()
}

// Close silences everything that is still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Open returns an initialized player, or a silent one when no audio device
// is available.
func Open(volume float64) core.SoundPlayer {
	if volume <= 0 {
		return core.SilentPlayer{}
	}
	p := NewPlayer(volume)
	if err := p.Init(); err != nil {
		log.Warn("sound disabled", "err", err)
		return core.SilentPlayer{}
	}
	return p
}
