// Package audio turns game sound events into short synthesized effects
// played through github.com/gopxl/beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/colorbang/internal/core"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency slides linearly from one pitch to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	noise    *rand.Rand
}

// NewSweep returns a streamer of exactly rate.N(d) samples.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		noise: rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			val = s.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a streamer out linearly after a short attack.
type decay struct {
	streamer beep.Streamer
	attack   int
	total    int
	position int
}

// NewDecay shapes s with a linear attack and a linear fade to silence at d.
func NewDecay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1 - float64(e.position)/float64(e.total)
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// gain scales a streamer by a linear factor. Zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect durations.
const (
	BlipDuration      = 60 * time.Millisecond
	FireDuration      = 90 * time.Millisecond
	ExplodeDuration   = 300 * time.Millisecond
	SuperBangDuration = 450 * time.Millisecond
)

// Effect builds the streamer for a sound event, or nil for an unknown one.
func Effect(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundBlip:
		return NewDecay(NewSweep(880, 660, BlipDuration, WaveSine, rate), BlipDuration, 2*time.Millisecond, rate)
	case core.SoundFire:
		return gain(NewDecay(NewSweep(520, 180, FireDuration, WaveSquare, rate), FireDuration, time.Millisecond, rate), 0.4)
	case core.SoundExplode:
		return NewDecay(NewSweep(0, 0, ExplodeDuration, WaveNoise, rate), ExplodeDuration, 5*time.Millisecond, rate)
	case core.SoundSuperBang:
		body := NewDecay(NewSweep(110, 40, SuperBangDuration, WaveSaw, rate), SuperBangDuration, 10*time.Millisecond, rate)
		hiss := NewDecay(NewSweep(0, 0, SuperBangDuration, WaveNoise, rate), SuperBangDuration, 10*time.Millisecond, rate)
		return beep.Mix(gain(body, 0.6), gain(hiss, 0.4))
	default:
		return nil
	}
}
