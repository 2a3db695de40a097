package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/colorbang/internal/core"
)

// drain streams s to completion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > int(SampleRate)*5 {
			t.Fatal("stream never ended")
		}
	}
}

func TestEffectLengths(t *testing.T) {
	tests := []struct {
		sound core.Sound
		dur   time.Duration
	}{
		{core.SoundBlip, BlipDuration},
		{core.SoundFire, FireDuration},
		{core.SoundExplode, ExplodeDuration},
		{core.SoundSuperBang, SuperBangDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := Effect(tt.sound, SampleRate)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			if got, want := drain(t, s), SampleRate.N(tt.dur); got != want {
				t.Errorf("expected %d samples, got %d", want, got)
			}
		})
	}
}

func TestEffectUnknown(t *testing.T) {
	if Effect(core.Sound(200), SampleRate) != nil {
		t.Error("unknown sounds should have no effect")
	}
}

func TestSweepSquareValues(t *testing.T) {
	s := NewSweep(220, 220, 20*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	if !ok || n != 100 {
		t.Fatalf("expected 100 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
	if s.Err() != nil {
		t.Errorf("unexpected error %v", s.Err())
	}
}

func TestDecayFadesOut(t *testing.T) {
	d := 10 * time.Millisecond
	s := NewDecay(NewSweep(0, 0, d, WaveSquare, SampleRate), d, 0, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(buf)
	if n == 0 {
		t.Fatal("no samples")
	}
	if buf[0][0] != 1 {
		t.Errorf("first sample should be at full volume, got %f", buf[0][0])
	}
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample should be near silent, got %f", last)
	}
}

func TestPlayerDropsUntilInit(t *testing.T) {
	p := NewPlayer(1)
	p.Play(core.SoundBlip)
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("uninitialized player queued %d streamers", p.mixer.Len())
	}
}
