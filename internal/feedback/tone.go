// Package feedback plays short tones when an edge sticks or recedes.
package feedback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// sine generates a fixed-length sine wave.
type sine struct {
	freq     float64
	phase    float64
	length   int
	position int
	rate     beep.SampleRate
}

func newSine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, length: rate.N(d), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// fade applies a linear attack and release to the wrapped stream.
type fade struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.position < f.attack && f.attack > 0 {
			vol = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; left < f.release && f.release > 0 {
			vol = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func note(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return newFade(newSine(freq, d, rate), d, 5*time.Millisecond, d/2, rate)
}

// Chime is the two-note rising tone played when an accessory sticks.
func Chime(rate beep.SampleRate, vol float64) beep.Streamer {
	return volume(beep.Seq(
		note(659.25, 70*time.Millisecond, rate),
		note(987.77, 120*time.Millisecond, rate),
	), vol)
}

// Tick is the short click played when an accessory recedes.
func Tick(rate beep.SampleRate, vol float64) beep.Streamer {
	return volume(note(440, 25*time.Millisecond, rate), vol)
}
