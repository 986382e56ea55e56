package bell

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sine generates a fixed-length sine wave
type sine struct {
	freq     float64
	phase    float64
	length   int
	position int
	rate     beep.SampleRate
}

func newSine(freq float64, d time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, length: rate.N(d), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope ramps a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone builds the bell streamer for cfg.
// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func tone(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	shaped := newEnvelope(newSine(cfg.Frequency, cfg.Duration, rate), cfg.Duration, cfg.Attack, cfg.Release, rate)

	if cfg.Volume <= 0 {
		return &effects.Volume{Streamer: shaped, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(cfg.Volume)}
}
