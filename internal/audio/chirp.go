package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const chirpGain = 0.2

// chirp is a sine streamer that sweeps linearly between two frequencies
// over its nominal duration, with a short attack and a fade-out so cues
// never click. The streamer itself is endless; wrap it in beep.Take.
type chirp struct {
	fromHz, toHz float64
	total        int // samples in the nominal duration
	pos          int
	phase        float64
}

func newChirp(fromHz, toHz float64, dur time.Duration) *chirp {
	return &chirp{
		fromHz: fromHz,
		toHz:   toHz,
		total:  sampleRate.N(dur),
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		k := float64(c.pos) / float64(c.total)
		if k > 1 {
			k = 1
		}
		freq := c.fromHz + (c.toHz-c.fromHz)*k

		// Accumulate phase so the sweep stays continuous.
		c.phase += freq / float64(sampleRate)
		if c.phase >= 1 {
			c.phase -= 1
		}

		v := chirpGain * envelope(k) * math.Sin(2*math.Pi*c.phase)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// envelope shapes one cue: 10% attack ramp, steady middle, 40% fade-out.
func envelope(k float64) float64 {
	switch {
	case k < 0.1:
		return k / 0.1
	case k > 0.6:
		return (1 - k) / 0.4
	default:
		return 1
	}
}

var _ beep.Streamer = (*chirp)(nil)
