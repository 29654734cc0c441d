// Package audio plays the squash cue through the system speaker. Every
// cue is fire-and-forget: a machine without audio leaves the game silent
// but fully playable.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper mixes short synthesized cues into a single speaker stream. It
// satisfies the game's sound port; a Beeper that was never enabled (or
// failed to enable) swallows cues silently.
type Beeper struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	log   *log.Logger
	ready bool
}

// NewBeeper creates a silent Beeper. Call Enable to open the speaker.
func NewBeeper(logger *log.Logger) *Beeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Beeper{
		mixer: &beep.Mixer{},
		log:   logger,
	}
}

// Enable opens the system speaker and starts the mixer. Safe to call
// more than once.
func (b *Beeper) Enable() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(b.mixer)
	b.ready = true
	b.log.Debug("speaker enabled", "sample_rate", sampleRate)
	return nil
}

// Close silences the speaker. The Beeper can be re-enabled afterwards.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return
	}
	speaker.Clear()
	b.ready = false
}

// PointScored plays a short rising chirp, one per squashed bug. Cues for
// near-simultaneous squashes overlap in the mixer.
func (b *Beeper) PointScored() {
	b.playTone(880, 1320, 60*time.Millisecond)
}

// SessionStarted plays the start jingle.
func (b *Beeper) SessionStarted() {
	b.playTone(440, 880, 120*time.Millisecond)
}

func (b *Beeper) playTone(fromHz, toHz float64, dur time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return
	}
	shot := beep.Take(sampleRate.N(dur), newChirp(fromHz, toHz, dur))
	speaker.Lock()
	b.mixer.Add(shot)
	speaker.Unlock()
}
