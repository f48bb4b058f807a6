// Package audio plays short cue tones for the terminal viewer.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cues mixes one-shot tones into a single speaker stream. A Cues that was
// never initialised, or whose speaker failed to open, stays silent.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues returns a silent cue player.
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close drops any queued tones.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Generated plays a rising two-note chirp.
func (c *Cues) Generated() {
	c.play(beep.Seq(
		beep.Take(sampleRate.N(70*time.Millisecond), NewTone(sampleRate, 660)),
		beep.Take(sampleRate.N(90*time.Millisecond), NewTone(sampleRate, 880)),
	))
}

// Failed plays a low buzz.
func (c *Cues) Failed() {
	c.play(beep.Take(sampleRate.N(180*time.Millisecond), NewTone(sampleRate, 140)))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Tone is a sine wave with a short attack so cues do not click.
type Tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewTone returns an endless tone at freq Hz.
func NewTone(sr beep.SampleRate, freq float64) *Tone {
	return &Tone{sr: sr, freq: freq}
}

// Stream fills samples with the next stretch of the tone. It never drains.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		at := float64(t.pos) / float64(t.sr)
		attack := math.Min(at/0.01, 1)
		v := 0.2 * attack * math.Sin(2*math.Pi*t.freq*at)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil; a generated tone cannot fail.
func (t *Tone) Err() error { return nil }
