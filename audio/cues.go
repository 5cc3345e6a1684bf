// @focus: #audio { cues }
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBuffer = 50 * time.Millisecond
	clickDuration = 30 * time.Millisecond
	buzzDuration  = 150 * time.Millisecond
	focusDuration = 60 * time.Millisecond
)

// CuePlayer plays short interface feedback sounds
// Cues are dropped until Initialize succeeds and while muted
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCuePlayer creates an uninitialized player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops queued cues; the device stays open as beep has no speaker close
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Available reports whether cues reach a device
func (p *CuePlayer) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetMuted silences or restores cues
func (p *CuePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// ToggleMute flips the mute state and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// PlayClick plays a short tick, used when a shortcut fires
func (p *CuePlayer) PlayClick() {
	p.play(beep.Take(sampleRate.N(clickDuration), NewToneGenerator(sampleRate, 1200, 0.15, clickDuration)))
}

// PlayBuzz plays a low buzz, used when input is dropped
func (p *CuePlayer) PlayBuzz() {
	p.play(beep.Take(sampleRate.N(buzzDuration), NewBuzzGenerator(sampleRate, 120)))
}

// PlayFocus plays a soft blip when focus moves
func (p *CuePlayer) PlayFocus() {
	p.play(beep.Take(sampleRate.N(focusDuration), NewToneGenerator(sampleRate, 660, 0.1, focusDuration)))
}

func (p *CuePlayer) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// ToneGenerator generates a sine tone with a linear fade-out over its length
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	gain   float64
	length int
	pos    int
}

// NewToneGenerator creates a tone of freq Hz fading to silence over d
func NewToneGenerator(sr beep.SampleRate, freq, gain float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		gain:   gain,
		length: max(1, sr.N(d)),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Max(0, 1-float64(g.pos)/float64(g.length))
		sample := g.gain * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade-in
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
