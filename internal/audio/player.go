package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brickfall/internal/config"
)

// MaxVoices caps simultaneous blips so a burst of contacts stays readable.
const MaxVoices = 4

// Collision pitches, cycled per contact.
var pitches = []float64{523.25, 659.25, 783.99}

// Player consumes per-tick collision counts and mixes a blip per contact.
type Player struct {
	mu      sync.Mutex
	lock    sync.Locker // guards the mixer against the output goroutine
	mixer   *beep.Mixer
	synth   *Synth
	enabled bool
	next    int
	played  int
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// NewPlayer creates a player from the audio config.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		lock:    noLock{},
		mixer:   &beep.Mixer{},
		synth:   NewSynth(SampleRate, cfg.Volume),
		enabled: cfg.Enabled && cfg.Volume > 0,
	}
}

// SetLocker installs the lock shared with the device that drains the mixer.
func (p *Player) SetLocker(l sync.Locker) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock = l
}

// Streamer returns the mix to hand to an output device.
func (p *Player) Streamer() beep.Streamer {
	return p.mixer
}

// SetEnabled mutes or unmutes the player.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
	if !on {
		p.lock.Lock()
		p.mixer.Clear()
		p.lock.Unlock()
	}
}

// OnCollisions queues one blip per collision, up to MaxVoices playing at once.
// Returns the number of blips queued.
func (p *Player) OnCollisions(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || n <= 0 {
		return 0
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	queued := 0
	for range n {
		if p.mixer.Len() >= MaxVoices {
			break
		}
		s, err := p.synth.Blip(pitches[p.next%len(pitches)])
		if err != nil {
			break
		}
		p.next++
		p.mixer.Add(s)
		queued++
	}
	p.played += queued
	return queued
}

// Active returns the number of blips still in the mix.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Len()
}

// Played returns the total number of blips queued so far.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}
