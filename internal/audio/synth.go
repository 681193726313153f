// Package audio turns collision events into short synthesized blips.
// It only builds and mixes streams; audio/output binds the mix to a device.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate used for every generated stream.
const SampleRate = beep.SampleRate(44100)

// Blip shape
const (
	BlipDuration = 60 * time.Millisecond
	BlipAttack   = 4 * time.Millisecond
	BlipRelease  = 40 * time.Millisecond
)

// Synth builds collision blips at a fixed output volume.
type Synth struct {
	rate   beep.SampleRate
	volume float64
}

// NewSynth creates a synth. Volume is linear in [0, 1].
func NewSynth(rate beep.SampleRate, volume float64) *Synth {
	return &Synth{rate: rate, volume: volume}
}

// Blip returns a finite tone of BlipDuration at freq Hz.
func (s *Synth) Blip(freq float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(s.rate, freq)
	if err != nil {
		return nil, err
	}
	shaped := newEnvelope(beep.Take(s.rate.N(BlipDuration), tone), BlipDuration, BlipAttack, BlipRelease, s.rate)
	return newVolume(shaped, s.volume), nil
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.totalSamples {
			return i, false
		}

		gain := 1.0
		if e.position < e.attackSamples {
			gain = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.attackSamples + e.sustainSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			gain = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
