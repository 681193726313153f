package audio

import (
	"sync"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brickfall/internal/config"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestBlipIsFinite(t *testing.T) {
	s, err := NewSynth(SampleRate, 1).Blip(440)
	if err != nil {
		t.Fatalf("Blip() error = %v", err)
	}
	got := drain(s)
	want := SampleRate.N(BlipDuration)
	if got != want {
		t.Errorf("Blip() streamed %d samples, expected %d", got, want)
	}
}

func TestBlipEnvelopeBounds(t *testing.T) {
	s, _ := NewSynth(SampleRate, 1).Blip(440)
	buf := make([][2]float64, SampleRate.N(BlipDuration))
	n, _ := s.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at the start of the attack", buf[0][0])
	}
	for i := range n {
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("sample %d = %v out of range", i, buf[i][0])
		}
	}
}

func TestBlipInvalidFrequency(t *testing.T) {
	// Frequencies at or above half the sample rate cannot be represented
	if _, err := NewSynth(SampleRate, 1).Blip(float64(SampleRate)); err == nil {
		t.Error("Blip() at the sample rate should fail")
	}
}

func TestPlayerOnCollisions(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: true, Volume: 0.5})

	if got := p.OnCollisions(0); got != 0 {
		t.Errorf("OnCollisions(0) = %d, expected 0", got)
	}
	if got := p.OnCollisions(2); got != 2 {
		t.Errorf("OnCollisions(2) = %d, expected 2", got)
	}
	if got := p.OnCollisions(10); got != MaxVoices-2 {
		t.Errorf("OnCollisions(10) = %d, expected %d", got, MaxVoices-2)
	}
	if p.Active() != MaxVoices {
		t.Errorf("Active() = %d, expected %d", p.Active(), MaxVoices)
	}

	// Draining the mix frees the voices
	drainMixer(p)
	if p.Active() != 0 {
		t.Errorf("Active() after drain = %d, expected 0", p.Active())
	}
	if p.Played() != MaxVoices {
		t.Errorf("Played() = %d, expected %d", p.Played(), MaxVoices)
	}
}

func drainMixer(p *Player) {
	buf := make([][2]float64, SampleRate.N(BlipDuration)+16)
	p.Streamer().Stream(buf)
	p.Streamer().Stream(buf)
}

func TestPlayerDisabled(t *testing.T) {
	muted := NewPlayer(config.AudioConfig{Enabled: false, Volume: 1})
	if got := muted.OnCollisions(3); got != 0 {
		t.Errorf("disabled OnCollisions(3) = %d, expected 0", got)
	}

	silent := NewPlayer(config.AudioConfig{Enabled: true, Volume: 0})
	if got := silent.OnCollisions(3); got != 0 {
		t.Errorf("zero-volume OnCollisions(3) = %d, expected 0", got)
	}

	p := NewPlayer(config.AudioConfig{Enabled: true, Volume: 1})
	p.OnCollisions(2)
	p.SetEnabled(false)
	if p.Active() != 0 {
		t.Errorf("Active() after mute = %d, expected 0", p.Active())
	}
}

func TestPlayerSetLockerWhileActive(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: true, Volume: 1})
	p.OnCollisions(1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			p.Active()
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			p.SetLocker(&sync.Mutex{})
		}
	}()
	wg.Wait()

	if p.Active() != 1 {
		t.Errorf("Active() = %d, expected 1", p.Active())
	}
}
