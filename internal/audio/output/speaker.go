// Package output plays an audio.Player mix on the default sound device.
package output

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brickfall/internal/audio"
)

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Start opens the speaker and begins draining the player's mix.
func Start(p *audio.Player) error {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}
	p.SetLocker(speakerLock{})
	speaker.Play(p.Streamer())
	return nil
}

// Stop silences and closes the speaker.
func Stop() {
	speaker.Clear()
	speaker.Close()
}
