package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// soundBank plays short feedback tones through the speaker mixer. A nil
// *soundBank is valid and silent, so callers never branch on audio
// availability.
type soundBank struct {
	sr beep.SampleRate
}

func newSoundBank() (*soundBank, error) {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &soundBank{sr: sr}, nil
}

func (s *soundBank) tone(freq int, d time.Duration) {
	if s == nil {
		return
	}
	t, err := generators.SinTone(s.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.sr.N(d), t))
}

// click acknowledges a selection.
func (s *soundBank) click() { s.tone(880, 60*time.Millisecond) }

// reject accompanies the no-selection validation error.
func (s *soundBank) reject() { s.tone(196, 180*time.Millisecond) }
