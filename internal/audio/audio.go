// Package audio plays short procedural sound effects for player feedback.
package audio

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundStep Sound = iota
	SoundBump
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundStep:
		return "step"
	case SoundBump:
		return "bump"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// Player is anything that can play a sound effect.
type Player interface {
	Play(Sound)
}

// System owns the oto context and the players still sounding. It is driven
// from the game loop: Play starts a sound, Reap releases finished ones.
type System struct {
	ctx     *oto.Context
	ready   chan struct{}
	volume  float64
	samples [soundCount][]byte
	playing []oto.Player
	logger  *log.Logger
}

// New opens the audio device. Samples are synthesised once up front.
func New(volume float64, logger *log.Logger) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	s := &System{
		ctx:    ctx,
		ready:  ready,
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
	for k := Sound(0); k < soundCount; k++ {
		s.samples[k] = generate(k)
	}
	return s, nil
}

// Play starts kind. It is a no-op until the device is ready.
func (s *System) Play(kind Sound) {
	if s == nil || kind < 0 || kind >= soundCount {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	p := s.ctx.NewPlayer(bytes.NewReader(s.samples[kind]))
	p.SetVolume(s.volume)
	p.Play()
	s.playing = append(s.playing, p)
	s.logger.Debug("sound", "kind", kind)
}

// Reap closes players that have finished.
func (s *System) Reap() {
	if s == nil {
		return
	}
	live := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			s.logger.Debug("close player", "error", err)
		}
	}
	clear(s.playing[len(live):])
	s.playing = live
}

// Close stops and releases every player.
func (s *System) Close() {
	if s == nil {
		return
	}
	for _, p := range s.playing {
		p.Close()
	}
	s.playing = nil
}
