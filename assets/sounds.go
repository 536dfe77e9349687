package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sounds plays embedded clips by name. Players are created on first use and
// a clip that cannot be loaded is reported once and then ignored.
type Sounds struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	missing map[string]bool
	volume  float64
	muted   bool
}

// NewSounds uses the running audio context or creates one.
func NewSounds(volume float64) *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Sounds{
		ctx:     ctx,
		players: make(map[string]*audio.Player),
		missing: make(map[string]bool),
		volume:  volume,
	}
}

// Play restarts clip from the beginning.
func (s *Sounds) Play(clip string) {
	if s == nil || s.muted {
		return
	}
	p := s.player(clip, false)
	if p == nil {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("Sounds: rewind %s: %v", clip, err)
		return
	}
	p.Play()
}

// Loop plays clip forever, e.g. background music. It is a no-op while the
// clip is already playing.
func (s *Sounds) Loop(clip string) {
	if s == nil || s.muted {
		return
	}
	p := s.player(clip, true)
	if p == nil || p.IsPlaying() {
		return
	}
	p.Play()
}

// SetMuted pauses every clip when muted.
func (s *Sounds) SetMuted(muted bool) {
	if s == nil {
		return
	}
	s.muted = muted
	if !muted {
		return
	}
	for _, p := range s.players {
		p.Pause()
	}
}

func (s *Sounds) player(clip string, loop bool) *audio.Player {
	if p, ok := s.players[clip]; ok {
		return p
	}
	if s.missing[clip] {
		return nil
	}

	stream, err := decodeClip(s.ctx, clip)
	var p *audio.Player
	if err == nil {
		if loop {
			p, err = s.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
		} else {
			p, err = s.ctx.NewPlayer(stream)
		}
	}
	if err != nil {
		log.Printf("Sounds: missing clip %s: %v", clip, err)
		s.missing[clip] = true
		return nil
	}
	p.SetVolume(s.volume)
	s.players[clip] = p
	return p
}
