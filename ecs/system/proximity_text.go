package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// ProximityTextSystem shows a sign's or trophy's text while the player
// overlaps it. Touching a trophy raises EventTrophyReached.
type ProximityTextSystem struct {
	sounds SoundPlayer
}

func NewProximityTextSystem(sounds SoundPlayer) *ProximityTextSystem {
	return &ProximityTextSystem{sounds: soundOrNop(sounds)}
}

func (s *ProximityTextSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Collisions() {
		s.touch(w, evt.Kind, evt.A, evt.B)
		s.touch(w, evt.Kind, evt.B, evt.A)
	}
}

func (s *ProximityTextSystem) touch(w *ecs.World, kind ecs.CollisionEventKind, playerEntity, textEntity ecs.Entity) {
	if !ecs.Has(w, playerEntity, component.PlayerComponent.Kind()) {
		return
	}
	text, ok := ecs.Get(w, textEntity, component.ProximityTextComponent.Kind())
	if !ok {
		return
	}
	text.Visible = kind == ecs.CollisionStarted
	if text.Visible && ecs.Has(w, textEntity, component.TrophyComponent.Kind()) {
		s.sounds.Play(SoundPing)
		w.Events().Push(ecs.Event{Type: ecs.EventTrophyReached})
	}
}
