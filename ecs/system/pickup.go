package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// PickupSystem hands ability orbs to the player that touches them. Each
// collected orb raises EventOrbCollected with the orb ID.
type PickupSystem struct {
	sounds SoundPlayer
}

func NewPickupSystem(sounds SoundPlayer) *PickupSystem {
	return &PickupSystem{sounds: soundOrNop(sounds)}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Collisions() {
		if evt.Kind != ecs.CollisionStarted {
			continue
		}
		s.collect(w, evt.A, evt.B)
		s.collect(w, evt.B, evt.A)
	}
}

func (s *PickupSystem) collect(w *ecs.World, playerEntity, orbEntity ecs.Entity) {
	player, ok := ecs.Get(w, playerEntity, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	orb, ok := ecs.Get(w, orbEntity, component.AbilityOrbComponent.Kind())
	if !ok {
		return
	}
	player.Unlock(orb.Unlock)
	s.sounds.Play(SoundCollect)
	w.Events().Push(ecs.Event{Type: ecs.EventOrbCollected, Data: orb.ID})
	Despawn(w, orbEntity)
}
