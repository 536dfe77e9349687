package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// ForceAreaSystem sets a player's acceleration while they overlap an air
// current and clears it when they leave.
type ForceAreaSystem struct{}

func NewForceAreaSystem() *ForceAreaSystem {
	return &ForceAreaSystem{}
}

func (s *ForceAreaSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Collisions() {
		applyForce(w, evt.Kind, evt.A, evt.B)
		applyForce(w, evt.Kind, evt.B, evt.A)
	}
}

func applyForce(w *ecs.World, kind ecs.CollisionEventKind, playerEntity, areaEntity ecs.Entity) {
	if !ecs.Has(w, playerEntity, component.PlayerComponent.Kind()) {
		return
	}
	area, ok := ecs.Get(w, areaEntity, component.ForceAreaComponent.Kind())
	if !ok {
		return
	}
	accel, ok := ecs.Get(w, playerEntity, component.AccelerationComponent.Kind())
	if !ok {
		return
	}
	switch kind {
	case ecs.CollisionStarted:
		accel.X = area.DirX * area.Strength
		accel.Y = area.DirY * area.Strength
	case ecs.CollisionStopped:
		accel.X, accel.Y = 0, 0
	}
}
