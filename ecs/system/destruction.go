package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// DestructionSystem despawns entities whose destruction timer has run out.
type DestructionSystem struct{}

func NewDestructionSystem() *DestructionSystem {
	return &DestructionSystem{}
}

func (s *DestructionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.DestructionTimerComponent.Kind(), func(e ecs.Entity, d *component.DestructionTimer) {
		d.Timer.Tick(w.Delta())
		if d.Timer.Finished() {
			Despawn(w, e)
		}
	})
}
