package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// PatrolSystem walks enemies back and forth along their segment. An enemy
// turns around when it leaves the segment or has been stopped by something.
type PatrolSystem struct{}

func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

func (s *PatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.PatrolComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Patrol, v *component.Velocity, t *component.Transform) {
			if ecs.Has(w, e, component.DestructionTimerComponent.Kind()) {
				return
			}
			state, hasState := ecs.Get(w, e, component.AnimationStateComponent.Kind())
			if !p.HasPoints {
				v.X = 0
				if hasState {
					state.Set(component.StateIdle)
				}
				return
			}

			switch {
			case t.X < p.MinX:
				p.FaceLeft = false
			case t.X > p.MaxX:
				p.FaceLeft = true
			case v.X == 0:
				p.FaceLeft = !p.FaceLeft
			}
			if p.FaceLeft {
				v.X = -p.Speed
			} else {
				v.X = p.Speed
			}
			if hasState {
				state.Set(component.StateWalking)
			}
		})
}
