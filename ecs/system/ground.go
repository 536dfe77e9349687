package system

import (
	"log"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// GroundSystem counts contact notifications per ground detector and ticks
// the coyote window. It runs before respawn, so the stops caused by a reset
// all land in the next pass; whatever stale count survives that pass is
// dropped.
type GroundSystem struct{}

func NewGroundSystem() *GroundSystem {
	return &GroundSystem{}
}

func (s *GroundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Collisions() {
		for _, e := range [2]ecs.Entity{evt.A, evt.B} {
			detector, ok := ecs.Get(w, e, component.GroundDetectorComponent.Kind())
			if !ok {
				continue
			}
			switch evt.Kind {
			case ecs.CollisionStarted:
				detector.Begin()
			case ecs.CollisionStopped:
				if !detector.End() {
					log.Printf("GroundSystem: detector %v got a stop without a start, clamped at zero", e)
				}
			}
		}
	}

	dt := w.Delta()
	ecs.ForEach(w, component.GroundDetectorComponent.Kind(), func(_ ecs.Entity, detector *component.GroundDetector) {
		detector.ForgetStale()
		detector.Coyote.Tick(dt)
	})
}
