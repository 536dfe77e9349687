package system

import (
	"math"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// BlockSettleSystem makes a pushed block pushable again once it has come to
// rest.
type BlockSettleSystem struct {
	Threshold float64
}

func NewBlockSettleSystem(threshold float64) *BlockSettleSystem {
	return &BlockSettleSystem{Threshold: threshold}
}

func (s *BlockSettleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.MovableComponent.Kind(), component.VelocityComponent.Kind(), component.CollisionLayerComponent.Kind(),
		func(_ ecs.Entity, _ *component.Movable, v *component.Velocity, layer *component.CollisionLayer) {
			if layer.HasMask(component.LayerWind) {
				return
			}
			if math.Hypot(v.X, v.Y) < s.Threshold {
				layer.Mask |= component.LayerWind
			}
		})
}
