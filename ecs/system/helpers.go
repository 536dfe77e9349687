package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// groundDetectorOf returns the ground detector child of e, if any.
func groundDetectorOf(w *ecs.World, e ecs.Entity) (*component.GroundDetector, bool) {
	children, ok := ecs.Get(w, e, component.ChildrenComponent.Kind())
	if !ok {
		return nil, false
	}
	for _, c := range children.Entities {
		if d, ok := ecs.Get(w, ecs.Entity(c), component.GroundDetectorComponent.Kind()); ok {
			return d, true
		}
	}
	return nil, false
}

// position returns the transform of e, or the origin.
func position(w *ecs.World, e ecs.Entity) (float64, float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.X, t.Y
	}
	return 0, 0
}

// Despawn destroys e and every entity listed in its Children.
func Despawn(w *ecs.World, e ecs.Entity) {
	if children, ok := ecs.Get(w, e, component.ChildrenComponent.Kind()); ok {
		for _, c := range children.Entities {
			Despawn(w, ecs.Entity(c))
		}
	}
	w.DestroyEntity(e)
}

func combinationOf(w *ecs.World, e ecs.Entity) component.Combination {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		return p.Combination
	}
	return component.Combination{}
}
