package entity

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// PatrolPoints is the optional walking segment of a goblin.
type PatrolPoints struct {
	MinX float64
	MaxX float64
}

// NewGoblin spawns a goblin. A nil patrol leaves it standing still.
func NewGoblin(w *ecs.World, x, y float64, patrol *PatrolPoints, specs Specs) (ecs.Entity, error) {
	spec := specs.World
	b := newBuilder(w, "goblin")
	b.transform(x, y)
	add(b, component.VelocityComponent.Kind(), &component.Velocity{}, "velocity")
	b.body(component.RigidBody{
		Type:   component.BodyKinematic,
		Width:  spec.GoblinCollider.Width,
		Height: spec.GoblinCollider.Height,
	}, component.LayerEnemy, component.LayerAll&^component.LayerGroundDetector)
	add(b, component.EnemyComponent.Kind(), &component.Enemy{}, "enemy")
	add(b, component.HurtboxComponent.Kind(), &component.Hurtbox{Hazard: component.HazardGeneric}, "hurtbox")

	p := component.Patrol{Speed: spec.GoblinSpeed}
	state := component.StateIdle
	if patrol != nil {
		p.HasPoints = true
		p.MinX, p.MaxX = patrol.MinX, patrol.MaxX
		if p.MinX > p.MaxX {
			p.MinX, p.MaxX = p.MaxX, p.MinX
		}
		state = component.StateWalking
	}
	add(b, component.PatrolComponent.Kind(), &p, "patrol")

	window, _ := component.FrameWindowFor(component.ActorEnemy, state)
	anim := component.NewAnimated(spec.Actor.FrameTime, window.Start, window.End, window.PlayOnce)
	add(b, component.AnimatedComponent.Kind(), &anim, "animated")
	as := component.NewAnimationState(component.ActorEnemy, state)
	add(b, component.AnimationStateComponent.Kind(), &as, "animation state")
	return b.done()
}
