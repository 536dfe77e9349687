package entity

import (
	"fmt"

	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/prefabs"
)

// ProjectileLayer is the category and mask of each projectile kind.
func ProjectileLayer(kind component.ProjectileKind) component.CollisionLayer {
	switch kind {
	case component.ProjectileFire:
		return component.CollisionLayer{Category: component.LayerFireball, Mask: component.LayerEnemy | component.LayerWood}
	case component.ProjectileWind:
		return component.CollisionLayer{Category: component.LayerWind, Mask: component.LayerMovable}
	case component.ProjectileWater:
		return component.CollisionLayer{Category: component.LayerDroplet, Mask: component.LayerTerrain | component.LayerLava}
	}
	return component.CollisionLayer{}
}

func projectileSpec(kind component.ProjectileKind, specs Specs) (prefabs.ProjectileSpec, int, bool) {
	switch kind {
	case component.ProjectileFire:
		return specs.Abilities.Fire, 4, true
	case component.ProjectileWind:
		return specs.Abilities.Wind, 5, true
	case component.ProjectileWater:
		return specs.Abilities.Water, 4, true
	}
	return prefabs.ProjectileSpec{}, 0, false
}

// NewProjectile spawns a projectile at (x, y) flying away from the caster.
// It carries a destruction timer so it never outlives its lifetime. Fire and
// wind fly straight; summoned water falls in an arc.
func NewProjectile(w *ecs.World, kind component.ProjectileKind, x, y float64, facingLeft bool, specs Specs) (ecs.Entity, error) {
	spec, frames, ok := projectileSpec(kind, specs)
	if !ok {
		return 0, fmt.Errorf("projectile: unknown kind %d", kind)
	}

	b := newBuilder(w, "projectile")
	b.transform(x, y)
	add(b, component.VelocityComponent.Kind(), &component.Velocity{X: common.Sign(facingLeft) * spec.Speed}, "velocity")
	layer := ProjectileLayer(kind)
	b.body(component.RigidBody{
		Type:      component.BodyDynamic,
		Width:     spec.Collider.Width,
		Height:    spec.Collider.Height,
		NoGravity: kind != component.ProjectileWater,
	}, layer.Category, layer.Mask)
	add(b, component.ProjectileComponent.Kind(), &component.Projectile{Kind: kind}, "projectile")
	add(b, component.DestructionTimerComponent.Kind(), &component.DestructionTimer{Timer: common.NewTimer(spec.Lifetime, false)}, "destruction timer")
	b.animated(prefabs.AnimationSpec{FrameTime: specs.World.Actor.FrameTime, Start: 0, End: frames})
	return b.done()
}
