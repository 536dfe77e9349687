package system

import (
	"log"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
)

// AbilityCastSystem spawns a projectile when a player with the staff and an
// infused element asks to cast and the cooldown allows it.
type AbilityCastSystem struct {
	specs  entity.Specs
	sounds SoundPlayer
}

func NewAbilityCastSystem(specs entity.Specs, sounds SoundPlayer) *AbilityCastSystem {
	return &AbilityCastSystem{specs: specs, sounds: soundOrNop(sounds)}
}

// SetSpecs swaps the projectile tuning, e.g. after a prefab reload.
func (s *AbilityCastSystem) SetSpecs(specs entity.Specs) {
	s.specs = specs
}

func (s *AbilityCastSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ControllableComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, c *component.Controllable, p *component.Player) {
		c.AbilityCooldown.Tick(w.Delta())
		if !c.Ability || !c.AbilityCooldown.Finished() || !p.HasEquipped(component.EquipmentStaff) {
			return
		}

		kind, clip, ok := projectileFor(p.Combination.Element)
		if !ok {
			return
		}

		x, y := position(w, e)
		if _, err := entity.NewProjectile(w, kind, x, y, c.FacingLeft, s.specs); err != nil {
			log.Printf("AbilityCastSystem: %v", err)
			return
		}
		c.AbilityCooldown.Reset()
		s.sounds.Play(clip)
	})
}

func projectileFor(el component.Element) (component.ProjectileKind, string, bool) {
	switch el {
	case component.ElementFire:
		return component.ProjectileFire, SoundFireball, true
	case component.ElementAir:
		return component.ProjectileWind, SoundAir, true
	case component.ElementWater:
		return component.ProjectileWater, SoundPew, true
	}
	return 0, "", false
}
