package system

import (
	"time"

	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// CooledLava is the frame window of petrified lava.
var CooledLava = component.FrameWindow{Start: 8, End: 9}

// ProjectileCollisionSystem resolves what a projectile does to whatever it
// touched. Contacts arrive as unordered pairs so every started collision is
// resolved once per ordering.
type ProjectileCollisionSystem struct {
	// PushScale multiplies the wind velocity written into a pushed block.
	PushScale float64
	// DeathLinger is how long a burnt enemy stays for its death animation.
	DeathLinger time.Duration

	sounds  SoundPlayer
	effects EffectSpawner
}

func NewProjectileCollisionSystem(pushScale float64, deathLinger time.Duration, sounds SoundPlayer, effects EffectSpawner) *ProjectileCollisionSystem {
	if pushScale == 0 {
		pushScale = 1
	}
	return &ProjectileCollisionSystem{
		PushScale:   pushScale,
		DeathLinger: deathLinger,
		sounds:      soundOrNop(sounds),
		effects:     effectsOrNop(effects),
	}
}

func (s *ProjectileCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Collisions() {
		if evt.Kind != ecs.CollisionStarted {
			continue
		}
		s.resolve(w, evt.A, evt.B)
		s.resolve(w, evt.B, evt.A)
	}
}

// resolve applies subject's effect to other when subject is a live
// projectile. Unmatched pairs are left alone.
func (s *ProjectileCollisionSystem) resolve(w *ecs.World, subject, other ecs.Entity) {
	p, ok := ecs.Get(w, subject, component.ProjectileComponent.Kind())
	if !ok || !w.IsAlive(other) {
		return
	}

	switch p.Kind {
	case component.ProjectileFire:
		s.burn(w, subject, other)
	case component.ProjectileWind:
		s.push(w, subject, other)
	case component.ProjectileWater:
		s.douse(w, subject, other)
	}
}

func (s *ProjectileCollisionSystem) burn(w *ecs.World, projectile, other ecs.Entity) {
	switch {
	case ecs.Has(w, other, component.EnemyComponent.Kind()):
		killEnemy(w, other, s.DeathLinger)
		s.sounds.Play(SoundHurt)
	case ecs.Has(w, other, component.FlammableComponent.Kind()):
		x, y := position(w, other)
		s.effects.Spawn(EffectExplosion, x, y)
		s.sounds.Play(SoundExplosion)
		Despawn(w, other)
	default:
		return
	}
	Despawn(w, projectile)
}

func (s *ProjectileCollisionSystem) push(w *ecs.World, projectile, other ecs.Entity) {
	if !ecs.Has(w, other, component.MovableComponent.Kind()) {
		return
	}
	pv, ok := ecs.Get(w, projectile, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	if v, ok := ecs.Get(w, other, component.VelocityComponent.Kind()); ok {
		v.X = pv.X * s.PushScale
		v.Y = pv.Y * s.PushScale
	}
	if layer, ok := ecs.Get(w, other, component.CollisionLayerComponent.Kind()); ok {
		layer.Mask &^= component.LayerWind
	}
	Despawn(w, projectile)
}

func (s *ProjectileCollisionSystem) douse(w *ecs.World, projectile, other ecs.Entity) {
	if ecs.Has(w, other, component.LavaComponent.Kind()) {
		petrify(w, other)
		x, y := position(w, other)
		s.effects.Spawn(EffectSteam, x, y)
		s.sounds.Play(SoundSteam)
		Despawn(w, projectile)
		return
	}
	if ecs.Has(w, other, component.TerrainComponent.Kind()) {
		Despawn(w, projectile)
	}
}

// killEnemy freezes an enemy in its death animation and schedules its
// removal. It can no longer hurt or collide.
func killEnemy(w *ecs.World, e ecs.Entity, linger time.Duration) {
	if state, ok := ecs.Get(w, e, component.AnimationStateComponent.Kind()); ok {
		state.Set(component.StateDeath)
	}
	if patrol, ok := ecs.Get(w, e, component.PatrolComponent.Kind()); ok {
		patrol.Speed = 0
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X = 0
	}
	ecs.Remove(w, e, component.HurtboxComponent.Kind())
	ecs.Remove(w, e, component.RigidBodyComponent.Kind())
	_ = ecs.Add(w, e, component.DestructionTimerComponent.Kind(), &component.DestructionTimer{Timer: common.NewTimer(linger, false)})
}

// petrify turns lava into walkable terrain for good.
func petrify(w *ecs.World, e ecs.Entity) {
	if anim, ok := ecs.Get(w, e, component.AnimatedComponent.Kind()); ok {
		anim.SetWindow(CooledLava)
	}
	if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok {
		rb.Type = component.BodyStatic
	}
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		layer.Category |= component.LayerTerrain
	}
	ecs.Remove(w, e, component.HurtboxComponent.Kind())
	ecs.Remove(w, e, component.LavaComponent.Kind())
	_ = ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{})
}
