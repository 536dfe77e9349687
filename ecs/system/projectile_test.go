package system

import (
	"testing"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectile(t *testing.T, w *ecs.World, kind component.ProjectileKind) ecs.Entity {
	t.Helper()
	e, err := entity.NewProjectile(w, kind, 0, 0, false, entity.DefaultSpecs())
	require.NoError(t, err)
	return e
}

func TestFireballKillsEnemyInEitherOrder(t *testing.T) {
	for _, projectileFirst := range []bool{true, false} {
		name := "enemy first"
		if projectileFirst {
			name = "projectile first"
		}
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			goblin, err := entity.NewGoblin(w, 10, 0, &entity.PatrolPoints{MinX: 0, MaxX: 40}, entity.DefaultSpecs())
			require.NoError(t, err)
			mustGet(t, w, goblin, component.VelocityComponent.Kind()).X = 20
			fireball := newProjectile(t, w, component.ProjectileFire)

			if projectileFirst {
				started(w, fireball, goblin)
			} else {
				started(w, goblin, fireball)
			}
			sounds := &recordingSound{}
			step(w, NewProjectileCollisionSystem(1, 600*time.Millisecond, sounds, nil), 0)

			assert.False(t, w.IsAlive(fireball))
			require.True(t, w.IsAlive(goblin), "the goblin lingers for its death animation")
			assert.Equal(t, 0.0, mustGet(t, w, goblin, component.VelocityComponent.Kind()).X)
			assert.Equal(t, 0.0, mustGet(t, w, goblin, component.PatrolComponent.Kind()).Speed)
			assert.Equal(t, component.StateDeath, mustGet(t, w, goblin, component.AnimationStateComponent.Kind()).State())
			assert.False(t, ecs.Has(w, goblin, component.HurtboxComponent.Kind()))
			assert.False(t, ecs.Has(w, goblin, component.RigidBodyComponent.Kind()))
			assert.True(t, ecs.Has(w, goblin, component.DestructionTimerComponent.Kind()))
			assert.Equal(t, []string{SoundHurt}, sounds.clips)

			destroy := NewDestructionSystem()
			step(w, destroy, 599*time.Millisecond)
			assert.True(t, w.IsAlive(goblin))
			step(w, destroy, time.Millisecond)
			assert.False(t, w.IsAlive(goblin))
		})
	}
}

func TestFireballBurnsWood(t *testing.T) {
	w := ecs.NewWorld()
	wood, err := entity.NewWoodBlock(w, 16, 0)
	require.NoError(t, err)
	fireball := newProjectile(t, w, component.ProjectileFire)

	started(w, wood, fireball)
	effects := &recordingEffects{}
	step(w, NewProjectileCollisionSystem(1, 0, nil, effects), 0)

	assert.False(t, w.IsAlive(wood))
	assert.False(t, w.IsAlive(fireball))
	assert.Equal(t, []string{EffectExplosion}, effects.effects)
}

func TestFireballIgnoresPlainTerrain(t *testing.T) {
	w := ecs.NewWorld()
	floor, err := entity.NewTerrain(w, 0, 0, 16, 16)
	require.NoError(t, err)
	fireball := newProjectile(t, w, component.ProjectileFire)

	started(w, fireball, floor)
	step(w, NewProjectileCollisionSystem(1, 0, nil, nil), 0)

	assert.True(t, w.IsAlive(floor))
	assert.True(t, w.IsAlive(fireball))
}

func TestWindPushesBlock(t *testing.T) {
	cases := []struct {
		name  string
		scale float64
		wantX float64
	}{
		{"default", 1, 50},
		{"amplified", 4, 200},
		{"zero means default", 0, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			block, err := entity.NewBlock(w, 16, 0)
			require.NoError(t, err)
			gust := newProjectile(t, w, component.ProjectileWind)

			started(w, block, gust)
			step(w, NewProjectileCollisionSystem(c.scale, 0, nil, nil), 0)

			assert.False(t, w.IsAlive(gust))
			assert.Equal(t, c.wantX, mustGet(t, w, block, component.VelocityComponent.Kind()).X)
			layer := mustGet(t, w, block, component.CollisionLayerComponent.Kind())
			assert.False(t, layer.HasMask(component.LayerWind), "a moving block ignores further gusts")
		})
	}
}

func TestBlockSettles(t *testing.T) {
	w := ecs.NewWorld()
	block, err := entity.NewBlock(w, 16, 0)
	require.NoError(t, err)
	layer := mustGet(t, w, block, component.CollisionLayerComponent.Kind())
	v := mustGet(t, w, block, component.VelocityComponent.Kind())
	layer.Mask &^= component.LayerWind
	sys := NewBlockSettleSystem(1)

	v.X = 30
	step(w, sys, 0)
	assert.False(t, layer.HasMask(component.LayerWind))

	v.X = 0.5
	step(w, sys, 0)
	assert.True(t, layer.HasMask(component.LayerWind))
}

func TestWaterCoolsLava(t *testing.T) {
	w := ecs.NewWorld()
	lava, err := entity.NewLava(w, 16, 0, entity.DefaultSpecs())
	require.NoError(t, err)
	droplet := newProjectile(t, w, component.ProjectileWater)

	started(w, lava, droplet)
	sounds := &recordingSound{}
	step(w, NewProjectileCollisionSystem(1, 0, sounds, nil), 0)

	assert.False(t, w.IsAlive(droplet))
	require.True(t, w.IsAlive(lava))
	assert.Equal(t, component.BodyStatic, mustGet(t, w, lava, component.RigidBodyComponent.Kind()).Type)
	anim := mustGet(t, w, lava, component.AnimatedComponent.Kind())
	assert.Equal(t, 8, anim.Start)
	assert.Equal(t, 9, anim.End)
	assert.Equal(t, 8, anim.Frame)
	assert.False(t, ecs.Has(w, lava, component.LavaComponent.Kind()))
	assert.False(t, ecs.Has(w, lava, component.HurtboxComponent.Kind()))
	assert.True(t, ecs.Has(w, lava, component.TerrainComponent.Kind()))
	assert.True(t, mustGet(t, w, lava, component.CollisionLayerComponent.Kind()).HasCategory(component.LayerTerrain))
	assert.Equal(t, []string{SoundSteam}, sounds.clips)
}

func TestWaterBreaksOnTerrainOnly(t *testing.T) {
	w := ecs.NewWorld()
	floor, err := entity.NewTerrain(w, 0, 0, 16, 16)
	require.NoError(t, err)
	goblin, err := entity.NewGoblin(w, 0, 0, nil, entity.DefaultSpecs())
	require.NoError(t, err)
	droplet := newProjectile(t, w, component.ProjectileWater)
	sys := NewProjectileCollisionSystem(1, 0, nil, nil)

	started(w, droplet, goblin)
	step(w, sys, 0)
	assert.True(t, w.IsAlive(droplet))
	assert.True(t, ecs.Has(w, goblin, component.HurtboxComponent.Kind()))

	started(w, floor, droplet)
	step(w, sys, 0)
	assert.False(t, w.IsAlive(droplet))
	assert.True(t, w.IsAlive(floor))
}

func TestProjectileLifetime(t *testing.T) {
	w := ecs.NewWorld()
	gust := newProjectile(t, w, component.ProjectileWind)
	sys := NewDestructionSystem()

	step(w, sys, 500*time.Millisecond)
	assert.True(t, w.IsAlive(gust))
	step(w, sys, 100*time.Millisecond)
	assert.False(t, w.IsAlive(gust))
}
