package system

import (
	"testing"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groundPlayer(t *testing.T, w *ecs.World, player ecs.Entity) *component.GroundDetector {
	t.Helper()
	d := mustGet(t, w, detectorEntity(t, w, player), component.GroundDetectorComponent.Kind())
	d.Begin()
	return d
}

func TestMovementHorizontal(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		combo    component.Combination
		startX   float64
		left     bool
		right    bool
		wantX    float64
	}{
		{"accelerates on ground", true, component.Combination{}, 0, false, true, 40},
		{"half acceleration in air", false, component.Combination{}, 0, false, true, 20},
		{"clamps at max", true, component.Combination{}, 90, false, true, 100},
		{"keeps speed above max", true, component.Combination{}, 150, false, true, 150},
		{"speed up raises max", true, component.Combination{Equipment: component.EquipmentBoots, Element: component.ElementWater}, 150, false, true, 190},
		{"accelerates left", true, component.Combination{}, 0, true, false, -40},
		{"decelerates without input", true, component.Combination{}, 30, false, false, 0},
		{"both directions decelerate", true, component.Combination{}, -50, true, true, -10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := newTestPlayer(t, w)
			if c.grounded {
				groundPlayer(t, w, player)
			}
			equip(t, w, player, c.combo.Equipment, c.combo.Element)
			ctrl := mustGet(t, w, player, component.ControllableComponent.Kind())
			ctrl.Left, ctrl.Right = c.left, c.right
			v := mustGet(t, w, player, component.VelocityComponent.Kind())
			v.X = c.startX

			step(w, NewMovementSystem(DefaultMovementConfig(), nil, nil, nil), 100*time.Millisecond)
			assert.InDelta(t, c.wantX, v.X, 1e-9)
		})
	}
}

func TestMovementFacing(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	ctrl := mustGet(t, w, player, component.ControllableComponent.Kind())
	sys := NewMovementSystem(DefaultMovementConfig(), nil, nil, nil)

	ctrl.Left = true
	step(w, sys, 16*time.Millisecond)
	assert.True(t, ctrl.FacingLeft)

	ctrl.Left, ctrl.Right = false, true
	step(w, sys, 16*time.Millisecond)
	assert.False(t, ctrl.FacingLeft)
}

func TestMovementJumps(t *testing.T) {
	cases := []struct {
		name   string
		combo  component.Combination
		wantY  float64
		effect string
		sound  string
	}{
		{"plain", component.Combination{}, 200, EffectJumpDust, SoundJump},
		{"explosive", component.Combination{Equipment: component.EquipmentBoots, Element: component.ElementFire}, 260, EffectExplosion, SoundExplosion},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := newTestPlayer(t, w)
			d := groundPlayer(t, w, player)
			equip(t, w, player, c.combo.Equipment, c.combo.Element)
			mustGet(t, w, player, component.ControllableComponent.Kind()).Jump = true

			sounds := &recordingSound{}
			effects := &recordingEffects{}
			step(w, NewMovementSystem(DefaultMovementConfig(), nil, sounds, effects), 0)

			v := mustGet(t, w, player, component.VelocityComponent.Kind())
			assert.InDelta(t, c.wantY, v.Y, 1e-9)
			assert.Equal(t, []string{c.sound}, sounds.clips)
			assert.Equal(t, []string{c.effect}, effects.effects)
			assert.True(t, d.Coyote.Finished(), "a jump consumes the coyote window")
		})
	}
}

func TestMovementDoubleJump(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	d := groundPlayer(t, w, player)
	d.End()
	d.Coyote.Exhaust()
	require.True(t, d.HasDoubleJump)

	equip(t, w, player, component.EquipmentBoots, component.ElementAir)
	ctrl := mustGet(t, w, player, component.ControllableComponent.Kind())
	v := mustGet(t, w, player, component.VelocityComponent.Kind())
	sounds := &recordingSound{}
	sys := NewMovementSystem(DefaultMovementConfig(), nil, sounds, nil)

	v.Y = -30
	ctrl.Jump = true
	step(w, sys, 0)
	assert.Equal(t, 200.0, v.Y)
	assert.False(t, d.HasDoubleJump)
	assert.Equal(t, []string{SoundAir}, sounds.clips)

	v.Y = -30
	step(w, sys, 0)
	assert.Equal(t, -30.0, v.Y, "only one air jump")
}

func TestMovementNoDoubleJumpWithoutBoots(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	d := groundPlayer(t, w, player)
	d.End()
	d.Coyote.Exhaust()

	mustGet(t, w, player, component.ControllableComponent.Kind()).Jump = true
	step(w, NewMovementSystem(DefaultMovementConfig(), nil, nil, nil), 0)
	assert.Equal(t, 0.0, mustGet(t, w, player, component.VelocityComponent.Kind()).Y)
}

func TestMovementFlyingJumpsAnywhere(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	mustGet(t, w, player, component.ControllableComponent.Kind()).Jump = true

	step(w, NewMovementSystem(DefaultMovementConfig(), &DebugSettings{Flying: true}, nil, nil), 0)
	assert.Equal(t, 200.0, mustGet(t, w, player, component.VelocityComponent.Kind()).Y)
}

func TestLocomotionState(t *testing.T) {
	cases := []struct {
		name     string
		v        component.Velocity
		grounded bool
		want     component.AnimState
	}{
		{"rising", component.Velocity{Y: 5}, false, component.StateJumpUp},
		{"falling", component.Velocity{Y: -5}, false, component.StateJumpDown},
		{"walking", component.Velocity{X: 3}, true, component.StateWalking},
		{"idle", component.Velocity{X: 0.01}, true, component.StateIdle},
		{"vertical ignored on ground", component.Velocity{Y: 5}, true, component.StateIdle},
		{"air drift", component.Velocity{X: 3, Y: 0.05}, false, component.StateWalking},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := c.v
			assert.Equal(t, c.want, locomotionState(&v, c.grounded))
		})
	}
}
