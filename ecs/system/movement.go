package system

import (
	"math"

	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// MovementConfig scales the boots combinations.
type MovementConfig struct {
	ExplosiveJumpScale float64
	SpeedUpScale       float64
}

func DefaultMovementConfig() MovementConfig {
	return MovementConfig{ExplosiveJumpScale: 1.3, SpeedUpScale: 2}
}

// MovementSystem turns intent and ground state into velocity, resolves jump
// requests and derives the locomotion animation state.
type MovementSystem struct {
	cfg     MovementConfig
	debug   *DebugSettings
	sounds  SoundPlayer
	effects EffectSpawner
}

func NewMovementSystem(cfg MovementConfig, debug *DebugSettings, sounds SoundPlayer, effects EffectSpawner) *MovementSystem {
	if debug == nil {
		debug = &DebugSettings{}
	}
	return &MovementSystem{cfg: cfg, debug: debug, sounds: soundOrNop(sounds), effects: effectsOrNop(effects)}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta().Seconds()

	ecs.ForEach2(w, component.ControllableComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, c *component.Controllable, v *component.Velocity) {
		detector, hasDetector := groundDetectorOf(w, e)
		grounded := hasDetector && detector.IsGrounded
		effect := combinationOf(w, e).Effect()

		maxSpeed := c.MaxSpeed
		if effect == component.EffectSpeedUp {
			maxSpeed *= s.cfg.SpeedUpScale
		}
		accel := c.Acceleration
		if !grounded {
			accel /= 2
		}
		delta := accel * dt

		switch {
		case c.Right && !c.Left:
			if v.X < maxSpeed {
				v.X = math.Min(v.X+delta, maxSpeed)
			}
			c.FacingLeft = false
		case c.Left && !c.Right:
			if v.X > -maxSpeed {
				v.X = math.Max(v.X-delta, -maxSpeed)
			}
			c.FacingLeft = true
		default:
			v.X = common.Approach(v.X, delta)
		}

		if c.Jump {
			s.jump(w, e, c, v, detector, effect)
		}

		if state, ok := ecs.Get(w, e, component.AnimationStateComponent.Kind()); ok {
			state.Set(locomotionState(v, grounded))
		}
	})
}

func (s *MovementSystem) jump(w *ecs.World, e ecs.Entity, c *component.Controllable, v *component.Velocity, detector *component.GroundDetector, effect component.Effect) {
	x, y := position(w, e)
	coyote := detector != nil && detector.CanCoyoteJump()

	switch {
	case coyote || s.debug.Flying:
		v.Y = c.JumpVelocity
		if detector != nil {
			detector.Coyote.Exhaust()
		}
		if effect == component.EffectExplosiveJump {
			v.Y = c.JumpVelocity * s.cfg.ExplosiveJumpScale
			s.effects.Spawn(EffectExplosion, x, y)
			s.sounds.Play(SoundExplosion)
			return
		}
		s.effects.Spawn(EffectJumpDust, x, y)
		s.sounds.Play(SoundJump)
	case detector != nil && detector.HasDoubleJump && effect == component.EffectDoubleJump:
		v.Y = c.JumpVelocity
		detector.HasDoubleJump = false
		s.effects.Spawn(EffectPuff, x, y)
		s.sounds.Play(SoundAir)
	}
}

func locomotionState(v *component.Velocity, grounded bool) component.AnimState {
	switch {
	case !grounded && v.Y > 0.1:
		return component.StateJumpUp
	case !grounded && v.Y < -0.1:
		return component.StateJumpDown
	case math.Abs(v.X) > 0.05:
		return component.StateWalking
	default:
		return component.StateIdle
	}
}
