package component

import (
	"time"

	"github.com/milk9111/elemental/common"
)

// Tuning is the per-player movement configuration.
type Tuning struct {
	MaxSpeed        float64
	JumpVelocity    float64
	Acceleration    float64
	CameraFollow    bool
	AbilityCooldown time.Duration
}

// Controllable carries movement tuning and the intent decoded for this
// frame. Removing it revokes player control.
type Controllable struct {
	Tuning

	Left     bool
	Right    bool
	Jump     bool
	Interact bool
	Ability  bool

	FacingLeft      bool
	AbilityCooldown common.Timer
}

var ControllableComponent = NewComponent[Controllable]()

// NewControllable returns a controllable whose ability cooldown starts ready.
func NewControllable(t Tuning) Controllable {
	return Controllable{
		Tuning:          t,
		AbilityCooldown: common.NewFinishedTimer(t.AbilityCooldown),
	}
}

// ClearIntent drops every per-frame intent flag.
func (c *Controllable) ClearIntent() {
	c.Left, c.Right, c.Jump, c.Interact, c.Ability = false, false, false, false, false
}
