package component

import (
	"time"

	"github.com/milk9111/elemental/common"
)

// GroundDetector is the sensor child of a player. ActiveCollisions counts
// overlapping surfaces and never drops below zero. StaleContacts holds the
// contacts dropped by the last reset whose stops have not been seen yet.
type GroundDetector struct {
	IsGrounded       bool
	HasDoubleJump    bool
	Coyote           common.Timer
	ActiveCollisions uint8
	StaleContacts    uint8
}

var GroundDetectorComponent = NewComponent[GroundDetector]()

func NewGroundDetector(coyote time.Duration) GroundDetector {
	// A fresh detector is airborne with an expired grace window.
	return GroundDetector{Coyote: common.NewFinishedTimer(coyote)}
}

// Begin records a new contact.
func (g *GroundDetector) Begin() {
	if g.ActiveCollisions < ^uint8(0) {
		g.ActiveCollisions++
	}
	g.sync()
}

// End records a lost contact. It returns false, leaving the count at zero,
// when there was no contact to end.
func (g *GroundDetector) End() bool {
	if g.StaleContacts > 0 {
		g.StaleContacts--
		return true
	}
	if g.ActiveCollisions == 0 {
		g.sync()
		return false
	}
	g.ActiveCollisions--
	g.sync()
	return true
}

// ResetCollisions forgets every contact, as after a teleport. The coyote
// window is closed until the next contact. Stops for the forgotten contacts
// are absorbed until ForgetStale is called.
func (g *GroundDetector) ResetCollisions() {
	if n := g.StaleContacts + g.ActiveCollisions; n >= g.StaleContacts {
		g.StaleContacts = n
	} else {
		g.StaleContacts = ^uint8(0)
	}
	g.ActiveCollisions = 0
	g.IsGrounded = false
	g.Coyote.Unpause()
	g.Coyote.Exhaust()
}

// ForgetStale stops absorbing stops left over from the last reset.
func (g *GroundDetector) ForgetStale() {
	g.StaleContacts = 0
}

func (g *GroundDetector) sync() {
	if g.ActiveCollisions > 0 {
		g.IsGrounded = true
		g.HasDoubleJump = true
		g.Coyote.Reset()
		g.Coyote.Pause()
		return
	}
	if g.IsGrounded {
		g.IsGrounded = false
		g.Coyote.Unpause()
	}
}

// CanCoyoteJump reports whether a jump is still honoured.
func (g *GroundDetector) CanCoyoteJump() bool {
	return !g.Coyote.Finished()
}
