package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroundDetectorCounter(t *testing.T) {
	g := NewGroundDetector(100 * time.Millisecond)
	assert.False(t, g.IsGrounded)
	assert.False(t, g.CanCoyoteJump())

	g.Begin()
	g.Begin()
	assert.True(t, g.IsGrounded)
	assert.True(t, g.HasDoubleJump)
	assert.Equal(t, uint8(2), g.ActiveCollisions)
	assert.True(t, g.CanCoyoteJump())

	assert.True(t, g.End())
	assert.True(t, g.IsGrounded, "still touching the second surface")
	assert.True(t, g.End())
	assert.False(t, g.IsGrounded)

	assert.False(t, g.End(), "stop without start")
	assert.Equal(t, uint8(0), g.ActiveCollisions)
	assert.False(t, g.IsGrounded)
}

func TestGroundDetectorSaturates(t *testing.T) {
	g := NewGroundDetector(100 * time.Millisecond)
	for i := 0; i < 300; i++ {
		g.Begin()
	}
	assert.Equal(t, uint8(255), g.ActiveCollisions)
}

func TestGroundDetectorCoyoteWindow(t *testing.T) {
	g := NewGroundDetector(100 * time.Millisecond)
	g.Begin()

	// grounded: the window does not run
	g.Coyote.Tick(time.Second)
	assert.True(t, g.CanCoyoteJump())

	g.End()
	g.Coyote.Tick(99 * time.Millisecond)
	assert.True(t, g.CanCoyoteJump())
	g.Coyote.Tick(2 * time.Millisecond)
	assert.False(t, g.CanCoyoteJump())

	// landing again reopens it
	g.Begin()
	assert.True(t, g.CanCoyoteJump())
}

func TestGroundDetectorReset(t *testing.T) {
	g := NewGroundDetector(100 * time.Millisecond)
	g.Begin()
	g.Begin()
	g.ResetCollisions()
	assert.Equal(t, uint8(0), g.ActiveCollisions)
	assert.False(t, g.IsGrounded)
	assert.False(t, g.CanCoyoteJump())
	assert.False(t, g.Coyote.Paused())
	assert.Equal(t, uint8(2), g.StaleContacts)
}

func TestGroundDetectorAbsorbsStopsAfterReset(t *testing.T) {
	g := NewGroundDetector(100 * time.Millisecond)
	g.Begin()
	g.ResetCollisions()

	// landing somewhere new before the old contact reports its stop
	g.Begin()
	assert.True(t, g.End(), "stop of the forgotten contact")
	assert.Equal(t, uint8(1), g.ActiveCollisions)
	assert.True(t, g.IsGrounded)

	g.ForgetStale()
	assert.True(t, g.End())
	assert.False(t, g.End(), "nothing left to absorb")
	assert.False(t, g.IsGrounded)
}

func TestGroundDetectorRepeatedReset(t *testing.T) {
	g := NewGroundDetector(100 * time.Millisecond)
	g.Begin()
	g.ResetCollisions()
	g.ResetCollisions()
	assert.Equal(t, uint8(1), g.StaleContacts)
}
