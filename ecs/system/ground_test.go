package system

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundSystemCountsContacts(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	det := detectorEntity(t, w, player)
	floor, err := entity.NewTerrain(w, 0, -16, 64, 16)
	require.NoError(t, err)
	block, err := entity.NewBlock(w, 16, -8)
	require.NoError(t, err)

	sys := NewGroundSystem()
	d := mustGet(t, w, det, component.GroundDetectorComponent.Kind())

	started(w, det, floor)
	started(w, block, det)
	step(w, sys, 0)
	assert.True(t, d.IsGrounded)
	assert.Equal(t, uint8(2), d.ActiveCollisions)

	stopped(w, floor, det)
	step(w, sys, 0)
	assert.True(t, d.IsGrounded)

	stopped(w, det, block)
	step(w, sys, 0)
	assert.False(t, d.IsGrounded)

	// a stray stop clamps at zero
	stopped(w, det, floor)
	step(w, sys, 0)
	assert.Equal(t, uint8(0), d.ActiveCollisions)
	assert.False(t, d.IsGrounded)
}

func TestGroundSystemAbsorbsStopsAfterReset(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	det := detectorEntity(t, w, player)
	floor, err := entity.NewTerrain(w, 0, -16, 64, 16)
	require.NoError(t, err)
	spawn, err := entity.NewTerrain(w, 200, -16, 64, 16)
	require.NoError(t, err)

	sys := NewGroundSystem()
	d := mustGet(t, w, det, component.GroundDetectorComponent.Kind())
	started(w, det, floor)
	step(w, sys, 0)

	// respawn resets the detector, then the teleport reports the old floor
	// as stopped alongside the landing at the checkpoint
	d.ResetCollisions()
	stopped(w, det, floor)
	started(w, det, spawn)
	step(w, sys, 0)
	assert.Equal(t, uint8(1), d.ActiveCollisions)
	assert.True(t, d.IsGrounded)
	assert.Empty(t, buf.String())

	// the next pass no longer absorbs anything
	stopped(w, det, spawn)
	stopped(w, det, floor)
	step(w, sys, 0)
	assert.False(t, d.IsGrounded)
	assert.Contains(t, buf.String(), "stop without a start")
}

func TestCoyoteWindow(t *testing.T) {
	cases := []struct {
		name    string
		airtime time.Duration
		jumps   bool
	}{
		{"just inside", 99 * time.Millisecond, true},
		{"just outside", 101 * time.Millisecond, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := newTestPlayer(t, w)
			det := detectorEntity(t, w, player)
			floor, err := entity.NewTerrain(w, 0, -16, 64, 16)
			require.NoError(t, err)

			ground := NewGroundSystem()
			move := NewMovementSystem(DefaultMovementConfig(), nil, nil, nil)

			started(w, det, floor)
			step(w, ground, 0)
			stopped(w, det, floor)
			step(w, ground, 0)
			step(w, ground, c.airtime)

			mustGet(t, w, player, component.ControllableComponent.Kind()).Jump = true
			step(w, move, 0)

			v := mustGet(t, w, player, component.VelocityComponent.Kind())
			if c.jumps {
				assert.Equal(t, 200.0, v.Y)
			} else {
				assert.Equal(t, 0.0, v.Y)
			}
		})
	}
}
