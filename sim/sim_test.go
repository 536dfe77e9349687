package sim

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/milk9111/elemental/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

// A floor with the player standing above it.
const floorLevel = `
name: floor
origin: {x: 0, y: 64}
tiles:
  - "........"
  - "..P....."
  - "........"
  - "########"
`

// The player drops straight into lava.
const lavaLevel = `
name: pit
origin: {x: 0, y: 64}
tiles:
  - "..P....."
  - "........"
  - "..L....."
  - "########"
`

type recordingSound struct {
	clips []string
}

func (r *recordingSound) Play(clip string) {
	r.clips = append(r.clips, clip)
}

func newSim(t *testing.T, level string, opts Options) *Simulation {
	t.Helper()
	lvl, err := levels.ParseGrid([]byte(level))
	require.NoError(t, err)
	opts.Specs = entity.DefaultSpecs()
	opts.Levels = levels.NewSet(lvl)
	opts.StartLevel = lvl.Name
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func playerGet[T any](t *testing.T, s *Simulation, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(s.World(), s.Player(), kind)
	require.True(t, ok)
	return v
}

func detector(t *testing.T, s *Simulation) *component.GroundDetector {
	t.Helper()
	children := playerGet(t, s, component.ChildrenComponent.Kind())
	require.NotEmpty(t, children.Entities)
	d, ok := ecs.Get(s.World(), ecs.Entity(children.Entities[0]), component.GroundDetectorComponent.Kind())
	require.True(t, ok)
	return d
}

// settle ticks until the player is grounded or a time limit passes.
func settle(t *testing.T, s *Simulation) {
	t.Helper()
	for i := 0; i < 180 && !detector(t, s).IsGrounded; i++ {
		s.Tick(frame, Intent{})
	}
	require.True(t, detector(t, s).IsGrounded, "player never landed")
}

func TestSchedulerOrder(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	assert.Equal(t, []string{
		"physics",
		"level_track",
		"ground",
		"force_area",
		"pickup",
		"checkpoint",
		"proximity_text",
		"movement",
		"patrol",
		"ability_cast",
		"projectile_collision",
		"block_settle",
		"damage_detect",
		"kill",
		"respawn",
		"level_reload",
		"destruction",
		"animation_mapper",
		"animation_playback",
	}, s.scheduler.Order())
}

func TestNewSpawnsAtLevelStart(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	tr := playerGet(t, s, component.TransformComponent.Kind())
	assert.Equal(t, 2.5*16, tr.X)
	assert.Equal(t, 64-1.5*16, tr.Y)
	assert.Equal(t, "floor", s.Level())

	p := playerGet(t, s, component.PlayerComponent.Kind())
	assert.Equal(t, component.Checkpoint{X: tr.X, Y: tr.Y, Level: "floor"}, p.Checkpoint)
	assert.Equal(t, component.Combination{}, p.Combination)
}

func TestNewRestoresSavedProgress(t *testing.T) {
	cp := component.Checkpoint{X: 100, Y: 40, Level: "floor"}
	s := newSim(t, floorLevel, Options{Checkpoint: &cp, Unlocked: component.Unlocks{Boots: true}})

	tr := playerGet(t, s, component.TransformComponent.Kind())
	assert.Equal(t, 100.0, tr.X)
	p := playerGet(t, s, component.PlayerComponent.Kind())
	assert.True(t, p.Unlocked.Boots)
	assert.False(t, p.Unlocked.Fire)
}

func TestPlayerLandsAndWalks(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	settle(t, s)

	tr := playerGet(t, s, component.TransformComponent.Kind())
	assert.Greater(t, tr.Y, 16.0, "resting on top of the floor")
	assert.Less(t, tr.Y, 64-1.5*16)

	startX := tr.X
	for i := 0; i < 30; i++ {
		s.Tick(frame, Intent{Right: true})
	}
	assert.Greater(t, tr.X, startX)
	assert.False(t, playerGet(t, s, component.ControllableComponent.Kind()).FacingLeft)
	assert.Equal(t, component.StateWalking, playerGet(t, s, component.AnimationStateComponent.Kind()).State())
}

func TestJumpLeavesGround(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	settle(t, s)
	tr := playerGet(t, s, component.TransformComponent.Kind())
	groundY := tr.Y

	s.Tick(frame, Intent{Jump: true})
	for i := 0; i < 10; i++ {
		s.Tick(frame, Intent{})
	}
	assert.Greater(t, tr.Y, groundY+10)
	assert.False(t, detector(t, s).IsGrounded)
}

func TestMenu(t *testing.T) {
	sounds := &recordingSound{}
	s := newSim(t, floorLevel, Options{Sounds: sounds})

	assert.ErrorIs(t, s.OpenMenu(), ErrNoCheckpoint)
	assert.ErrorIs(t, s.CloseMenu(), ErrMenuClosed)
	assert.ErrorIs(t, s.SelectCombination(component.Combination{}), ErrMenuClosed)

	p := playerGet(t, s, component.PlayerComponent.Kind())
	p.NearCheckpoint = true
	s.Tick(frame, Intent{Interact: true})
	require.True(t, s.MenuOpen())
	assert.Equal(t, 0.0, s.World().TimeScale())

	boots := component.Combination{Equipment: component.EquipmentBoots, Element: component.ElementAir}
	assert.ErrorIs(t, s.SelectCombination(boots), ErrLocked)

	staffFire := component.Combination{Equipment: component.EquipmentStaff, Element: component.ElementFire}
	assert.ErrorIs(t, s.SelectCombination(staffFire), ErrLocked)
	p.Unlock(component.UnlockFire)
	require.NoError(t, s.SelectCombination(staffFire))
	assert.Equal(t, staffFire, p.Combination)

	// frozen: intent is dropped and nothing moves
	tr := playerGet(t, s, component.TransformComponent.Kind())
	x, y := tr.X, tr.Y
	s.Tick(frame, Intent{Right: true, Ability: true})
	assert.Equal(t, x, tr.X)
	assert.Equal(t, y, tr.Y)
	assert.Empty(t, s.World().Query(component.ProjectileComponent.Kind()))

	require.NoError(t, s.CloseMenu())
	assert.False(t, s.MenuOpen())
	assert.Equal(t, 1.0, s.World().TimeScale())
	assert.Equal(t, []string{"blip1", "blip1", "blip2"}, sounds.clips)
}

func TestMenuUnlockAll(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	s.Debug().UnlockAllAbilities = true
	playerGet(t, s, component.PlayerComponent.Kind()).NearCheckpoint = true
	require.NoError(t, s.OpenMenu())

	cloak := component.Combination{Equipment: component.EquipmentCloak, Element: component.ElementWater}
	assert.NoError(t, s.SelectCombination(cloak))
}

func TestRestartReturnsToCheckpoint(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	settle(t, s)
	for i := 0; i < 30; i++ {
		s.Tick(frame, Intent{Right: true})
	}
	p := playerGet(t, s, component.PlayerComponent.Kind())

	events := s.Tick(frame, Intent{Restart: true})
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPlayerRespawned, events[0].Type)

	tr := playerGet(t, s, component.TransformComponent.Kind())
	assert.Equal(t, p.Checkpoint.X, tr.X)
	assert.Equal(t, p.Checkpoint.Y, tr.Y)
	assert.Equal(t, component.Velocity{}, *playerGet(t, s, component.VelocityComponent.Kind()))
}

func TestRestartKeepsGroundCountQuiet(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s := newSim(t, floorLevel, Options{})
	settle(t, s)
	require.NotZero(t, detector(t, s).ActiveCollisions)

	s.Tick(frame, Intent{Restart: true})
	settle(t, s)
	assert.NotContains(t, buf.String(), "stop without a start")
	assert.NotZero(t, detector(t, s).ActiveCollisions)
}

func TestSignShowsWhileStandingAtIt(t *testing.T) {
	s := newSim(t, floorLevel+`spawns:
  - kind: sign
    text: hello
    col: 2
    row: 2
`, Options{})
	sign, ok := ecs.First(s.World(), component.SignpostComponent.Kind())
	require.True(t, ok)
	text, ok := ecs.Get(s.World(), sign, component.ProximityTextComponent.Kind())
	require.True(t, ok)

	settle(t, s)
	assert.True(t, text.Visible)

	for i := 0; i < 40; i++ {
		s.Tick(frame, Intent{Right: true})
	}
	assert.False(t, text.Visible)
}

func TestLavaDeathAndRespawn(t *testing.T) {
	sounds := &recordingSound{}
	s := newSim(t, lavaLevel, Options{Sounds: sounds})
	p := playerGet(t, s, component.PlayerComponent.Kind())
	cp := p.Checkpoint

	var killedAt, respawnedAt = -1, -1
	for i := 0; i < 200 && respawnedAt < 0; i++ {
		for _, evt := range s.Tick(frame, Intent{}) {
			switch evt.Type {
			case ecs.EventPlayerKilled:
				require.Equal(t, -1, killedAt, "killed twice")
				killedAt = i
				assert.False(t, ecs.Has(s.World(), s.Player(), component.ControllableComponent.Kind()))
				assert.Equal(t, component.StateDeath, playerGet(t, s, component.AnimationStateComponent.Kind()).State())
			case ecs.EventPlayerRespawned:
				respawnedAt = i
			}
		}
	}
	require.GreaterOrEqual(t, killedAt, 0, "player never died")
	require.Greater(t, respawnedAt, killedAt, "player never respawned")
	// 600ms at 16ms per tick
	assert.InDelta(t, 38, respawnedAt-killedAt, 1)

	tr := playerGet(t, s, component.TransformComponent.Kind())
	assert.Equal(t, cp.X, tr.X)
	assert.Equal(t, cp.Y, tr.Y)
	assert.Equal(t, "pit", s.Level())
	assert.Equal(t, uint8(0), detector(t, s).ActiveCollisions)
	assert.True(t, ecs.Has(s.World(), s.Player(), component.ControllableComponent.Kind()))
	assert.Contains(t, sounds.clips, "death")
	assert.Len(t, s.World().Query(component.LavaComponent.Kind()), 1)
}

func TestLavaResistance(t *testing.T) {
	s := newSim(t, lavaLevel, Options{})
	p := playerGet(t, s, component.PlayerComponent.Kind())
	p.Combination = component.Combination{Equipment: component.EquipmentCloak, Element: component.ElementFire}

	for i := 0; i < 120; i++ {
		for _, evt := range s.Tick(frame, Intent{}) {
			assert.NotEqual(t, ecs.EventPlayerKilled, evt.Type)
		}
	}
	assert.True(t, detector(t, s).IsGrounded)
}

func TestApplySpecs(t *testing.T) {
	s := newSim(t, floorLevel, Options{})
	specs := entity.DefaultSpecs()
	specs.Player.MaxSpeed = 300
	specs.Player.AbilityCooldown = time.Second

	s.ApplySpecs(specs)
	c := playerGet(t, s, component.ControllableComponent.Kind())
	assert.Equal(t, 300.0, c.MaxSpeed)
	assert.Equal(t, time.Second, c.AbilityCooldown.Duration())
}

func TestReloadLevel(t *testing.T) {
	s := newSim(t, lavaLevel, Options{})
	before := len(ecs.Entities(s.World()))
	require.NoError(t, s.ReloadLevel())
	assert.Equal(t, before, len(ecs.Entities(s.World())))
}

// The player stands at the edge of a lava pit.
const pitLevel = `
name: pitcast
origin: {x: 0, y: 32}
tiles:
  - "..P....."
  - "###LLLL#"
`

func lavaLeft(s *Simulation) int {
	return len(s.World().Query(component.LavaComponent.Kind()))
}

func TestWaterCastCoolsLavaPit(t *testing.T) {
	s := newSim(t, pitLevel, Options{})
	require.Equal(t, 4, lavaLeft(s))
	settle(t, s)

	p := playerGet(t, s, component.PlayerComponent.Kind())
	p.UnlockAll()
	p.Combination = component.Combination{Equipment: component.EquipmentStaff, Element: component.ElementWater}

	for i := 0; i < 60; i++ {
		s.Tick(frame, Intent{Ability: true})
	}

	assert.Less(t, lavaLeft(s), 4, "summoned water should arc down into the pit")
	cooled := s.World().Query(component.TerrainComponent.Kind(), component.AnimatedComponent.Kind())
	assert.NotEmpty(t, cooled, "cooled lava becomes terrain")
	assert.True(t, s.World().IsAlive(s.Player()))
	assert.False(t, ecs.Has(s.World(), s.Player(), component.KilledComponent.Kind()))
}
