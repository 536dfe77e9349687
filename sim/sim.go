// Package sim runs the gameplay simulation: one world, one ordered set of
// systems, one Tick per frame.
package sim

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/milk9111/elemental/ecs/system"
	"github.com/milk9111/elemental/levels"
)

var (
	ErrLocked       = errors.New("sim: combination is locked")
	ErrMenuClosed   = errors.New("sim: ability menu is closed")
	ErrNoCheckpoint = errors.New("sim: not at a checkpoint")
	ErrNoPlayer     = errors.New("sim: no player")
)

// Intent is the decoded input of one frame.
type Intent struct {
	Left     bool
	Right    bool
	Jump     bool
	Interact bool
	Ability  bool
	Restart  bool
}

// Options configures a Simulation. Levels may be nil for an empty world.
type Options struct {
	Specs      entity.Specs
	Levels     *levels.Set
	Debug      system.DebugSettings
	StartLevel string

	// Checkpoint and Unlocked restore saved progress when Checkpoint is set.
	Checkpoint *component.Checkpoint
	Unlocked   component.Unlocks

	Sounds  system.SoundPlayer
	Effects system.EffectSpawner
	Saver   system.CheckpointSaver
}

type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	ability   *system.AbilityCastSystem
	reload    *system.LevelReloadSystem
	selection *levels.Selection
	set       *levels.Set
	debug     *system.DebugSettings
	sounds    system.SoundPlayer
	specs     entity.Specs

	player   ecs.Entity
	menuOpen bool
}

// New builds every level, spawns the player and wires the systems.
func New(opts Options) (*Simulation, error) {
	debug := opts.Debug
	s := &Simulation{
		world:     ecs.NewWorld(),
		physics:   system.NewPhysicsSystem(),
		selection: levels.NewSelection(""),
		set:       opts.Levels,
		debug:     &debug,
		sounds:    opts.Sounds,
		specs:     opts.Specs,
	}
	if s.set == nil {
		s.set = levels.NewSet()
	}

	if err := s.spawnPlayer(opts); err != nil {
		return nil, err
	}
	player, _ := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	for _, name := range s.set.Names() {
		lvl, err := s.set.Get(name)
		if err != nil {
			return nil, err
		}
		if err := levels.Build(s.world, lvl, s.specs, player.Has); err != nil {
			return nil, err
		}
	}

	if err := s.buildScheduler(opts); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) spawnPlayer(opts Options) error {
	cp := component.Checkpoint{
		X:     s.specs.Player.Checkpoint.X,
		Y:     s.specs.Player.Checkpoint.Y,
		Level: s.specs.Player.CheckpointLevel,
	}
	switch {
	case opts.Checkpoint != nil:
		cp = *opts.Checkpoint
	case opts.StartLevel != "":
		lvl, err := s.set.Get(opts.StartLevel)
		if err != nil {
			return err
		}
		x, y, ok := lvl.Start()
		if !ok {
			minX, minY, maxX, maxY := lvl.Bounds()
			x, y = (minX+maxX)/2, (minY+maxY)/2
		}
		cp = component.Checkpoint{X: x, Y: y, Level: lvl.Name}
	}
	if cp.Level == "" {
		cp.Level, _ = s.set.At(cp.X, cp.Y)
	}

	e, err := entity.NewPlayer(s.world, cp.X, cp.Y, s.specs)
	if err != nil {
		return fmt.Errorf("sim: spawn player: %w", err)
	}
	p, _ := ecs.Get(s.world, e, component.PlayerComponent.Kind())
	p.Checkpoint = cp
	if opts.Checkpoint != nil {
		p.Unlocked = opts.Unlocked
	}
	if s.debug.UnlockAllAbilities {
		p.UnlockAll()
	}

	s.player = e
	s.selection.Select(cp.Level)
	s.selection.TakeChanged()
	return nil
}

func (s *Simulation) buildScheduler(opts Options) error {
	specs := s.specs
	s.ability = system.NewAbilityCastSystem(specs, opts.Sounds)
	s.reload = system.NewLevelReloadSystem(s.set, specs)

	movementCfg := system.MovementConfig{
		ExplosiveJumpScale: specs.Player.ExplosiveJumpScale,
		SpeedUpScale:       specs.Player.SpeedUpScale,
	}

	steps := []struct {
		name  string
		sys   ecs.System
		after string
	}{
		{"physics", s.physics, ""},
		{"level_track", system.NewLevelTrackSystem(s.set, s.selection), "physics"},
		{"ground", system.NewGroundSystem(), "level_track"},
		{"force_area", system.NewForceAreaSystem(), "ground"},
		{"pickup", system.NewPickupSystem(opts.Sounds), "force_area"},
		{"checkpoint", system.NewCheckpointSystem(s.selection, opts.Saver, opts.Sounds), "pickup"},
		{"proximity_text", system.NewProximityTextSystem(opts.Sounds), "checkpoint"},
		{"movement", system.NewMovementSystem(movementCfg, s.debug, opts.Sounds, opts.Effects), "proximity_text"},
		{"patrol", system.NewPatrolSystem(), "movement"},
		{"ability_cast", s.ability, "patrol"},
		{"projectile_collision", system.NewProjectileCollisionSystem(specs.Abilities.WindPushScale, specs.World.DeathLinger, opts.Sounds, opts.Effects), "ability_cast"},
		{"block_settle", system.NewBlockSettleSystem(specs.Abilities.SettleSpeed), "projectile_collision"},
		{"damage_detect", system.NewDamageDetectSystem(s.debug), "block_settle"},
		{"kill", system.NewKillSystem(specs.Player.Respawn, opts.Sounds), "damage_detect"},
		{"respawn", system.NewRespawnSystem(s.selection), "kill"},
		{"level_reload", s.reload, "respawn"},
		{"destruction", system.NewDestructionSystem(), "level_reload"},
		{"animation_mapper", system.NewAnimationMapperSystem(), "destruction"},
		{"animation_playback", system.NewAnimationPlaybackSystem(), "animation_mapper"},
	}

	s.scheduler = ecs.NewScheduler()
	for _, step := range steps {
		var after []string
		if step.after != "" {
			after = append(after, step.after)
		}
		if err := s.scheduler.AddNamed(step.name, step.sys, after...); err != nil {
			return fmt.Errorf("sim: schedule %s: %w", step.name, err)
		}
	}
	if err := s.scheduler.Build(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	return nil
}

// Tick advances the simulation by dt with the given intent and returns the
// gameplay events raised during the tick. While the ability menu is open
// time is frozen and intent is ignored.
func (s *Simulation) Tick(dt time.Duration, in Intent) []ecs.Event {
	if in.Restart && !s.menuOpen {
		s.Restart()
	}
	s.applyIntent(in)

	s.world.SetDelta(dt)
	s.scheduler.Update(s.world)
	events := s.world.Events().Drain()
	s.world.EndTick()
	return events
}

func (s *Simulation) applyIntent(in Intent) {
	c, ok := ecs.Get(s.world, s.player, component.ControllableComponent.Kind())
	if !ok {
		return
	}
	if s.menuOpen {
		c.ClearIntent()
		return
	}
	if in.Interact {
		if err := s.OpenMenu(); err == nil {
			c.ClearIntent()
			return
		}
	}
	c.Left, c.Right = in.Left, in.Right
	c.Jump = in.Jump
	c.Interact = in.Interact
	c.Ability = in.Ability
}

// Restart sends the player back to their checkpoint without dying.
func (s *Simulation) Restart() {
	if !s.world.IsAlive(s.player) {
		return
	}
	if err := ecs.Add(s.world, s.player, component.RestartRequestComponent.Kind(), &component.RestartRequest{}); err != nil {
		log.Printf("Simulation: restart: %v", err)
	}
}

// OpenMenu freezes time and lets the player pick a combination. The player
// must be standing at a checkpoint.
func (s *Simulation) OpenMenu() error {
	if s.menuOpen {
		return nil
	}
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return ErrNoPlayer
	}
	if !p.NearCheckpoint || !ecs.Has(s.world, s.player, component.ControllableComponent.Kind()) {
		return ErrNoCheckpoint
	}
	s.menuOpen = true
	s.world.SetTimeScale(0)
	s.play(system.SoundBlip1)
	return nil
}

func (s *Simulation) CloseMenu() error {
	if !s.menuOpen {
		return ErrMenuClosed
	}
	s.menuOpen = false
	s.world.SetTimeScale(1)
	s.play(system.SoundBlip2)
	return nil
}

func (s *Simulation) MenuOpen() bool {
	return s.menuOpen
}

// SelectCombination equips c. Both halves must be unlocked unless the
// unlock-all debug setting is on.
func (s *Simulation) SelectCombination(c component.Combination) error {
	if !s.menuOpen {
		return ErrMenuClosed
	}
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return ErrNoPlayer
	}
	if !s.debug.UnlockAllAbilities && (!p.HasEquipment(c.Equipment) || !p.HasElement(c.Element)) {
		return fmt.Errorf("%w: %s", ErrLocked, c)
	}
	p.Combination = c
	s.play(system.SoundBlip1)
	return nil
}

// ApplySpecs swaps in reloaded tuning. The player's movement tuning changes
// immediately; level entities pick the rest up on their next rebuild.
func (s *Simulation) ApplySpecs(specs entity.Specs) {
	s.specs = specs
	s.ability.SetSpecs(specs)
	s.reload.SetSpecs(specs)
	if c, ok := ecs.Get(s.world, s.player, component.ControllableComponent.Kind()); ok {
		c.MaxSpeed = specs.Player.MaxSpeed
		c.JumpVelocity = specs.Player.JumpVelocity
		c.Acceleration = specs.Player.Acceleration
		c.CameraFollow = specs.Player.CameraFollow
		c.AbilityCooldown.SetDuration(specs.Player.AbilityCooldown)
	}
}

// ReloadLevel rebuilds the active level from data.
func (s *Simulation) ReloadLevel() error {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return ErrNoPlayer
	}
	return system.ReloadLevel(s.world, s.set, s.selection.Current(), s.specs, p.Has)
}

func (s *Simulation) play(clip string) {
	if s.sounds != nil {
		s.sounds.Play(clip)
	}
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Player() ecs.Entity {
	return s.player
}

func (s *Simulation) Level() string {
	return s.selection.Current()
}

func (s *Simulation) Levels() *levels.Set {
	return s.set
}

func (s *Simulation) Debug() *system.DebugSettings {
	return s.debug
}

func (s *Simulation) Physics() *system.PhysicsSystem {
	return s.physics
}
