package system

import (
	"log"
	"time"

	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// DamageDetectSystem marks a player Killed on contact with a hurtbox unless
// they are immortal or their combination resists that hazard.
type DamageDetectSystem struct {
	debug *DebugSettings
}

func NewDamageDetectSystem(debug *DebugSettings) *DamageDetectSystem {
	if debug == nil {
		debug = &DebugSettings{}
	}
	return &DamageDetectSystem{debug: debug}
}

func (s *DamageDetectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Collisions() {
		if evt.Kind != ecs.CollisionStarted {
			continue
		}
		s.detect(w, evt.A, evt.B)
		s.detect(w, evt.B, evt.A)
	}
}

func (s *DamageDetectSystem) detect(w *ecs.World, playerEntity, hazardEntity ecs.Entity) {
	player, ok := ecs.Get(w, playerEntity, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	hurtbox, ok := ecs.Get(w, hazardEntity, component.HurtboxComponent.Kind())
	if !ok {
		return
	}
	if s.debug.Immortal || player.Combination.Resists(hurtbox.Hazard) {
		return
	}
	if ecs.Has(w, playerEntity, component.KilledComponent.Kind()) {
		return
	}
	if err := ecs.Add(w, playerEntity, component.KilledComponent.Kind(), &component.Killed{}); err != nil {
		log.Printf("DamageDetectSystem: mark %v killed: %v", playerEntity, err)
	}
}

// KillSystem moves newly killed players into the death state: death
// animation, no velocity, no control, respawn timer running.
type KillSystem struct {
	Respawn time.Duration
	sounds  SoundPlayer
}

func NewKillSystem(respawn time.Duration, sounds SoundPlayer) *KillSystem {
	return &KillSystem{Respawn: respawn, sounds: soundOrNop(sounds)}
}

func (s *KillSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.KilledComponent.Kind(), func(e ecs.Entity, _ *component.Killed) {
		if ecs.Has(w, e, component.RespawnTimerComponent.Kind()) {
			return
		}

		if state, ok := ecs.Get(w, e, component.AnimationStateComponent.Kind()); ok {
			state.Set(component.StateDeath)
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v.X, v.Y = 0, 0
		}
		if a, ok := ecs.Get(w, e, component.AccelerationComponent.Kind()); ok {
			a.X, a.Y = 0, 0
		}

		timer := &component.RespawnTimer{Timer: common.NewTimer(s.Respawn, false)}
		if c, ok := ecs.Get(w, e, component.ControllableComponent.Kind()); ok {
			timer.Restore = *c
			ecs.Remove(w, e, component.ControllableComponent.Kind())
		}
		if err := ecs.Add(w, e, component.RespawnTimerComponent.Kind(), timer); err != nil {
			log.Printf("KillSystem: start respawn timer for %v: %v", e, err)
			return
		}
		s.sounds.Play(SoundDeath)
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerKilled, Data: e})
	})
}

// RespawnSystem brings dead players back at their checkpoint once the
// respawn timer finishes, and serves restart requests the same way.
type RespawnSystem struct {
	level LevelSelector
}

func NewRespawnSystem(level LevelSelector) *RespawnSystem {
	return &RespawnSystem{level: levelOrStatic(level)}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnTimerComponent.Kind(), func(e ecs.Entity, rt *component.RespawnTimer) {
		rt.Timer.Tick(w.Delta())
		if rt.Timer.Finished() {
			s.revive(w, e, rt)
		}
	})

	ecs.ForEach(w, component.RestartRequestComponent.Kind(), func(e ecs.Entity, _ *component.RestartRequest) {
		ecs.Remove(w, e, component.RestartRequestComponent.Kind())
		if rt, ok := ecs.Get(w, e, component.RespawnTimerComponent.Kind()); ok {
			s.revive(w, e, rt)
			return
		}
		s.returnToCheckpoint(w, e)
	})
}

func (s *RespawnSystem) revive(w *ecs.World, e ecs.Entity, rt *component.RespawnTimer) {
	ctrl := rt.Restore
	ctrl.ClearIntent()
	if err := ecs.Add(w, e, component.ControllableComponent.Kind(), &ctrl); err != nil {
		log.Printf("RespawnSystem: restore control of %v: %v", e, err)
	}
	ecs.Remove(w, e, component.RespawnTimerComponent.Kind())
	ecs.Remove(w, e, component.KilledComponent.Kind())
	s.returnToCheckpoint(w, e)
}

// returnToCheckpoint moves e to its stored checkpoint, selects the
// checkpoint's level, asks for that level to be rebuilt and forgets every
// ground contact.
func (s *RespawnSystem) returnToCheckpoint(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	cp := player.Checkpoint

	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = cp.X, cp.Y
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = 0, 0
	}
	if a, ok := ecs.Get(w, e, component.AccelerationComponent.Kind()); ok {
		a.X, a.Y = 0, 0
	}
	if err := ecs.Add(w, e, component.TeleportComponent.Kind(), &component.Teleport{X: cp.X, Y: cp.Y}); err != nil {
		log.Printf("RespawnSystem: teleport %v: %v", e, err)
	}
	if cp.Level != "" {
		s.level.Select(cp.Level)
	}
	if level := s.level.Current(); level != "" {
		req := ecs.CreateEntity(w)
		if err := ecs.Add(w, req, component.LevelReloadRequestComponent.Kind(), &component.LevelReloadRequest{Level: level}); err != nil {
			log.Printf("RespawnSystem: request reload of %s: %v", level, err)
		}
	}
	if d, ok := groundDetectorOf(w, e); ok {
		d.ResetCollisions()
	}
	if state, ok := ecs.Get(w, e, component.AnimationStateComponent.Kind()); ok {
		state.Set(component.StateIdle)
	}
	player.NearCheckpoint = false
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerRespawned, Data: cp})
}
