package system

import "github.com/milk9111/elemental/ecs/component"

// Sound clip names understood by the SoundPlayer.
const (
	SoundBGM       = "bgm"
	SoundJump      = "jump"
	SoundDeath     = "death"
	SoundExplosion = "explosion"
	SoundCollect   = "collect"
	SoundFireball  = "fireball"
	SoundAir       = "air"
	SoundSteam     = "steam"
	SoundPew       = "pew"
	SoundHurt      = "hurt"
	SoundPing      = "ping"
	SoundBlip1     = "blip1"
	SoundBlip2     = "blip2"
)

// Cosmetic effect names understood by the EffectSpawner.
const (
	EffectJumpDust  = "jump_dust"
	EffectExplosion = "explosion"
	EffectPuff      = "puff"
	EffectSteam     = "steam"
)

// SoundPlayer plays a clip without blocking.
type SoundPlayer interface {
	Play(clip string)
}

// EffectSpawner spawns a purely visual effect at a world position.
type EffectSpawner interface {
	Spawn(effect string, x, y float64)
}

// LevelSelector is the read/write cell holding the active level.
type LevelSelector interface {
	Current() string
	Select(level string)
}

// CheckpointSaver persists checkpoint data. Failures are the saver's concern.
type CheckpointSaver interface {
	SaveCheckpoint(cp component.Checkpoint, unlocked component.Unlocks)
}

type nopSound struct{}

func (nopSound) Play(string) {}

type nopEffects struct{}

func (nopEffects) Spawn(string, float64, float64) {}

type nopSaver struct{}

func (nopSaver) SaveCheckpoint(component.Checkpoint, component.Unlocks) {}

// StaticLevel is a LevelSelector backed by a plain string.
type StaticLevel struct {
	Level string
}

func (s *StaticLevel) Current() string {
	return s.Level
}

func (s *StaticLevel) Select(level string) {
	s.Level = level
}

func soundOrNop(s SoundPlayer) SoundPlayer {
	if s == nil {
		return nopSound{}
	}
	return s
}

func effectsOrNop(e EffectSpawner) EffectSpawner {
	if e == nil {
		return nopEffects{}
	}
	return e
}

func saverOrNop(s CheckpointSaver) CheckpointSaver {
	if s == nil {
		return nopSaver{}
	}
	return s
}

func levelOrStatic(l LevelSelector) LevelSelector {
	if l == nil {
		return &StaticLevel{}
	}
	return l
}
