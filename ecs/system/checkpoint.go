package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// CheckpointSystem stores the player's respawn point when they touch a
// checkpoint and tracks whether they are standing at one. The player stays
// near a checkpoint while any marker is still occupied.
type CheckpointSystem struct {
	level  LevelSelector
	saver  CheckpointSaver
	sounds SoundPlayer
}

func NewCheckpointSystem(level LevelSelector, saver CheckpointSaver, sounds SoundPlayer) *CheckpointSystem {
	return &CheckpointSystem{
		level:  levelOrStatic(level),
		saver:  saverOrNop(saver),
		sounds: soundOrNop(sounds),
	}
}

func (s *CheckpointSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Collisions() {
		s.touch(w, evt.Kind, evt.A, evt.B)
		s.touch(w, evt.Kind, evt.B, evt.A)
	}
}

func anyOccupied(w *ecs.World) bool {
	occupied := false
	ecs.ForEach(w, component.CheckpointMarkerComponent.Kind(), func(_ ecs.Entity, m *component.CheckpointMarker) {
		occupied = occupied || m.Occupied
	})
	return occupied
}

func (s *CheckpointSystem) touch(w *ecs.World, kind ecs.CollisionEventKind, playerEntity, markerEntity ecs.Entity) {
	player, ok := ecs.Get(w, playerEntity, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	marker, ok := ecs.Get(w, markerEntity, component.CheckpointMarkerComponent.Kind())
	if !ok {
		return
	}

	if kind == ecs.CollisionStopped {
		marker.Occupied = false
		player.NearCheckpoint = anyOccupied(w)
		return
	}
	marker.Occupied = true

	x, y := position(w, markerEntity)
	player.Checkpoint = component.Checkpoint{X: x, Y: y + marker.Lift, Level: s.level.Current()}
	player.NearCheckpoint = true
	s.sounds.Play(SoundPing)
	s.saver.SaveCheckpoint(player.Checkpoint, player.Unlocked)
	w.Events().Push(ecs.Event{Type: ecs.EventCheckpointSaved, Data: player.Checkpoint})
}
