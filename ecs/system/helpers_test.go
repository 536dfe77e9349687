package system

import (
	"testing"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/stretchr/testify/require"
)

type recordingSound struct {
	clips []string
}

func (r *recordingSound) Play(clip string) {
	r.clips = append(r.clips, clip)
}

type recordingEffects struct {
	effects []string
}

func (r *recordingEffects) Spawn(effect string, _, _ float64) {
	r.effects = append(r.effects, effect)
}

type recordingSaver struct {
	saved []component.Checkpoint
}

func (r *recordingSaver) SaveCheckpoint(cp component.Checkpoint, _ component.Unlocks) {
	r.saved = append(r.saved, cp)
}

// step runs one system for one tick of d and flushes the tick's events.
func step(w *ecs.World, sys ecs.System, d time.Duration) {
	w.SetDelta(d)
	sys.Update(w)
	w.EndTick()
}

func started(w *ecs.World, a, b ecs.Entity) {
	w.Events().PushCollision(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: a, B: b})
}

func stopped(w *ecs.World, a, b ecs.Entity) {
	w.Events().PushCollision(ecs.CollisionEvent{Kind: ecs.CollisionStopped, A: a, B: b})
}

func newTestPlayer(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, 0, 0, entity.DefaultSpecs())
	require.NoError(t, err)
	return e
}

func detectorEntity(t *testing.T, w *ecs.World, player ecs.Entity) ecs.Entity {
	t.Helper()
	children, ok := ecs.Get(w, player, component.ChildrenComponent.Kind())
	require.True(t, ok)
	require.Len(t, children.Entities, 1)
	return ecs.Entity(children.Entities[0])
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}

func equip(t *testing.T, w *ecs.World, player ecs.Entity, eq component.Equipment, el component.Element) {
	t.Helper()
	p := mustGet(t, w, player, component.PlayerComponent.Kind())
	p.UnlockAll()
	p.Combination = component.Combination{Equipment: eq, Element: el}
}
