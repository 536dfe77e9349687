package system

import (
	"testing"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/milk9111/elemental/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const levelA = `
name: a
origin: {x: 0, y: 32}
tiles:
  - "L..."
  - "####"
spawns:
  - {kind: orb, id: a_fire, unlock: fire, col: 2, row: 0}
`

const levelB = `
name: b
origin: {x: 64, y: 32}
tiles:
  - "...."
  - "####"
`

func testSet(t *testing.T) *levels.Set {
	t.Helper()
	a, err := levels.ParseGrid([]byte(levelA))
	require.NoError(t, err)
	b, err := levels.ParseGrid([]byte(levelB))
	require.NoError(t, err)
	return levels.NewSet(a, b)
}

func requestReload(t *testing.T, w *ecs.World, level string) {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.LevelReloadRequestComponent.Kind(), &component.LevelReloadRequest{Level: level}))
}

func TestLevelReloadRestoresLevel(t *testing.T) {
	set := testSet(t)
	w := ecs.NewWorld()
	specs := entity.DefaultSpecs()
	player := newTestPlayer(t, w)
	none := func(component.Unlock) bool { return false }
	require.NoError(t, ReloadLevel(w, set, "a", specs, none))

	lava, ok := ecs.First(w, component.LavaComponent.Kind())
	require.True(t, ok)
	petrify(w, lava)
	require.Empty(t, w.Query(component.LavaComponent.Kind()))

	mustGet(t, w, player, component.PlayerComponent.Kind()).Unlock(component.UnlockFire)
	requestReload(t, w, "a")
	requestReload(t, w, "a")
	step(w, NewLevelReloadSystem(set, specs), 0)

	assert.Len(t, w.Query(component.LavaComponent.Kind()), 1)
	assert.Empty(t, w.Query(component.AbilityOrbComponent.Kind()), "owned orbs stay collected")
	assert.Empty(t, w.Query(component.LevelReloadRequestComponent.Kind()))
	assert.Len(t, w.Query(component.TerrainComponent.Kind()), 1)
	assert.True(t, w.IsAlive(player))
}

func TestLevelReloadUnknownLevel(t *testing.T) {
	w := ecs.NewWorld()
	requestReload(t, w, "nowhere")
	step(w, NewLevelReloadSystem(testSet(t), entity.DefaultSpecs()), 0)
	assert.Empty(t, w.Query(component.LevelReloadRequestComponent.Kind()))

	err := ReloadLevel(w, testSet(t), "nowhere", entity.DefaultSpecs(), nil)
	assert.ErrorIs(t, err, levels.ErrUnknownLevel)
}

func TestLevelTrack(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	level := &StaticLevel{Level: "a"}
	sys := NewLevelTrackSystem(testSet(t), level)

	tr := mustGet(t, w, player, component.TransformComponent.Kind())
	tr.X, tr.Y = 80, 16
	step(w, sys, 0)
	assert.Equal(t, "b", level.Current())

	// outside every level the selection sticks
	tr.X = 1000
	step(w, sys, 0)
	assert.Equal(t, "b", level.Current())
}
