package system

import (
	"testing"
	"time"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestAnimationFollowsState(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	state := mustGet(t, w, player, component.AnimationStateComponent.Kind())
	anim := mustGet(t, w, player, component.AnimatedComponent.Kind())
	mapper := NewAnimationMapperSystem()
	playback := NewAnimationPlaybackSystem()

	step(w, mapper, 0)
	assert.False(t, state.Changed())
	assert.Equal(t, 40, anim.Frame)

	state.Set(component.StateWalking)
	step(w, mapper, 0)
	assert.Equal(t, component.FrameWindow{Start: 8, End: 14}, anim.Window())
	assert.Equal(t, 8, anim.Frame)

	step(w, playback, 50*time.Millisecond)
	assert.Equal(t, 8, anim.Frame)
	step(w, playback, 50*time.Millisecond)
	assert.Equal(t, 9, anim.Frame)

	// an unchanged state does not rewind
	state.Set(component.StateWalking)
	step(w, mapper, 0)
	assert.Equal(t, 9, anim.Frame)
}

func TestDeathAnimationHolds(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	mustGet(t, w, player, component.AnimationStateComponent.Kind()).Set(component.StateDeath)
	anim := mustGet(t, w, player, component.AnimatedComponent.Kind())

	step(w, NewAnimationMapperSystem(), 0)
	playback := NewAnimationPlaybackSystem()
	for i := 0; i < 20; i++ {
		step(w, playback, 100*time.Millisecond)
	}
	assert.Equal(t, 7, anim.Frame)
}

func TestAnimationMapperSkipsUnknownStates(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := component.NewAnimated(100*time.Millisecond, 18, 22, false)
	state := component.NewAnimationState(component.ActorEnemy, component.StateJumpUp)
	assert.NoError(t, ecs.Add(w, e, component.AnimatedComponent.Kind(), &anim))
	assert.NoError(t, ecs.Add(w, e, component.AnimationStateComponent.Kind(), &state))

	step(w, NewAnimationMapperSystem(), 0)
	got := mustGet(t, w, e, component.AnimatedComponent.Kind())
	assert.Equal(t, 18, got.Start)
	assert.Equal(t, 22, got.End)
}
