package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// AnimationMapperSystem switches the frame window when an actor's
// animation state changed this tick.
type AnimationMapperSystem struct{}

func NewAnimationMapperSystem() *AnimationMapperSystem {
	return &AnimationMapperSystem{}
}

func (s *AnimationMapperSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AnimationStateComponent.Kind(), component.AnimatedComponent.Kind(), func(_ ecs.Entity, state *component.AnimationState, anim *component.Animated) {
		if !state.Changed() {
			return
		}
		state.ClearChanged()
		if window, ok := component.FrameWindowFor(state.Actor, state.State()); ok {
			anim.SetWindow(window)
			anim.Timer.Reset()
		}
	})
}

// AnimationPlaybackSystem steps every animation by one frame each time its
// frame timer wraps.
type AnimationPlaybackSystem struct{}

func NewAnimationPlaybackSystem() *AnimationPlaybackSystem {
	return &AnimationPlaybackSystem{}
}

func (s *AnimationPlaybackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AnimatedComponent.Kind(), func(_ ecs.Entity, anim *component.Animated) {
		anim.Timer.Tick(w.Delta())
		if anim.Timer.JustFinished() {
			anim.Advance()
		}
	})
}
