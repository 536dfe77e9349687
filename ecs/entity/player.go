package entity

import (
	"fmt"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

const playerMask = component.LayerTerrain | component.LayerEnemy | component.LayerMovable |
	component.LayerInteractable | component.LayerLava | component.LayerWater | component.LayerSpikes

// NewPlayer spawns the player at (x, y) with a ground detector child. The
// stored checkpoint starts at the prefab default.
func NewPlayer(w *ecs.World, x, y float64, specs Specs) (ecs.Entity, error) {
	spec := specs.Player
	b := newBuilder(w, "player")
	b.transform(x, y)
	add(b, component.VelocityComponent.Kind(), &component.Velocity{}, "velocity")
	add(b, component.AccelerationComponent.Kind(), &component.Acceleration{}, "acceleration")
	b.body(component.RigidBody{
		Type:    component.BodyDynamic,
		Width:   spec.Collider.Width,
		Height:  spec.Collider.Height,
		OffsetX: spec.Collider.OffsetX,
		OffsetY: spec.Collider.OffsetY,
		Mass:    spec.Mass,
	}, component.LayerPlayerBody, playerMask)

	ctrl := component.NewControllable(component.Tuning{
		MaxSpeed:        spec.MaxSpeed,
		JumpVelocity:    spec.JumpVelocity,
		Acceleration:    spec.Acceleration,
		CameraFollow:    spec.CameraFollow,
		AbilityCooldown: spec.AbilityCooldown,
	})
	add(b, component.ControllableComponent.Kind(), &ctrl, "controllable")
	add(b, component.PlayerComponent.Kind(), &component.Player{
		Checkpoint: component.Checkpoint{
			X:     spec.Checkpoint.X,
			Y:     spec.Checkpoint.Y,
			Level: spec.CheckpointLevel,
		},
	}, "player")

	window, _ := component.FrameWindowFor(component.ActorPlayer, component.StateIdle)
	anim := component.NewAnimated(specs.World.Actor.FrameTime, window.Start, window.End, window.PlayOnce)
	add(b, component.AnimatedComponent.Kind(), &anim, "animated")
	state := component.NewAnimationState(component.ActorPlayer, component.StateIdle)
	add(b, component.AnimationStateComponent.Kind(), &state, "animation state")

	player, err := b.done()
	if err != nil {
		return 0, err
	}

	detector, err := newGroundDetector(w, player, x, y, specs)
	if err != nil {
		ecs.DestroyEntity(w, player)
		return 0, err
	}
	if err := ecs.Add(w, player, component.ChildrenComponent.Kind(), &component.Children{Entities: []uint64{uint64(detector)}}); err != nil {
		ecs.DestroyEntity(w, detector)
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: add children: %w", err)
	}
	return player, nil
}

func newGroundDetector(w *ecs.World, parent ecs.Entity, x, y float64, specs Specs) (ecs.Entity, error) {
	spec := specs.Player.GroundDetector
	b := newBuilder(w, "ground detector")
	b.transform(x+spec.OffsetX, y+spec.OffsetY)
	add(b, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)}, "parent")
	b.body(component.RigidBody{
		Type:    component.BodySensor,
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	}, component.LayerGroundDetector, component.LayerTerrain|component.LayerMovable)
	detector := component.NewGroundDetector(specs.Player.Coyote)
	add(b, component.GroundDetectorComponent.Kind(), &detector, "ground detector")
	return b.done()
}
