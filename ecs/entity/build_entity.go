package entity

import (
	"fmt"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/prefabs"
)

// Specs bundles the prefab tuning the builders read.
type Specs struct {
	Player    prefabs.PlayerSpec
	Abilities prefabs.AbilitiesSpec
	World     prefabs.WorldSpec
}

func DefaultSpecs() Specs {
	return Specs{
		Player:    prefabs.DefaultPlayerSpec(),
		Abilities: prefabs.DefaultAbilitiesSpec(),
		World:     prefabs.DefaultWorldSpec(),
	}
}

// LoadSpecs reads every prefab, falling back to defaults for any that fail.
// The first failure is returned alongside the usable result.
func LoadSpecs() (Specs, error) {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	player, err := prefabs.LoadPlayerSpec()
	keep(err)
	abilities, err := prefabs.LoadAbilitiesSpec()
	keep(err)
	world, err := prefabs.LoadWorldSpec()
	keep(err)
	return Specs{Player: player, Abilities: abilities, World: world}, firstErr
}

// builder collects the first error while a bundle is assembled so each
// builder reads as a flat list of components.
type builder struct {
	w    *ecs.World
	e    ecs.Entity
	name string
	err  error
}

func newBuilder(w *ecs.World, name string) *builder {
	return &builder{w: w, e: ecs.CreateEntity(w), name: name}
}

func add[T any](b *builder, kind component.ComponentKind[T], value *T, what string) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.e, kind, value); err != nil {
		b.err = fmt.Errorf("%s: add %s: %w", b.name, what, err)
	}
}

// done returns the entity, or destroys the partial bundle on error.
func (b *builder) done() (ecs.Entity, error) {
	if b.err != nil {
		ecs.DestroyEntity(b.w, b.e)
		return 0, b.err
	}
	return b.e, nil
}

func (b *builder) transform(x, y float64) {
	add(b, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}, "transform")
}

func (b *builder) body(rb component.RigidBody, category, mask component.Layer) {
	add(b, component.RigidBodyComponent.Kind(), &rb, "rigid body")
	add(b, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: category, Mask: mask}, "collision layer")
}

func (b *builder) animated(spec prefabs.AnimationSpec) {
	a := component.NewAnimated(spec.FrameTime, spec.Start, spec.End, false)
	add(b, component.AnimatedComponent.Kind(), &a, "animated")
}

// SetLevel tags e as belonging to level.
func SetLevel(w *ecs.World, e ecs.Entity, level string) error {
	if err := ecs.Add(w, e, component.LevelMemberComponent.Kind(), &component.LevelMember{Level: level}); err != nil {
		return fmt.Errorf("entity: tag level %s: %w", level, err)
	}
	return nil
}
