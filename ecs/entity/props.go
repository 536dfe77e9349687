package entity

import (
	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/prefabs"
)

const (
	blockMass     = 10.0
	blockFriction = 0.6
	pickupSize    = 20.0
)

// NewTerrain spawns one merged static collider.
func NewTerrain(w *ecs.World, x, y, width, height float64) (ecs.Entity, error) {
	b := newBuilder(w, "terrain")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodyStatic, Width: width, Height: height, Friction: 1}, component.LayerTerrain, component.LayerAll)
	add(b, component.TerrainComponent.Kind(), &component.Terrain{}, "terrain")
	return b.done()
}

// NewBlock spawns a pushable block.
func NewBlock(w *ecs.World, x, y float64) (ecs.Entity, error) {
	b := newBuilder(w, "block")
	b.transform(x, y)
	add(b, component.VelocityComponent.Kind(), &component.Velocity{}, "velocity")
	b.body(component.RigidBody{
		Type:     component.BodyDynamic,
		Width:    common.TileSize,
		Height:   common.TileSize,
		Mass:     blockMass,
		Friction: blockFriction,
	}, component.LayerMovable, component.LayerAll)
	add(b, component.MovableComponent.Kind(), &component.Movable{}, "movable")
	return b.done()
}

// NewWoodBlock spawns static terrain that burns.
func NewWoodBlock(w *ecs.World, x, y float64) (ecs.Entity, error) {
	b := newBuilder(w, "wood block")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodyStatic, Width: common.TileSize, Height: common.TileSize},
		component.LayerTerrain|component.LayerWood, component.LayerAll)
	add(b, component.TerrainComponent.Kind(), &component.Terrain{}, "terrain")
	add(b, component.FlammableComponent.Kind(), &component.Flammable{}, "flammable")
	return b.done()
}

func NewCheckpoint(w *ecs.World, x, y float64, specs Specs) (ecs.Entity, error) {
	b := newBuilder(w, "checkpoint")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodySensor, Width: pickupSize, Height: pickupSize}, component.LayerInteractable, component.LayerAll)
	add(b, component.CheckpointMarkerComponent.Kind(), &component.CheckpointMarker{Lift: specs.Player.CheckpointLift}, "checkpoint")
	b.animated(prefabs.AnimationSpec{FrameTime: specs.World.Actor.FrameTime, Start: 0, End: 9})
	return b.done()
}

// TrophyText is shown when the player reaches the trophy.
const TrophyText = "You Win!\nThanks for playing."

// NewSignpost spawns a sign that shows text while the player is next to it.
func NewSignpost(w *ecs.World, x, y float64, text string) (ecs.Entity, error) {
	b := newBuilder(w, "signpost")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodySensor, Width: pickupSize, Height: pickupSize}, component.LayerInteractable, component.LayerAll)
	add(b, component.SignpostComponent.Kind(), &component.Signpost{}, "signpost")
	add(b, component.ProximityTextComponent.Kind(), &component.ProximityText{Text: text}, "text")
	return b.done()
}

func NewTrophy(w *ecs.World, x, y float64) (ecs.Entity, error) {
	b := newBuilder(w, "trophy")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodySensor, Width: pickupSize, Height: pickupSize}, component.LayerInteractable, component.LayerAll)
	add(b, component.TrophyComponent.Kind(), &component.Trophy{}, "trophy")
	add(b, component.ProximityTextComponent.Kind(), &component.ProximityText{Text: TrophyText}, "text")
	return b.done()
}

// NewAbilityOrb spawns the pickup for unlock. id must be unique across the
// game so a collected orb stays collected.
func NewAbilityOrb(w *ecs.World, x, y float64, id string, unlock component.Unlock, specs Specs) (ecs.Entity, error) {
	b := newBuilder(w, "ability orb")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodySensor, Width: pickupSize, Height: pickupSize}, component.LayerInteractable, component.LayerAll)
	add(b, component.AbilityOrbComponent.Kind(), &component.AbilityOrb{ID: id, Unlock: unlock}, "ability orb")
	b.animated(prefabs.AnimationSpec{FrameTime: specs.World.Actor.FrameTime, Start: 0, End: 6})
	return b.done()
}

// NewAirCurrent spawns a tile of rising air pushing along (dirX, dirY).
func NewAirCurrent(w *ecs.World, x, y, dirX, dirY float64, specs Specs) (ecs.Entity, error) {
	b := newBuilder(w, "air current")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodySensor, Width: common.TileSize, Height: common.TileSize}, component.LayerInteractable, component.LayerAll)
	add(b, component.ForceAreaComponent.Kind(), &component.ForceArea{DirX: dirX, DirY: dirY, Strength: specs.World.FanStrength}, "force area")
	b.animated(prefabs.AnimationSpec{FrameTime: specs.World.Actor.FrameTime, Start: 0, End: 5})
	return b.done()
}

// NewFan spawns the solid base an air current column rises from.
func NewFan(w *ecs.World, x, y float64, specs Specs) (ecs.Entity, error) {
	b := newBuilder(w, "fan")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodyStatic, Width: common.TileSize, Height: 10}, component.LayerTerrain, component.LayerAll)
	add(b, component.TerrainComponent.Kind(), &component.Terrain{}, "terrain")
	b.animated(prefabs.AnimationSpec{FrameTime: specs.World.Actor.FrameTime, Start: 0, End: 4})
	return b.done()
}
