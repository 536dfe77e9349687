package entity

import (
	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// Liquid surfaces are a thin strip along the top of their tile.
const liquidHeight = 2.0

// liquidSurface returns the centre of the strip for the tile centred on y.
func liquidSurface(y float64) float64 {
	return y + common.TileSize/2 - liquidHeight/2
}

// NewLava fills the tile centred on (x, y). Only its surface is solid enough
// to touch.
func NewLava(w *ecs.World, x, y float64, specs Specs) (ecs.Entity, error) {
	b := newBuilder(w, "lava")
	b.transform(x, liquidSurface(y))
	b.body(component.RigidBody{Type: component.BodySensor, Width: common.TileSize, Height: liquidHeight}, component.LayerLava, component.LayerAll)
	add(b, component.LavaComponent.Kind(), &component.Lava{}, "lava")
	add(b, component.HurtboxComponent.Kind(), &component.Hurtbox{Hazard: component.HazardLava}, "hurtbox")
	b.animated(specs.World.Lava)
	return b.done()
}

func NewWater(w *ecs.World, x, y float64, specs Specs) (ecs.Entity, error) {
	b := newBuilder(w, "water")
	b.transform(x, liquidSurface(y))
	b.body(component.RigidBody{Type: component.BodySensor, Width: common.TileSize, Height: liquidHeight}, component.LayerWater, component.LayerAll)
	add(b, component.WaterComponent.Kind(), &component.Water{}, "water")
	add(b, component.HurtboxComponent.Kind(), &component.Hurtbox{Hazard: component.HazardWater}, "hurtbox")
	b.animated(specs.World.Water)
	return b.done()
}

// NewSpikes spawns a lethal strip of width by height centred on (x, y).
func NewSpikes(w *ecs.World, x, y, width, height float64) (ecs.Entity, error) {
	b := newBuilder(w, "spikes")
	b.transform(x, y)
	b.body(component.RigidBody{Type: component.BodySensor, Width: width, Height: height}, component.LayerSpikes, component.LayerAll)
	add(b, component.HurtboxComponent.Kind(), &component.Hurtbox{Hazard: component.HazardGeneric}, "hurtbox")
	return b.done()
}
