package component

import "strings"

// Layer is a collision category bit.
type Layer uint32

const (
	LayerTerrain Layer = 1 << iota
	LayerEnemy
	LayerMovable
	LayerInteractable
	LayerLava
	LayerWater
	LayerSpikes
	LayerPlayerBody
	LayerGroundDetector
	LayerFireball
	LayerWind
	LayerDroplet
	LayerWood

	LayerAll Layer = 1<<32 - 1
)

var layerNames = []string{
	"terrain", "enemy", "movable", "interactable", "lava", "water", "spikes",
	"player_body", "ground_detector", "fireball", "wind", "droplet", "wood",
}

func (l Layer) String() string {
	if l == 0 {
		return "none"
	}
	var parts []string
	for i, name := range layerNames {
		if l&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// CollisionLayer declares an entity's categories and the categories it is
// willing to touch. Two entities interact only when each one's mask covers
// the other's category.
type CollisionLayer struct {
	Category Layer
	Mask     Layer
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

func (c CollisionLayer) Interacts(other CollisionLayer) bool {
	return c.Category&other.Mask != 0 && other.Category&c.Mask != 0
}

func (c CollisionLayer) HasCategory(l Layer) bool {
	return c.Category&l != 0
}

func (c CollisionLayer) HasMask(l Layer) bool {
	return c.Mask&l != 0
}
