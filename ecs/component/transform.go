package component

// Transform is the world position of an entity's centre. Y points up.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
