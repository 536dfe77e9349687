package component

// Teleport asks the physics system to move a body to X, Y and clear its
// velocity. It is removed once applied.
type Teleport struct {
	X float64
	Y float64
}

var TeleportComponent = NewComponent[Teleport]()
