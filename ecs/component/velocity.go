package component

type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Acceleration is an external linear acceleration integrated into Velocity by
// the physics step, such as the push of an air current.
type Acceleration struct {
	X float64
	Y float64
}

var AccelerationComponent = NewComponent[Acceleration]()
