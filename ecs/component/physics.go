package component

import "github.com/jakecoffman/cp"

type BodyType uint8

const (
	BodyDynamic BodyType = iota
	BodyStatic
	// BodyKinematic moves by velocity only and ignores gravity and contacts.
	BodyKinematic
	// BodySensor reports contacts without a physical response.
	BodySensor
)

func (b BodyType) String() string {
	switch b {
	case BodyDynamic:
		return "dynamic"
	case BodyStatic:
		return "static"
	case BodyKinematic:
		return "kinematic"
	case BodySensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// RigidBody stores Chipmunk2D runtime data and collider configuration.
// Width and Height are full extents centred on the Transform plus offset.
// Body and Shape are owned by the physics system.
type RigidBody struct {
	Type     BodyType
	Width    float64
	Height   float64
	OffsetX  float64
	OffsetY  float64
	Mass     float64
	Friction float64
	// NoGravity keeps a dynamic body from accelerating under world gravity.
	NoGravity bool
	Body      *cp.Body
	Shape     *cp.Shape
}

var RigidBodyComponent = NewComponent[RigidBody]()
