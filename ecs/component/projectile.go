package component

type ProjectileKind uint8

const (
	ProjectileFire ProjectileKind = iota + 1
	ProjectileWind
	ProjectileWater
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileFire:
		return "fire"
	case ProjectileWind:
		return "wind"
	case ProjectileWater:
		return "water"
	default:
		return "unknown"
	}
}

type Projectile struct {
	Kind ProjectileKind
}

var ProjectileComponent = NewComponent[Projectile]()
