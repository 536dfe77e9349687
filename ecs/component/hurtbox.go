package component

type HazardKind uint8

const (
	HazardGeneric HazardKind = iota
	HazardLava
	HazardWater
)

func (h HazardKind) String() string {
	switch h {
	case HazardLava:
		return "lava"
	case HazardWater:
		return "water"
	default:
		return "generic"
	}
}

// Hurtbox marks contact with the entity as lethal to the player.
type Hurtbox struct {
	Hazard HazardKind
}

var HurtboxComponent = NewComponent[Hurtbox]()
