package component

// ForceArea accelerates the player while they overlap it.
type ForceArea struct {
	DirX     float64
	DirY     float64
	Strength float64
}

var ForceAreaComponent = NewComponent[ForceArea]()
