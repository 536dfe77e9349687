package component

// ProximityText is a message shown while the player stands next to its
// entity.
type ProximityText struct {
	Text    string
	Visible bool
}

var ProximityTextComponent = NewComponent[ProximityText]()

type Signpost struct{}

var SignpostComponent = NewComponent[Signpost]()

// Trophy marks the end of the game.
type Trophy struct{}

var TrophyComponent = NewComponent[Trophy]()
