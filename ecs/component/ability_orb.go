package component

// AbilityOrb is a pickup that unlocks an ability. ID identifies the orb
// across level reloads.
type AbilityOrb struct {
	ID     string
	Unlock Unlock
}

var AbilityOrbComponent = NewComponent[AbilityOrb]()
