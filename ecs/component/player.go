package component

import "fmt"

// Unlock names a collectable ability.
type Unlock uint8

const (
	UnlockFire Unlock = iota + 1
	UnlockAir
	UnlockWater
	UnlockBoots
	UnlockCloak
)

func (u Unlock) String() string {
	switch u {
	case UnlockFire:
		return "Fire"
	case UnlockAir:
		return "Air"
	case UnlockWater:
		return "Water"
	case UnlockBoots:
		return "Magic Boots"
	case UnlockCloak:
		return "Cloak of Resistance"
	default:
		return "Unknown"
	}
}

func ParseUnlock(s string) (Unlock, error) {
	switch s {
	case "Fire", "fire":
		return UnlockFire, nil
	case "Air", "air":
		return UnlockAir, nil
	case "Water", "water":
		return UnlockWater, nil
	case "Boots", "boots":
		return UnlockBoots, nil
	case "Cloak", "cloak":
		return UnlockCloak, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnlock, s)
}

type Unlocks struct {
	Fire  bool
	Air   bool
	Water bool
	Boots bool
	Cloak bool
}

// Checkpoint is the last safe respawn point.
type Checkpoint struct {
	X     float64
	Y     float64
	Level string
}

// Player aggregates unlock and equip state and the stored checkpoint.
type Player struct {
	Unlocked       Unlocks
	Combination    Combination
	Checkpoint     Checkpoint
	NearCheckpoint bool
}

var PlayerComponent = NewComponent[Player]()

func (p *Player) HasEquipped(e Equipment) bool {
	return e != EquipmentNone && p.Combination.Equipment == e
}

func (p *Player) HasInfused(e Element) bool {
	return e != ElementNone && p.Combination.Element == e
}

func (p *Player) Unlock(u Unlock) {
	switch u {
	case UnlockFire:
		p.Unlocked.Fire = true
	case UnlockAir:
		p.Unlocked.Air = true
	case UnlockWater:
		p.Unlocked.Water = true
	case UnlockBoots:
		p.Unlocked.Boots = true
	case UnlockCloak:
		p.Unlocked.Cloak = true
	}
}

func (p *Player) UnlockAll() {
	p.Unlocked = Unlocks{Fire: true, Air: true, Water: true, Boots: true, Cloak: true}
}

// HasEquipment reports whether e may be selected. The staff is always owned.
func (p *Player) HasEquipment(e Equipment) bool {
	switch e {
	case EquipmentNone, EquipmentStaff:
		return true
	case EquipmentBoots:
		return p.Unlocked.Boots
	case EquipmentCloak:
		return p.Unlocked.Cloak
	}
	return false
}

func (p *Player) HasElement(e Element) bool {
	switch e {
	case ElementNone:
		return true
	case ElementFire:
		return p.Unlocked.Fire
	case ElementAir:
		return p.Unlocked.Air
	case ElementWater:
		return p.Unlocked.Water
	}
	return false
}

// NumEquipment counts owned equipment including the staff.
func (p *Player) NumEquipment() int {
	n := 1
	if p.Unlocked.Boots {
		n++
	}
	if p.Unlocked.Cloak {
		n++
	}
	return n
}

func (p *Player) NumElements() int {
	n := 0
	for _, ok := range []bool{p.Unlocked.Fire, p.Unlocked.Air, p.Unlocked.Water} {
		if ok {
			n++
		}
	}
	return n
}

// Has reports whether u has been collected.
func (p *Player) Has(u Unlock) bool {
	switch u {
	case UnlockFire:
		return p.Unlocked.Fire
	case UnlockAir:
		return p.Unlocked.Air
	case UnlockWater:
		return p.Unlocked.Water
	case UnlockBoots:
		return p.Unlocked.Boots
	case UnlockCloak:
		return p.Unlocked.Cloak
	}
	return false
}
