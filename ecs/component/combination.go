package component

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEquipment = errors.New("component: unknown equipment")
	ErrUnknownElement   = errors.New("component: unknown element")
	ErrUnknownUnlock    = errors.New("component: unknown unlock")
)

type Equipment uint8

const (
	EquipmentNone Equipment = iota
	EquipmentStaff
	EquipmentBoots
	EquipmentCloak
)

func (e Equipment) String() string {
	switch e {
	case EquipmentStaff:
		return "Staff"
	case EquipmentBoots:
		return "Magic Boots"
	case EquipmentCloak:
		return "Cloak of Resistance"
	default:
		return "None"
	}
}

func ParseEquipment(s string) (Equipment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EquipmentNone, nil
	case "staff":
		return EquipmentStaff, nil
	case "boots", "magicboots", "magic_boots":
		return EquipmentBoots, nil
	case "cloak":
		return EquipmentCloak, nil
	}
	return EquipmentNone, fmt.Errorf("%w: %q", ErrUnknownEquipment, s)
}

type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementAir
	ElementWater
)

func (e Element) String() string {
	switch e {
	case ElementFire:
		return "Fire"
	case ElementAir:
		return "Air"
	case ElementWater:
		return "Water"
	default:
		return "None"
	}
}

func ParseElement(s string) (Element, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ElementNone, nil
	case "fire":
		return ElementFire, nil
	case "air", "wind":
		return ElementAir, nil
	case "water":
		return ElementWater, nil
	}
	return ElementNone, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}

// Effect is what an equipped combination does.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectFireball
	EffectGust
	EffectSummonWater
	EffectExplosiveJump
	EffectDoubleJump
	EffectSpeedUp
	EffectLavaResistance
	EffectWaterResistance
)

// Combination is the equipment slot paired with the infused element.
type Combination struct {
	Equipment Equipment
	Element   Element
}

type effectEntry struct {
	effect      Effect
	description string
}

var combinationEffects = map[Combination]effectEntry{
	{EquipmentStaff, ElementFire}:  {EffectFireball, "<x> to cast Fireball"},
	{EquipmentStaff, ElementAir}:   {EffectGust, "<x> to cast a gust of wind"},
	{EquipmentStaff, ElementWater}: {EffectSummonWater, "<x> to summon water"},
	{EquipmentBoots, ElementFire}:  {EffectExplosiveJump, "Jump higher with an explosive kick"},
	{EquipmentBoots, ElementAir}:   {EffectDoubleJump, "Double jump"},
	{EquipmentBoots, ElementWater}: {EffectSpeedUp, "Flow like water (movement speed up)"},
	{EquipmentCloak, ElementFire}:  {EffectLavaResistance, "Lava resistance"},
	{EquipmentCloak, ElementWater}: {EffectWaterResistance, "Water resistance"},
}

// Effect looks the pair up; anything not listed has no effect.
func (c Combination) Effect() Effect {
	return combinationEffects[c].effect
}

func (c Combination) Description() string {
	if e, ok := combinationEffects[c]; ok {
		return e.description
	}
	return "No effect"
}

func (c Combination) String() string {
	return c.Equipment.String() + "+" + c.Element.String()
}

// Resists reports whether the combination protects against hazard.
func (c Combination) Resists(h HazardKind) bool {
	switch h {
	case HazardLava:
		return c.Effect() == EffectLavaResistance
	case HazardWater:
		return c.Effect() == EffectWaterResistance
	default:
		return false
	}
}
