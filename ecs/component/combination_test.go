package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinationTable(t *testing.T) {
	cases := []struct {
		equipment Equipment
		element   Element
		effect    Effect
		desc      string
	}{
		{EquipmentStaff, ElementFire, EffectFireball, "<x> to cast Fireball"},
		{EquipmentStaff, ElementAir, EffectGust, "<x> to cast a gust of wind"},
		{EquipmentStaff, ElementWater, EffectSummonWater, "<x> to summon water"},
		{EquipmentBoots, ElementFire, EffectExplosiveJump, "Jump higher with an explosive kick"},
		{EquipmentBoots, ElementAir, EffectDoubleJump, "Double jump"},
		{EquipmentBoots, ElementWater, EffectSpeedUp, "Flow like water (movement speed up)"},
		{EquipmentCloak, ElementFire, EffectLavaResistance, "Lava resistance"},
		{EquipmentCloak, ElementWater, EffectWaterResistance, "Water resistance"},
		{EquipmentCloak, ElementAir, EffectNone, "No effect"},
		{EquipmentStaff, ElementNone, EffectNone, "No effect"},
		{EquipmentNone, ElementFire, EffectNone, "No effect"},
	}
	for _, c := range cases {
		combo := Combination{Equipment: c.equipment, Element: c.element}
		t.Run(combo.String(), func(t *testing.T) {
			assert.Equal(t, c.effect, combo.Effect())
			assert.Equal(t, c.desc, combo.Description())
		})
	}
}

func TestCombinationResists(t *testing.T) {
	lava := Combination{EquipmentCloak, ElementFire}
	water := Combination{EquipmentCloak, ElementWater}

	assert.True(t, lava.Resists(HazardLava))
	assert.False(t, lava.Resists(HazardWater))
	assert.True(t, water.Resists(HazardWater))
	assert.False(t, water.Resists(HazardLava))
	assert.False(t, lava.Resists(HazardGeneric))
	assert.False(t, water.Resists(HazardGeneric))
}

func TestParseEquipmentAndElement(t *testing.T) {
	eq, err := ParseEquipment("Boots")
	require.NoError(t, err)
	assert.Equal(t, EquipmentBoots, eq)

	el, err := ParseElement("wind")
	require.NoError(t, err)
	assert.Equal(t, ElementAir, el)

	_, err = ParseEquipment("hat")
	assert.ErrorIs(t, err, ErrUnknownEquipment)
	_, err = ParseElement("ice")
	assert.ErrorIs(t, err, ErrUnknownElement)
	_, err = ParseUnlock("ice")
	assert.ErrorIs(t, err, ErrUnknownUnlock)
}

func TestPlayerOwnership(t *testing.T) {
	p := &Player{}
	assert.True(t, p.HasEquipment(EquipmentStaff))
	assert.False(t, p.HasEquipment(EquipmentBoots))
	assert.False(t, p.HasElement(ElementFire))
	assert.Equal(t, 1, p.NumEquipment())
	assert.Equal(t, 0, p.NumElements())

	p.Unlock(UnlockBoots)
	p.Unlock(UnlockWater)
	assert.True(t, p.HasEquipment(EquipmentBoots))
	assert.True(t, p.HasElement(ElementWater))
	assert.True(t, p.Has(UnlockWater))
	assert.False(t, p.Has(UnlockFire))
	assert.Equal(t, 2, p.NumEquipment())
	assert.Equal(t, 1, p.NumElements())

	p.Combination = Combination{EquipmentStaff, ElementWater}
	assert.True(t, p.HasEquipped(EquipmentStaff))
	assert.True(t, p.HasInfused(ElementWater))
	assert.False(t, p.HasEquipped(EquipmentNone))

	p.UnlockAll()
	assert.Equal(t, 3, p.NumEquipment())
	assert.Equal(t, 3, p.NumElements())
}
