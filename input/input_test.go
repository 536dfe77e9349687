package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	held    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	pad     *fakePad
}

func (f fakeSource) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f fakeSource) JustPressed(k ebiten.Key) bool { return f.pressed[k] }

func (f fakeSource) Gamepad() (Gamepad, bool) {
	if f.pad == nil {
		return nil, false
	}
	return f.pad, true
}

type fakePad struct {
	x       float64
	held    map[ebiten.StandardGamepadButton]bool
	pressed map[ebiten.StandardGamepadButton]bool
}

func (p *fakePad) Axis(a ebiten.StandardGamepadAxis) float64 {
	if a == ebiten.StandardGamepadAxisLeftStickHorizontal {
		return p.x
	}
	return 0
}

func (p *fakePad) Pressed(b ebiten.StandardGamepadButton) bool     { return p.held[b] || p.pressed[b] }
func (p *fakePad) JustPressed(b ebiten.StandardGamepadButton) bool { return p.pressed[b] }

func TestReadKeyboard(t *testing.T) {
	f := Read(fakeSource{
		held:    map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true},
		pressed: map[ebiten.Key]bool{ebiten.KeyE: true, ebiten.KeyEscape: true},
	})

	assert.True(t, f.Intent.Left)
	assert.False(t, f.Intent.Right)
	assert.False(t, f.Intent.Jump, "held jump only fires on the press frame")
	assert.True(t, f.Intent.Interact)
	assert.False(t, f.Intent.Ability)
	assert.True(t, f.Close)
}

func TestReadGamepad(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		wantLeft  bool
		wantRight bool
		keys      []ebiten.Key
	}{
		{name: "stick right", x: 0.8, wantRight: true},
		{name: "stick left", x: -0.5, wantLeft: true},
		{name: "deadzone keeps keyboard", x: 0.1, wantLeft: true, keys: []ebiten.Key{ebiten.KeyArrowLeft}},
		{name: "stick overrides keyboard", x: 0.9, wantRight: true, keys: []ebiten.Key{ebiten.KeyArrowLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := map[ebiten.Key]bool{}
			for _, k := range tt.keys {
				held[k] = true
			}
			f := Read(fakeSource{held: held, pad: &fakePad{x: tt.x}})
			assert.Equal(t, tt.wantLeft, f.Intent.Left)
			assert.Equal(t, tt.wantRight, f.Intent.Right)
		})
	}

	f := Read(fakeSource{pad: &fakePad{pressed: map[ebiten.StandardGamepadButton]bool{
		ebiten.StandardGamepadButtonRightBottom: true,
		ebiten.StandardGamepadButtonRightLeft:   true,
	}}})
	assert.True(t, f.Intent.Jump)
	assert.True(t, f.Intent.Ability)
	assert.False(t, f.Intent.Restart)

	f = Read(fakeSource{pad: &fakePad{held: map[ebiten.StandardGamepadButton]bool{
		ebiten.StandardGamepadButtonRightBottom: true,
		ebiten.StandardGamepadButtonRightLeft:   true,
	}}})
	assert.False(t, f.Intent.Jump, "a held jump button does not jump again")
	assert.True(t, f.Intent.Ability, "a held ability button keeps casting")
}

func TestHeldAbilityKeyKeepsCasting(t *testing.T) {
	for _, k := range abilityKeys {
		f := Read(fakeSource{held: map[ebiten.Key]bool{k: true}})
		assert.True(t, f.Intent.Ability, "held %v", k)
		assert.False(t, f.Intent.Interact)
	}
}
