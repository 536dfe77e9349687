// Package input decodes keyboard and gamepad state into a simulation Intent.
package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/elemental/sim"
)

const stickDeadzone = 0.2

// Source is the device state an Intent is decoded from.
type Source interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Gamepad() (Gamepad, bool)
}

// Gamepad is the first connected standard gamepad.
type Gamepad interface {
	Axis(a ebiten.StandardGamepadAxis) float64
	Pressed(b ebiten.StandardGamepadButton) bool
	JustPressed(b ebiten.StandardGamepadButton) bool
}

// Frame is the decoded input of one frame, including the host-only buttons
// that never reach the simulation.
type Frame struct {
	Intent sim.Intent
	Close  bool
	Debug  bool
}

var (
	leftKeys     = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys    = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys     = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	interactKeys = []ebiten.Key{ebiten.KeyE}
	abilityKeys  = []ebiten.Key{ebiten.KeyX, ebiten.KeyJ}
	restartKeys  = []ebiten.Key{ebiten.KeyR}
	closeKeys    = []ebiten.Key{ebiten.KeyEscape}
	debugKeys    = []ebiten.Key{ebiten.KeyF3}
)

// Read decodes src. Movement and the ability are held, so holding the
// ability button recasts whenever the cooldown allows; every other button
// fires on the frame it goes down.
func Read(src Source) Frame {
	var f Frame
	f.Intent.Left = anyPressed(src, leftKeys)
	f.Intent.Right = anyPressed(src, rightKeys)
	f.Intent.Jump = anyJustPressed(src, jumpKeys)
	f.Intent.Interact = anyJustPressed(src, interactKeys)
	f.Intent.Ability = anyPressed(src, abilityKeys)
	f.Intent.Restart = anyJustPressed(src, restartKeys)
	f.Close = anyJustPressed(src, closeKeys)
	f.Debug = anyJustPressed(src, debugKeys)

	pad, ok := src.Gamepad()
	if !ok {
		return f
	}
	x := pad.Axis(ebiten.StandardGamepadAxisLeftStickHorizontal)
	if math.Abs(x) > stickDeadzone {
		f.Intent.Left = x < 0
		f.Intent.Right = x > 0
	}
	f.Intent.Jump = f.Intent.Jump || pad.JustPressed(ebiten.StandardGamepadButtonRightBottom)
	f.Intent.Ability = f.Intent.Ability || pad.Pressed(ebiten.StandardGamepadButtonRightLeft)
	f.Intent.Interact = f.Intent.Interact || pad.JustPressed(ebiten.StandardGamepadButtonRightTop)
	f.Intent.Restart = f.Intent.Restart || pad.JustPressed(ebiten.StandardGamepadButtonCenterLeft)
	f.Close = f.Close || pad.JustPressed(ebiten.StandardGamepadButtonRightRight)
	return f
}

func anyPressed(src Source, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(src Source, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.JustPressed(k) {
			return true
		}
	}
	return false
}

// Ebiten reads the live ebiten input state.
type Ebiten struct{}

func (Ebiten) Pressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (Ebiten) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (Ebiten) Gamepad() (Gamepad, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return nil, false
	}
	return ebitenPad(ids[0]), true
}

type ebitenPad ebiten.GamepadID

func (p ebitenPad) Axis(a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(ebiten.GamepadID(p), a)
}

func (p ebitenPad) Pressed(b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(ebiten.GamepadID(p), b)
}

func (p ebitenPad) JustPressed(b ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(ebiten.GamepadID(p), b)
}
