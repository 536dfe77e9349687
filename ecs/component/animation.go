package component

import (
	"time"

	"github.com/milk9111/elemental/common"
)

// FrameWindow is a half-open frame range [Start, End).
type FrameWindow struct {
	Start    int
	End      int
	PlayOnce bool
}

// Animated advances Frame through its window whenever the frame timer wraps.
type Animated struct {
	Timer    common.Timer
	Start    int
	End      int
	PlayOnce bool
	Frame    int
}

var AnimatedComponent = NewComponent[Animated]()

func NewAnimated(perFrame time.Duration, start, end int, playOnce bool) Animated {
	return Animated{
		Timer:    common.NewTimer(perFrame, true),
		Start:    start,
		End:      end,
		PlayOnce: playOnce,
		Frame:    start,
	}
}

// SetWindow switches to w and rewinds to its first frame.
func (a *Animated) SetWindow(w FrameWindow) {
	a.Start = w.Start
	a.End = w.End
	a.PlayOnce = w.PlayOnce
	a.Frame = w.Start
}

func (a *Animated) Window() FrameWindow {
	return FrameWindow{Start: a.Start, End: a.End, PlayOnce: a.PlayOnce}
}

// Advance steps one frame, wrapping inside the window. A play-once window
// collapses onto its last frame when that frame is reached.
func (a *Animated) Advance() {
	span := a.End - a.Start
	if span <= 0 {
		return
	}
	if a.Frame < a.Start {
		a.Frame = a.Start
	}
	a.Frame = (a.Frame-a.Start+1)%span + a.Start
	if a.PlayOnce && a.Frame+1 == a.End {
		a.Start = a.Frame
	}
}

type Actor uint8

const (
	ActorPlayer Actor = iota + 1
	ActorEnemy
)

type AnimState uint8

const (
	StateIdle AnimState = iota
	StateWalking
	StateJumpUp
	StateJumpDown
	StateDeath
)

func (s AnimState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumpUp:
		return "jump_up"
	case StateJumpDown:
		return "jump_down"
	case StateDeath:
		return "death"
	default:
		return "unknown"
	}
}

var frameWindows = map[Actor]map[AnimState]FrameWindow{
	ActorPlayer: {
		StateIdle:     {Start: 40, End: 44},
		StateWalking:  {Start: 8, End: 14},
		StateJumpUp:   {Start: 56, End: 59},
		StateJumpDown: {Start: 48, End: 51},
		StateDeath:    {Start: 0, End: 8, PlayOnce: true},
	},
	ActorEnemy: {
		StateIdle:    {Start: 18, End: 22},
		StateWalking: {Start: 0, End: 6},
		StateDeath:   {Start: 6, End: 12, PlayOnce: true},
	},
}

// FrameWindowFor maps a state to its frames. States an actor does not have
// report false.
func FrameWindowFor(actor Actor, state AnimState) (FrameWindow, bool) {
	w, ok := frameWindows[actor][state]
	return w, ok
}

// AnimationState is the discrete gameplay state of an actor. Set records a
// change only when the state actually differs.
type AnimationState struct {
	Actor   Actor
	state   AnimState
	changed bool
}

var AnimationStateComponent = NewComponent[AnimationState]()

func NewAnimationState(actor Actor, s AnimState) AnimationState {
	return AnimationState{Actor: actor, state: s, changed: true}
}

func (a *AnimationState) State() AnimState {
	return a.state
}

func (a *AnimationState) Set(s AnimState) bool {
	if a.state == s {
		return false
	}
	a.state = s
	a.changed = true
	return true
}

func (a *AnimationState) Changed() bool {
	return a.changed
}

func (a *AnimationState) ClearChanged() {
	a.changed = false
}
