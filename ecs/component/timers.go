package component

import "github.com/milk9111/elemental/common"

// RespawnTimer runs between death and respawn. Restore is the control
// component handed back when it finishes.
type RespawnTimer struct {
	Timer   common.Timer
	Restore Controllable
}

var RespawnTimerComponent = NewComponent[RespawnTimer]()

// DestructionTimer destroys its entity when it finishes.
type DestructionTimer struct {
	Timer common.Timer
}

var DestructionTimerComponent = NewComponent[DestructionTimer]()
