package common

import "time"

const (
	// Gravity is applied along Y; the world is Y-up.
	Gravity = -500.0

	TileSize = 16.0

	TicksPerSecond = 60
	FixedStep      = time.Second / TicksPerSecond
)

// Logical screen size the host lays out to.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
