package levels

import (
	"errors"

	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs/component"
)

var (
	ErrUnknownTile  = errors.New("levels: unknown tile")
	ErrUnknownKind  = errors.New("levels: unknown spawn kind")
	ErrUnknownLevel = errors.New("levels: unknown level")
	ErrBadLevel     = errors.New("levels: malformed level")
)

// Kind names a level entity.
type Kind string

const (
	KindPlayer     Kind = "player"
	KindGoblin     Kind = "goblin"
	KindOrb        Kind = "orb"
	KindCheckpoint Kind = "checkpoint"
	KindLava       Kind = "lava"
	KindWater      Kind = "water"
	KindBlock      Kind = "block"
	KindWood       Kind = "wood"
	KindFan        Kind = "fan"
	KindAirCurrent Kind = "air_current"
	KindSign       Kind = "sign"
	KindTrophy     Kind = "trophy"
)

func parseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindPlayer, KindGoblin, KindOrb, KindCheckpoint, KindLava, KindWater,
		KindBlock, KindWood, KindFan, KindAirCurrent, KindSign, KindTrophy:
		return k, true
	}
	return "", false
}

// Spawn places one entity on a cell.
type Spawn struct {
	Kind Kind
	Col  int
	Row  int

	// ID and Unlock are set for orbs.
	ID     string
	Unlock component.Unlock

	// Patrol is the goblin's walking range in columns, inclusive.
	Patrol *[2]int

	// DirX and DirY point an air current.
	DirX float64
	DirY float64

	// Text is what a sign says.
	Text string
}

// Level is a grid of cells placed in world space. Row 0 is the top row and
// OriginX, OriginY is the world position of the grid's top-left corner.
type Level struct {
	Name    string
	OriginX float64
	OriginY float64
	Width   int
	Height  int
	Solid   []bool
	Spikes  []bool
	Spawns  []Spawn
}

func newLevel(name string, width, height int) *Level {
	return &Level{
		Name:   name,
		Width:  width,
		Height: height,
		Solid:  make([]bool, width*height),
		Spikes: make([]bool, width*height),
	}
}

// CellCenter returns the world position of the centre of a cell.
func (l *Level) CellCenter(col, row int) (float64, float64) {
	return l.OriginX + (float64(col)+0.5)*common.TileSize,
		l.OriginY - (float64(row)+0.5)*common.TileSize
}

// RectCenter returns the world centre and size of a cell rectangle.
func (l *Level) RectCenter(r Rect) (x, y, w, h float64) {
	w = float64(r.W) * common.TileSize
	h = float64(r.H) * common.TileSize
	x = l.OriginX + float64(r.Col)*common.TileSize + w/2
	y = l.OriginY - float64(r.Row)*common.TileSize - h/2
	return x, y, w, h
}

// Contains reports whether the world point lies inside the level.
func (l *Level) Contains(x, y float64) bool {
	minX, minY, maxX, maxY := l.Bounds()
	return x >= minX && x < maxX && y > minY && y <= maxY
}

func (l *Level) Bounds() (minX, minY, maxX, maxY float64) {
	return l.OriginX,
		l.OriginY - float64(l.Height)*common.TileSize,
		l.OriginX + float64(l.Width)*common.TileSize,
		l.OriginY
}

// Start returns the player spawn of the level, if it has one.
func (l *Level) Start() (float64, float64, bool) {
	for _, s := range l.Spawns {
		if s.Kind == KindPlayer {
			x, y := l.CellCenter(s.Col, s.Row)
			return x, y, true
		}
	}
	return 0, 0, false
}

func (l *Level) set(grid []bool, col, row int) {
	grid[row*l.Width+col] = true
}
