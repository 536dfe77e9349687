package levels

import (
	"fmt"

	"github.com/milk9111/elemental/ecs/component"
	"gopkg.in/yaml.v3"
)

// gridFile is the on-disk YAML layout of a hand-drawn level.
type gridFile struct {
	Name   string `yaml:"name"`
	Origin struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"origin"`
	Tiles  []string    `yaml:"tiles"`
	Spawns []spawnFile `yaml:"spawns"`
}

type spawnFile struct {
	Kind   string `yaml:"kind"`
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
	ID     string `yaml:"id"`
	Unlock string `yaml:"unlock"`
	Patrol []int  `yaml:"patrol"`
	Dir    string `yaml:"dir"`
	Text   string `yaml:"text"`
}

// Tile runes of the grid format. Runes that are not terrain or spikes place
// a spawn on their cell.
var tileKinds = map[rune]Kind{
	'P': KindPlayer,
	'G': KindGoblin,
	'C': KindCheckpoint,
	'L': KindLava,
	'W': KindWater,
	'B': KindBlock,
	'w': KindWood,
	'F': KindFan,
	'A': KindAirCurrent,
	'T': KindTrophy,
}

// ParseGrid decodes a YAML grid level. Every row must be the same width and
// every rune must be known.
func ParseGrid(data []byte) (*Level, error) {
	var f gridFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: unmarshal grid: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrBadLevel)
	}
	if len(f.Tiles) == 0 {
		return nil, fmt.Errorf("%w: %s has no tiles", ErrBadLevel, f.Name)
	}

	width := len([]rune(f.Tiles[0]))
	lvl := newLevel(f.Name, width, len(f.Tiles))
	lvl.OriginX, lvl.OriginY = f.Origin.X, f.Origin.Y

	for row, line := range f.Tiles {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: %s row %d is %d wide, want %d", ErrBadLevel, f.Name, row, len(runes), width)
		}
		for col, r := range runes {
			switch r {
			case '.', ' ':
			case '#':
				lvl.set(lvl.Solid, col, row)
			case '^':
				lvl.set(lvl.Spikes, col, row)
			default:
				kind, ok := tileKinds[r]
				if !ok {
					return nil, fmt.Errorf("%w: %q at %s (%d,%d)", ErrUnknownTile, r, f.Name, col, row)
				}
				s := Spawn{Kind: kind, Col: col, Row: row}
				if kind == KindAirCurrent {
					s.DirY = 1
				}
				lvl.Spawns = append(lvl.Spawns, s)
			}
		}
	}

	for i, sf := range f.Spawns {
		s, err := sf.spawn()
		if err != nil {
			return nil, fmt.Errorf("levels: %s spawn %d: %w", f.Name, i, err)
		}
		if s.Col < 0 || s.Col >= lvl.Width || s.Row < 0 || s.Row >= lvl.Height {
			return nil, fmt.Errorf("%w: %s spawn %d at (%d,%d) is outside the grid", ErrBadLevel, f.Name, i, s.Col, s.Row)
		}
		lvl.Spawns = append(lvl.Spawns, s)
	}
	return lvl, nil
}

func (sf spawnFile) spawn() (Spawn, error) {
	kind, ok := parseKind(sf.Kind)
	if !ok {
		return Spawn{}, fmt.Errorf("%w: %q", ErrUnknownKind, sf.Kind)
	}
	s := Spawn{Kind: kind, Col: sf.Col, Row: sf.Row, ID: sf.ID}
	switch kind {
	case KindOrb:
		u, err := component.ParseUnlock(sf.Unlock)
		if err != nil {
			return Spawn{}, err
		}
		s.Unlock = u
		if s.ID == "" {
			return Spawn{}, fmt.Errorf("%w: orb without id", ErrBadLevel)
		}
	case KindGoblin:
		if len(sf.Patrol) == 2 {
			s.Patrol = &[2]int{sf.Patrol[0], sf.Patrol[1]}
		} else if len(sf.Patrol) != 0 {
			return Spawn{}, fmt.Errorf("%w: patrol needs two columns", ErrBadLevel)
		}
	case KindAirCurrent:
		dx, dy, err := parseDir(sf.Dir)
		if err != nil {
			return Spawn{}, err
		}
		s.DirX, s.DirY = dx, dy
	case KindSign:
		if sf.Text == "" {
			return Spawn{}, fmt.Errorf("%w: sign without text", ErrBadLevel)
		}
		s.Text = sf.Text
	}
	return s, nil
}

func parseDir(s string) (float64, float64, error) {
	switch s {
	case "", "up":
		return 0, 1, nil
	case "down":
		return 0, -1, nil
	case "left":
		return -1, 0, nil
	case "right":
		return 1, 0, nil
	}
	return 0, 0, fmt.Errorf("%w: air current direction %q", ErrBadLevel, s)
}
