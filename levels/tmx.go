package levels

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/elemental/ecs/component"
)

// Layer and object group names read from Tiled maps.
const (
	tmxTerrainLayer = "terrain"
	tmxSpikesLayer  = "spikes"
	tmxEntityGroup  = "entities"
)

// LoadTMX reads a Tiled map. Any tile on the terrain or spikes layer marks
// its cell. Objects in the entities group are spawns named by kind and are
// placed on the cell under their position.
func LoadTMX(fsys fs.FS, path, name string) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("levels: load TMX %s: %w", path, err)
	}
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: %s has no cells", ErrBadLevel, path)
	}

	lvl := newLevel(name, m.Width, m.Height)
	for _, layer := range m.Layers {
		var grid []bool
		switch layer.Name {
		case tmxTerrainLayer:
			grid = lvl.Solid
		case tmxSpikesLayer:
			grid = lvl.Spikes
		default:
			continue
		}
		for i, tile := range layer.Tiles {
			if i >= len(grid) {
				break
			}
			if tile != nil && !tile.IsNil() {
				grid[i] = true
			}
		}
	}

	for _, og := range m.ObjectGroups {
		if og.Name != tmxEntityGroup {
			continue
		}
		for _, o := range og.Objects {
			col := int(o.X) / m.TileWidth
			row := int(o.Y) / m.TileHeight
			if col < 0 || col >= lvl.Width || row < 0 || row >= lvl.Height {
				return nil, fmt.Errorf("%w: %s object %q at (%.0f,%.0f) is outside the map", ErrBadLevel, path, o.Name, o.X, o.Y)
			}
			s, err := tmxSpawn(o, col, row)
			if err != nil {
				return nil, fmt.Errorf("levels: %s object %d: %w", path, o.ID, err)
			}
			lvl.Spawns = append(lvl.Spawns, s)
		}
	}
	return lvl, nil
}

func tmxSpawn(o *tiled.Object, col, row int) (Spawn, error) {
	kind, ok := parseKind(strings.ToLower(o.Name))
	if !ok {
		return Spawn{}, fmt.Errorf("%w: %q", ErrUnknownKind, o.Name)
	}
	s := Spawn{Kind: kind, Col: col, Row: row}
	switch kind {
	case KindOrb:
		u, err := component.ParseUnlock(o.Properties.GetString("unlock"))
		if err != nil {
			return Spawn{}, err
		}
		s.Unlock = u
		s.ID = o.Properties.GetString("id")
		if s.ID == "" {
			s.ID = fmt.Sprintf("tmx-%d", o.ID)
		}
	case KindGoblin:
		if from, to := o.Properties.GetString("patrol_from"), o.Properties.GetString("patrol_to"); from != "" && to != "" {
			s.Patrol = &[2]int{o.Properties.GetInt("patrol_from"), o.Properties.GetInt("patrol_to")}
		}
	case KindAirCurrent:
		dx, dy, err := parseDir(o.Properties.GetString("dir"))
		if err != nil {
			return Spawn{}, err
		}
		s.DirX, s.DirY = dx, dy
	case KindSign:
		s.Text = o.Properties.GetString("text")
		if s.Text == "" {
			return Spawn{}, fmt.Errorf("%w: sign without text", ErrBadLevel)
		}
	}
	return s, nil
}
