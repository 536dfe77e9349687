package levels

import (
	"fmt"

	"github.com/milk9111/elemental/common"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
)

// Build spawns the terrain, spikes and entities of lvl into w, each tagged
// with the level name. Orbs whose unlock have reports as already owned are
// skipped. The player spawn is not built here.
func Build(w *ecs.World, lvl *Level, specs entity.Specs, have func(component.Unlock) bool) error {
	if lvl == nil {
		return fmt.Errorf("%w: nil level", ErrBadLevel)
	}
	tag := func(e ecs.Entity, err error) error {
		if err != nil {
			return fmt.Errorf("levels: build %s: %w", lvl.Name, err)
		}
		return entity.SetLevel(w, e, lvl.Name)
	}

	for _, r := range MergeCells(lvl.Width, lvl.Height, lvl.Solid) {
		x, y, width, height := lvl.RectCenter(r)
		if err := tag(entity.NewTerrain(w, x, y, width, height)); err != nil {
			return err
		}
	}
	for _, r := range MergeCells(lvl.Width, lvl.Height, lvl.Spikes) {
		x, y, width, height := lvl.RectCenter(r)
		if err := tag(entity.NewSpikes(w, x, y, width, height)); err != nil {
			return err
		}
	}

	for _, s := range lvl.Spawns {
		if s.Kind == KindPlayer {
			continue
		}
		if s.Kind == KindOrb && have != nil && have(s.Unlock) {
			continue
		}
		e, err := spawn(w, lvl, s, specs)
		if err := tag(e, err); err != nil {
			return err
		}
	}
	return nil
}

func spawn(w *ecs.World, lvl *Level, s Spawn, specs entity.Specs) (ecs.Entity, error) {
	x, y := lvl.CellCenter(s.Col, s.Row)
	switch s.Kind {
	case KindGoblin:
		var patrol *entity.PatrolPoints
		if s.Patrol != nil {
			minX, _ := lvl.CellCenter(s.Patrol[0], s.Row)
			maxX, _ := lvl.CellCenter(s.Patrol[1], s.Row)
			patrol = &entity.PatrolPoints{MinX: minX, MaxX: maxX}
		}
		return entity.NewGoblin(w, x, y, patrol, specs)
	case KindOrb:
		return entity.NewAbilityOrb(w, x, y, s.ID, s.Unlock, specs)
	case KindCheckpoint:
		return entity.NewCheckpoint(w, x, y, specs)
	case KindLava:
		return entity.NewLava(w, x, y, specs)
	case KindWater:
		return entity.NewWater(w, x, y, specs)
	case KindBlock:
		return entity.NewBlock(w, x, y)
	case KindWood:
		return entity.NewWoodBlock(w, x, y)
	case KindFan:
		// the fan sits on the floor of its cell
		return entity.NewFan(w, x, y-common.TileSize/2+5, specs)
	case KindAirCurrent:
		return entity.NewAirCurrent(w, x, y, s.DirX, s.DirY, specs)
	case KindSign:
		return entity.NewSignpost(w, x, y, s.Text)
	case KindTrophy:
		return entity.NewTrophy(w, x, y)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

// Teardown destroys every entity tagged with level and returns how many
// were removed.
func Teardown(w *ecs.World, level string) int {
	var doomed []ecs.Entity
	ecs.ForEach(w, component.LevelMemberComponent.Kind(), func(e ecs.Entity, m *component.LevelMember) {
		if m.Level == level {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		ecs.DestroyEntity(w, e)
	}
	return len(doomed)
}
