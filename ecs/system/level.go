package system

import (
	"log"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/milk9111/elemental/levels"
)

// LevelReloadSystem serves LevelReloadRequest entities: the named level is
// torn down and rebuilt from its data. Orbs the player already owns stay
// gone.
type LevelReloadSystem struct {
	set   *levels.Set
	specs entity.Specs
}

func NewLevelReloadSystem(set *levels.Set, specs entity.Specs) *LevelReloadSystem {
	return &LevelReloadSystem{set: set, specs: specs}
}

func (s *LevelReloadSystem) SetSpecs(specs entity.Specs) {
	s.specs = specs
}

func (s *LevelReloadSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var requested []string
	seen := map[string]bool{}
	ecs.ForEach(w, component.LevelReloadRequestComponent.Kind(), func(e ecs.Entity, req *component.LevelReloadRequest) {
		if !seen[req.Level] {
			seen[req.Level] = true
			requested = append(requested, req.Level)
		}
		ecs.DestroyEntity(w, e)
	})
	if len(requested) == 0 || s.set == nil {
		return
	}

	have := func(component.Unlock) bool { return false }
	if pe, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if p, ok := ecs.Get(w, pe, component.PlayerComponent.Kind()); ok {
			have = p.Has
		}
	}

	for _, name := range requested {
		if err := ReloadLevel(w, s.set, name, s.specs, have); err != nil {
			log.Printf("LevelReloadSystem: %v", err)
		}
	}
}

// ReloadLevel replaces every entity of the named level with a fresh build.
func ReloadLevel(w *ecs.World, set *levels.Set, name string, specs entity.Specs, have func(component.Unlock) bool) error {
	lvl, err := set.Get(name)
	if err != nil {
		return err
	}
	levels.Teardown(w, name)
	return levels.Build(w, lvl, specs, have)
}

// LevelTrackSystem selects the level the player is standing in.
type LevelTrackSystem struct {
	set   *levels.Set
	level LevelSelector
}

func NewLevelTrackSystem(set *levels.Set, level LevelSelector) *LevelTrackSystem {
	return &LevelTrackSystem{set: set, level: levelOrStatic(level)}
}

func (s *LevelTrackSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.set == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Player, t *component.Transform) {
		if name, ok := s.set.At(t.X, t.Y); ok {
			s.level.Select(name)
		}
	})
}
