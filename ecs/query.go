package ecs

import (
	"sort"

	"github.com/milk9111/elemental/ecs/component"
)

// Query returns the live entities carrying every kind, in slot order. The
// result is a snapshot, so callers may add, remove or destroy while iterating.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	ids := append([]int(nil), sets[0].Entities()...)
	for _, s := range sets[1:] {
		kept := ids[:0]
		for _, id := range ids {
			if s.Has(id) {
				kept = append(kept, id)
			}
		}
		ids = kept
	}
	sort.Ints(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-slot live entity carrying kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
