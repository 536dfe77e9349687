package ecs

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
)

var (
	ErrUnknownSystem   = errors.New("ecs: unknown system")
	ErrDuplicateSystem = errors.New("ecs: duplicate system name")
	ErrSystemCycle     = errors.New("ecs: system ordering cycle")
)

type System interface {
	Update(w *World)
}

type scheduled struct {
	name   string
	system System
	after  []string
	index  int
}

// Scheduler runs systems in a fixed order resolved from explicit "runs
// after" constraints. Systems without constraints between them keep the
// order they were added in.
type Scheduler struct {
	entries []scheduled
	order   []System
	names   []string
	dirty   bool
}

// NewScheduler adds each system so it runs after the one before it.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends system to run after every system added so far.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	var after []string
	if n := len(s.entries); n > 0 {
		after = []string{s.entries[n-1].name}
	}
	name := fmt.Sprintf("%T#%d", system, len(s.entries))
	s.entries = append(s.entries, scheduled{name: name, system: system, after: after, index: len(s.entries)})
	s.dirty = true
}

// AddNamed registers system under name, to run after each listed system.
func (s *Scheduler) AddNamed(name string, system System, after ...string) error {
	if system == nil {
		return nil
	}
	for _, e := range s.entries {
		if e.name == name {
			return fmt.Errorf("%w: %s", ErrDuplicateSystem, name)
		}
	}
	s.entries = append(s.entries, scheduled{
		name:   name,
		system: system,
		after:  append([]string(nil), after...),
		index:  len(s.entries),
	})
	s.dirty = true
	return nil
}

// Build resolves the run order. It fails on unknown names or cycles.
func (s *Scheduler) Build() error {
	byName := make(map[string]int, len(s.entries))
	for i, e := range s.entries {
		byName[e.name] = i
	}

	indegree := make([]int, len(s.entries))
	dependents := make([][]int, len(s.entries))
	for i, e := range s.entries {
		for _, dep := range e.after {
			j, ok := byName[dep]
			if !ok {
				return fmt.Errorf("%w: %s (required by %s)", ErrUnknownSystem, dep, e.name)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	ready := make([]int, 0, len(s.entries))
	for i := range s.entries {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]System, 0, len(s.entries))
	names := make([]string, 0, len(s.entries))
	for len(ready) > 0 {
		sort.Ints(ready)
		i := ready[0]
		ready = ready[1:]
		order = append(order, s.entries[i].system)
		names = append(names, s.entries[i].name)
		for _, d := range dependents[i] {
			indegree[d]--
			if indegree[d] == 0 {
				ready = append(ready, d)
			}
		}
	}

	if len(order) != len(s.entries) {
		var stuck []string
		for i, e := range s.entries {
			if indegree[i] > 0 {
				stuck = append(stuck, e.name)
			}
		}
		return fmt.Errorf("%w: %s", ErrSystemCycle, strings.Join(stuck, ", "))
	}

	s.order = order
	s.names = names
	s.dirty = false
	return nil
}

func (s *Scheduler) Update(w *World) {
	if s.dirty {
		if err := s.Build(); err != nil {
			log.Printf("Scheduler: %v", err)
			return
		}
	}
	for _, system := range s.order {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	if s.dirty {
		if err := s.Build(); err != nil {
			return nil
		}
	}
	systems := make([]System, 0, len(s.order))
	return append(systems, s.order...)
}

// Order returns the resolved system names.
func (s *Scheduler) Order() []string {
	if s.dirty {
		if err := s.Build(); err != nil {
			return nil
		}
	}
	return append([]string(nil), s.names...)
}
