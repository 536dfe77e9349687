package save

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/milk9111/elemental/ecs/component"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Backend is the item storage the Store writes through. *gdata.Manager
// satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Progress is what survives between runs.
type Progress struct {
	CheckpointX     float64           `json:"checkpointX"`
	CheckpointY     float64           `json:"checkpointY"`
	CheckpointLevel string            `json:"checkpointLevel"`
	Unlocked        component.Unlocks `json:"unlocked"`
}

func (p Progress) Checkpoint() component.Checkpoint {
	return component.Checkpoint{X: p.CheckpointX, Y: p.CheckpointY, Level: p.CheckpointLevel}
}

// Store persists checkpoints. It is the game's CheckpointSaver; write
// failures are logged and otherwise ignored.
type Store struct {
	backend Backend
}

// Open creates a Store backed by gdata under the given application name.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return NewStore(m), nil
}

func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Load returns the saved progress, or nil when nothing has been saved.
func (s *Store) Load() (*Progress, error) {
	if s == nil || s.backend == nil {
		return nil, nil
	}
	data, err := s.backend.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("save: load progress: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("save: parse progress: %w", err)
	}
	return &p, nil
}

func (s *Store) Save(p Progress) error {
	if s == nil || s.backend == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save: serialize progress: %w", err)
	}
	if err := s.backend.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save: write progress: %w", err)
	}
	return nil
}

func (s *Store) SaveCheckpoint(cp component.Checkpoint, unlocked component.Unlocks) {
	err := s.Save(Progress{
		CheckpointX:     cp.X,
		CheckpointY:     cp.Y,
		CheckpointLevel: cp.Level,
		Unlocked:        unlocked,
	})
	if err != nil {
		log.Printf("Save: %v", err)
	}
}

// Clear forgets saved progress.
func (s *Store) Clear() error {
	if s == nil || s.backend == nil {
		return nil
	}
	if err := s.backend.SaveItem(progressKey, nil); err != nil {
		return fmt.Errorf("save: clear progress: %w", err)
	}
	return nil
}
