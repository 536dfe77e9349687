package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed world.yaml *.level.yaml *.tmx
var LevelsFS embed.FS

// manifest lists the levels of the world and where each one sits.
type manifest struct {
	Levels []struct {
		Name   string `yaml:"name"`
		File   string `yaml:"file"`
		Origin struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		} `yaml:"origin"`
	} `yaml:"levels"`
}

// Set is every level of the world keyed by name.
type Set struct {
	levels map[string]*Level
	order  []string
}

func NewSet(lvls ...*Level) *Set {
	s := &Set{levels: make(map[string]*Level, len(lvls))}
	for _, l := range lvls {
		s.levels[l.Name] = l
		s.order = append(s.order, l.Name)
	}
	sort.Strings(s.order)
	return s
}

// Load reads the embedded world.
func Load() (*Set, error) {
	return LoadFS(LevelsFS, "world.yaml")
}

// LoadFS reads a world manifest and every level it names from fsys. Level
// files resolve relative to the manifest. Origins in the manifest replace
// any origin in the level file.
func LoadFS(fsys fs.FS, manifestPath string) (*Set, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", manifestPath, err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", manifestPath, err)
	}

	dir := path.Dir(manifestPath)
	var lvls []*Level
	for _, entry := range m.Levels {
		file := path.Join(dir, entry.File)
		var lvl *Level
		switch {
		case strings.HasSuffix(file, ".tmx"):
			lvl, err = LoadTMX(fsys, file, entry.Name)
		case strings.HasSuffix(file, ".yaml"):
			var raw []byte
			raw, err = fs.ReadFile(fsys, file)
			if err == nil {
				lvl, err = ParseGrid(raw)
			}
		default:
			err = fmt.Errorf("%w: unsupported level file %s", ErrBadLevel, file)
		}
		if err != nil {
			return nil, err
		}
		lvl.Name = entry.Name
		lvl.OriginX, lvl.OriginY = entry.Origin.X, entry.Origin.Y
		lvls = append(lvls, lvl)
	}
	return NewSet(lvls...), nil
}

func (s *Set) Get(name string) (*Level, error) {
	if l, ok := s.levels[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Names returns level names in sorted order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// At returns the level containing the world point.
func (s *Set) At(x, y float64) (string, bool) {
	for _, name := range s.order {
		if s.levels[name].Contains(x, y) {
			return name, true
		}
	}
	return "", false
}
