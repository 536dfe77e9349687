// Package assets holds the embedded sound clips and the audio player that
// serves the simulation's sound collaborator.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sounds/*.wav
var assetsFS embed.FS

const sampleRate = 44100

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(p string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(p))
}

// Clips lists the embedded sound clip names without extension.
func Clips() []string {
	entries, err := fs.ReadDir(assetsFS, "sounds")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".wav"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// decodeClip decodes a wav clip into a seekable stream resampled for ctx.
func decodeClip(ctx *audio.Context, clip string) (*wav.Stream, error) {
	p := path.Join("sounds", clip+".wav")
	b, err := LoadFile(p)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", p, err)
	}
	return stream, nil
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(p)
	}
	return strings.TrimPrefix(filepath.ToSlash(p), "assets/")
}
