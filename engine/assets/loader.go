// Package assets loads sprites and shaders from an asset directory.
package assets

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const manifestName = "sprites.yaml"

// Loader reads files below Dir, which holds textures/, shaders/ and an optional
// sprites.yaml manifest.
type Loader struct {
	Dir     string
	MaxSize int
}

func NewLoader(dir string) Loader { return Loader{Dir: dir, MaxSize: 512} }

// Manifest maps sprite keys to PNG files under textures/.
type Manifest struct {
	Sprites map[string]string `yaml:"sprites"`
}

// File is the PNG for key: the manifest entry, or key+".png".
func (m Manifest) File(key string) string {
	if f, ok := m.Sprites[key]; ok {
		return f
	}
	return key + ".png"
}

// LoadManifest reads sprites.yaml. A missing manifest is empty, not an error.
func (l Loader) LoadManifest() (Manifest, error) {
	path := filepath.Join(l.Dir, manifestName)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, errors.Wrapf(err, "read %q", path)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Manifest{}, errors.Wrapf(err, "parse %q", path)
	}
	return m, nil
}

// LoadSprites loads every key it can. Missing files are logged and skipped so the
// painters can fall back to labels; any other failure is returned.
func (l Loader) LoadSprites(keys []string) (map[string]Sprite, error) {
	m, err := l.LoadManifest()
	if err != nil {
		return nil, err
	}
	out := make(map[string]Sprite, len(keys))
	missing := 0
	for _, k := range keys {
		s, err := l.LoadPNG(m.File(k))
		if errors.Is(err, os.ErrNotExist) {
			missing++
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "sprite %s", k)
		}
		out[k] = s
	}
	log.Info().Str("dir", l.Dir).Int("loaded", len(out)).Int("missing", missing).Msg("sprites loaded")
	return out, nil
}
