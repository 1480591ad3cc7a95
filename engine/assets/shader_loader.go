package assets

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func (l Loader) LoadShader(name string) (string, error) {
	path := filepath.Join(l.Dir, "shaders", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "load shader %q", name)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
