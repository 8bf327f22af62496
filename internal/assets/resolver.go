package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Background photos
	_ "image/png"  // Balloon artwork
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

// Resolver loads chain candidates from an asset root.
type Resolver struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewResolver creates a resolver over fsys. A nil logger discards output.
func NewResolver(fsys fs.FS, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{fsys: fsys, logger: logger}
}

// NewDirResolver creates a resolver rooted at a directory on disk.
// An empty dir means the working directory.
func NewDirResolver(dir string, logger *log.Logger) *Resolver {
	if dir == "" {
		dir = "."
	}
	return NewResolver(os.DirFS(dir), logger)
}

// ReadFile returns the bytes of the first readable candidate.
func (r *Resolver) ReadFile(c *Chain) ([]byte, string, error) {
	return resolveLogged(r, c, func(path string) ([]byte, error) {
		return fs.ReadFile(r.fsys, path)
	})
}

// Image decodes the first candidate that is a valid JPEG or PNG.
func (r *Resolver) Image(c *Chain) (image.Image, string, error) {
	return resolveLogged(r, c, func(path string) (image.Image, error) {
		f, err := r.fsys.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return img, nil
	})
}

func resolveLogged[T any](r *Resolver, c *Chain, load func(string) (T, error)) (T, string, error) {
	v, path, err := Resolve(c, func(p string) (T, error) {
		v, err := load(p)
		if err != nil {
			r.logger.Debug("asset candidate failed", "asset", c.Name(), "path", p, "err", err)
		}
		return v, err
	})
	if err != nil {
		r.logger.Warn("asset unavailable, using fallback", "asset", c.Name())
		return v, "", err
	}
	r.logger.Info("asset loaded", "asset", c.Name(), "path", path)
	return v, path, nil
}
