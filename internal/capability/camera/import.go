// Package camera provides photo sources for the capture workflow.
package camera

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/chris-regnier/moodctl/internal/capability"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".webp": true,
}

// Library is the directory photos are copied into.
type Library struct {
	Dir string
}

// NewPath returns a fresh, unused path in the library with the given extension.
func (l Library) NewPath(ext string) (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("generating photo name: %w", err)
	}
	return filepath.Join(l.Dir, id+strings.ToLower(ext)), nil
}

// Writable reports whether the library directory exists or can be created
// and accepts new files.
func (l Library) Writable() bool {
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return false
	}
	f, err := os.CreateTemp(l.Dir, ".probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// URI returns the file:// reference for a path.
func URI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

// Import "captures" by copying an existing image file into the library.
type Import struct {
	library Library
	source  string
}

// NewImport creates an import camera storing photos in dir.
func NewImport(dir string) *Import {
	return &Import{library: Library{Dir: dir}}
}

// SetSource selects the image file the next Capture copies.
func (c *Import) SetSource(path string) {
	c.source = path
}

// RequestPermission grants access when the photo library is writable.
func (c *Import) RequestPermission(ctx context.Context) (capability.Permission, error) {
	if c.library.Writable() {
		return capability.Granted, nil
	}
	return capability.Denied, nil
}

// Capture copies the selected source image into the library.
func (c *Import) Capture(ctx context.Context) (string, error) {
	if c.source == "" {
		return "", fmt.Errorf("no photo selected")
	}
	ext := filepath.Ext(c.source)
	if !allowedExt[strings.ToLower(ext)] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	src, err := os.Open(c.source)
	if err != nil {
		return "", fmt.Errorf("opening photo: %w", err)
	}
	defer src.Close()

	dst, err := c.library.NewPath(ext)
	if err != nil {
		return "", err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("creating photo: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("copying photo: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("writing photo: %w", err)
	}

	return URI(dst), nil
}

var _ capability.Camera = (*Import)(nil)
