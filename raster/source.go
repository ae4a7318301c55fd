package raster

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// PNG is the atlas format; additional formats register themselves the
	// usual way in the importer.
	_ "image/png"

	"github.com/katalvlaran/tilewave/bitmap"
)

// FileSource resolves catalog references as image files under Dir
// (or verbatim paths when Dir is empty). It implements tileset.Source.
type FileSource struct {
	// Dir is the optional root the references are joined onto.
	Dir string
}

// Load decodes the referenced image file into a packed-RGBA bitmap.
// File-system and codec failures are wrapped with the resolved path.
// Complexity: codec-bound, O(W×H) for the conversion pass.
func (s FileSource) Load(ref string) (*bitmap.Image, error) {
	path := ref
	if s.Dir != "" {
		path = filepath.Join(s.Dir, ref)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %q: %w", path, err)
	}
	return FromImage(img), nil
}

// MemorySource serves base images straight from memory — programmatic
// atlases, fixtures, tests. It implements tileset.Source.
type MemorySource map[string]*bitmap.Image

// Load returns the stored image for ref, or ErrUnknownRef.
// Complexity: O(1).
func (s MemorySource) Load(ref string) (*bitmap.Image, error) {
	im, ok := s[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}
	return im, nil
}
