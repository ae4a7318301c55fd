// Package tileset defines the Tile/TileSet types, the Source collaborator
// and sentinel errors.
package tileset

import (
	"errors"

	"github.com/katalvlaran/tilewave/bitmap"
)

// Sentinel errors for tileset operations.
var (
	// ErrNilSource indicates New was given no image source.
	ErrNilSource = errors.New("tileset: image source must not be nil")
	// ErrNonPositiveWeight indicates a catalog weight ≤ 0.
	ErrNonPositiveWeight = errors.New("tileset: tile weight must be positive")
	// ErrDimensionMismatch indicates a tile variant whose pixel dimensions
	// differ from the catalog's established tile size.
	ErrDimensionMismatch = errors.New("tileset: tiles are not of the same size")
	// ErrDuplicateRef indicates the same base reference was ingested twice.
	ErrDuplicateRef = errors.New("tileset: base tile reference already ingested")
	// ErrUnknownTile indicates a query for a tile the set does not hold.
	ErrUnknownTile = errors.New("tileset: tile not present in set")
)

// Signature is the comparable encoding of one edge's ordered pixel
// sequence: 4 bytes per pixel, big-endian, read left→right for horizontal
// edges and top→bottom for vertical ones. Two edges are compatible exactly
// when their signatures are equal.
type Signature string

// makeSignature encodes an ordered pixel run into its Signature.
// Complexity: O(n).
func makeSignature(pix []bitmap.Pixel) Signature {
	buf := make([]byte, 0, len(pix)*4)
	for _, p := range pix {
		buf = append(buf, byte(p>>24), byte(p>>16), byte(p>>8), byte(p))
	}
	return Signature(buf)
}

// identity is the comparable tile identity triple; Tile equality, hashing
// and ordering are all defined over it.
type identity struct {
	ref       string
	reflected bool
	rotation  int
}

// Source resolves a catalog reference to its decoded base image. It is the
// external image-decoding collaborator (see the raster package for the
// PNG-backed implementation and an in-memory one).
type Source interface {
	Load(ref string) (*bitmap.Image, error)
}
