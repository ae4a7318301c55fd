package tileset

import (
	"fmt"

	"github.com/katalvlaran/tilewave/bitmap"
	"github.com/katalvlaran/tilewave/grid"
)

// Tile is one symmetry variant of a base tile image. Identity is the
// (Ref, Reflected, Rotation) triple alone; the transformed image and the
// four edge signatures are derived. Tiles are immutable once constructed —
// treat the image returned by Image as read-only.
type Tile struct {
	// Ref names the base tile (whatever the Source resolves).
	Ref string
	// Reflected reports whether the base image was mirrored horizontally
	// before rotation.
	Reflected bool
	// Rotation counts counter-clockwise quarter turns in 0..3, applied
	// after the optional reflection.
	Rotation int

	img     *bitmap.Image
	borders [grid.NumSides]Signature
}

// NewTile renders the (reflected, rotation) variant of base and derives
// its edge signatures. Returns bitmap.ErrRotationRange for rotation
// outside 0..3.
// Complexity: O(W×H).
func NewTile(ref string, reflected bool, rotation int, base *bitmap.Image) (*Tile, error) {
	img, err := base.Transform(reflected, rotation)
	if err != nil {
		return nil, err
	}
	t := &Tile{Ref: ref, Reflected: reflected, Rotation: rotation, img: img}
	t.borders[grid.Top] = makeSignature(img.Row(0))
	t.borders[grid.Left] = makeSignature(img.Column(0))
	t.borders[grid.Bottom] = makeSignature(img.Row(img.Height - 1))
	t.borders[grid.Right] = makeSignature(img.Column(img.Width - 1))
	return t, nil
}

// Image returns the variant's transformed pixel content (read-only).
func (t *Tile) Image() *bitmap.Image { return t.img }

// Width returns the transformed image width in pixels.
func (t *Tile) Width() int { return t.img.Width }

// Height returns the transformed image height in pixels.
func (t *Tile) Height() int { return t.img.Height }

// Border returns the edge signature presented on side s.
// Complexity: O(1).
func (t *Tile) Border(s grid.Side) Signature { return t.borders[s] }

// id returns the comparable identity triple.
func (t *Tile) id() identity {
	return identity{ref: t.Ref, reflected: t.Reflected, rotation: t.Rotation}
}

// Equal reports structural identity equality: same base reference, same
// reflection, same rotation. Pixel content plays no part — image-identical
// variants of different bases stay distinct.
// Complexity: O(1).
func (t *Tile) Equal(other *Tile) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.id() == other.id()
}

// Less orders tiles by (Ref, Reflected, Rotation), with an unreflected
// variant before its reflected sibling. This is the deterministic
// enumeration order used throughout the module.
// Complexity: O(1).
func (t *Tile) Less(other *Tile) bool {
	if t.Ref != other.Ref {
		return t.Ref < other.Ref
	}
	if t.Reflected != other.Reflected {
		return !t.Reflected
	}
	return t.Rotation < other.Rotation
}

// String formats the identity triple, e.g. `Tile("corner", reflected, rot=3)`.
func (t *Tile) String() string {
	refl := "plain"
	if t.Reflected {
		refl = "reflected"
	}
	return fmt.Sprintf("Tile(%q, %s, rot=%d)", t.Ref, refl, t.Rotation)
}
