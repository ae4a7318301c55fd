package collapse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/bitmap"
	"github.com/katalvlaran/tilewave/tileset"
)

// Palette for programmatic test atlases.
const (
	wht bitmap.Pixel = 0xFFFFFFFF
	blk bitmap.Pixel = 0x000000FF
	red bitmap.Pixel = 0xFF0000FF
	blu bitmap.Pixel = 0x0000FFFF
)

// errNoImage is the stub source's load failure.
var errNoImage = errors.New("stub: no such ref")

// memSource is an in-memory tileset.Source: ref → base image.
type memSource map[string]*bitmap.Image

func (m memSource) Load(ref string) (*bitmap.Image, error) {
	im, ok := m[ref]
	if !ok {
		return nil, errNoImage
	}
	return im, nil
}

// img builds a test image from a row-major literal.
func img(t testing.TB, w, h int, pix ...bitmap.Pixel) *bitmap.Image {
	t.Helper()
	im, err := bitmap.FromPixels(w, h, pix)
	if err != nil {
		t.Fatalf("FromPixels error: %v", err)
	}
	return im
}

// knotsSource builds the classic five-tile "knots" atlas as 3×3 images.
// Every edge is either all-white or white-black-white, and the variant
// family covers all sixteen side-class combinations, so generation can
// never hit a contradiction.
func knotsSource(t testing.TB) memSource {
	return memSource{
		"corner": img(t, 3, 3,
			wht, blk, wht,
			blk, blk, wht,
			wht, wht, wht,
		),
		"cross": img(t, 3, 3,
			wht, blk, wht,
			blk, blk, blk,
			wht, blk, wht,
		),
		"empty": img(t, 3, 3,
			wht, wht, wht,
			wht, wht, wht,
			wht, wht, wht,
		),
		"line": img(t, 3, 3,
			wht, wht, wht,
			blk, blk, blk,
			wht, wht, wht,
		),
		"t": img(t, 3, 3,
			wht, blk, wht,
			blk, blk, blk,
			wht, wht, wht,
		),
	}
}

// knotsSet ingests the knots atlas with the canonical catalog weights.
func knotsSet(t testing.TB) *tileset.TileSet {
	t.Helper()
	ts, err := tileset.New(knotsSource(t))
	if err != nil {
		t.Fatalf("tileset.New error: %v", err)
	}
	for _, entry := range []struct {
		ref    string
		weight float64
	}{
		{"corner", 4},
		{"cross", 2},
		{"empty", 1},
		{"line", 2},
		{"t", 4},
	} {
		if err := ts.Add(entry.ref, entry.weight); err != nil {
			t.Fatalf("Add(%q) error: %v", entry.ref, err)
		}
	}
	return ts
}

// colorSet ingests two mutually incompatible 1×1 tiles (red and blue);
// any board seeded with both is doomed to contradict.
func colorSet(t testing.TB) *tileset.TileSet {
	t.Helper()
	src := memSource{
		"red":  img(t, 1, 1, red),
		"blue": img(t, 1, 1, blu),
	}
	ts, err := tileset.New(src)
	require.NoError(t, err)
	require.NoError(t, ts.Add("red", 1))
	require.NoError(t, ts.Add("blue", 1))
	return ts
}

// dotSet ingests two always-compatible 3×3 tiles (all-white borders, the
// center pixel differs) with strongly skewed weights.
func dotSet(t testing.TB, dotWeight, emptyWeight float64) *tileset.TileSet {
	t.Helper()
	src := memSource{
		"dot": img(t, 3, 3,
			wht, wht, wht,
			wht, blk, wht,
			wht, wht, wht,
		),
		"empty": img(t, 3, 3,
			wht, wht, wht,
			wht, wht, wht,
			wht, wht, wht,
		),
	}
	ts, err := tileset.New(src)
	require.NoError(t, err)
	require.NoError(t, ts.Add("dot", dotWeight))
	require.NoError(t, ts.Add("empty", emptyWeight))
	return ts
}
