package tileset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tilewave/grid"
)

// TileSet is the canonicalized tile catalog: every surviving symmetry
// variant with its probability-mass share, plus four signature indexes
// (one per side). Built once via Add calls, read-only thereafter —
// collapse runs only query it.
type TileSet struct {
	src          Source
	tileW, tileH int // established by the first ingested variant

	byID    map[identity]*Tile
	weights map[identity]float64
	borders [grid.NumSides]map[Signature][]*Tile
}

// New returns an empty TileSet drawing base images from src.
// Returns ErrNilSource if src is nil.
func New(src Source) (*TileSet, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	ts := &TileSet{
		src:     src,
		byID:    make(map[identity]*Tile),
		weights: make(map[identity]float64),
	}
	for s := range ts.borders {
		ts.borders[s] = make(map[Signature][]*Tile)
	}
	return ts, nil
}

// Add ingests one catalog entry: it loads the base image, enumerates the
// eight reflection×rotation variants (reflection first), discards any
// variant whose pixel content duplicates an earlier one, and registers
// each survivor with weight/len(survivors) plus all four border index
// entries. Survivors are registered in identity order, so enumeration is
// deterministic.
//
// Errors: ErrNonPositiveWeight, ErrDuplicateRef, ErrDimensionMismatch,
// or the Source's load error wrapped with the reference.
// Complexity: O(W×H) per variant, at most 8 variants.
func (ts *TileSet) Add(ref string, weight float64) error {
	if weight <= 0 {
		return ErrNonPositiveWeight
	}
	// The unreflected 0-turn variant survives every dedup pass, so its
	// identity doubles as the "ref already ingested" marker.
	if _, dup := ts.byID[identity{ref: ref}]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateRef, ref)
	}
	base, err := ts.src.Load(ref)
	if err != nil {
		return fmt.Errorf("tileset: load %q: %w", ref, err)
	}

	variants, err := canonicalize(ref, base)
	if err != nil {
		return err
	}
	// Validate dimensions before touching any index, so a failed Add
	// leaves the set unchanged.
	tileW, tileH := ts.tileW, ts.tileH
	for _, t := range variants {
		if tileW == 0 {
			tileW, tileH = t.Width(), t.Height()
			continue
		}
		if t.Width() != tileW || t.Height() != tileH {
			return fmt.Errorf("%w: %v is %d×%d, catalog is %d×%d",
				ErrDimensionMismatch, t, t.Width(), t.Height(), tileW, tileH)
		}
	}
	ts.tileW, ts.tileH = tileW, tileH

	share := weight / float64(len(variants))
	for _, t := range variants {
		ts.byID[t.id()] = t
		ts.weights[t.id()] = share
		for s := grid.Side(0); s < grid.NumSides; s++ {
			sig := t.Border(s)
			ts.borders[s][sig] = append(ts.borders[s][sig], t)
		}
	}
	return nil
}

// Len returns the number of canonical tiles in the set.
func (ts *TileSet) Len() int { return len(ts.byID) }

// TileWidth returns the established tile width in pixels (0 while empty).
func (ts *TileSet) TileWidth() int { return ts.tileW }

// TileHeight returns the established tile height in pixels (0 while empty).
func (ts *TileSet) TileHeight() int { return ts.tileH }

// Tiles returns every canonical tile sorted by identity order.
// Complexity: O(n log n).
func (ts *TileSet) Tiles() []*Tile {
	out := make([]*Tile, 0, len(ts.byID))
	for _, t := range ts.byID {
		out = append(out, t)
	}
	sortTiles(out)
	return out
}

// Weight returns the registered probability-mass share of t, resolved by
// structural identity. Returns ErrUnknownTile for tiles outside the set.
// Complexity: O(1).
func (ts *TileSet) Weight(t *Tile) (float64, error) {
	if t == nil {
		return 0, ErrUnknownTile
	}
	w, ok := ts.weights[t.id()]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownTile, t)
	}
	return w, nil
}

// Lookup resolves an identity triple to its canonical tile — the handle
// callers use to pin seed assignments. Returns ErrUnknownTile if the
// variant was deduplicated away or never ingested.
// Complexity: O(1).
func (ts *TileSet) Lookup(ref string, reflected bool, rotation int) (*Tile, error) {
	t, ok := ts.byID[identity{ref: ref, reflected: reflected, rotation: rotation}]
	if !ok {
		return nil, fmt.Errorf("%w: %q reflected=%v rotation=%d",
			ErrUnknownTile, ref, reflected, rotation)
	}
	return t, nil
}

// MatchBorder returns the tiles presenting signature sig on side s, as a
// fresh slice in identity order. To find the tiles that may sit adjacent
// to a placed tile across a shared edge, query with the placed tile's
// signature on that edge and the *opposite* side:
//
//	candidates := ts.MatchBorder(placed.Border(side), side.Opposite())
//
// Complexity: O(k log k) for k matches.
func (ts *TileSet) MatchBorder(sig Signature, s grid.Side) []*Tile {
	found := ts.borders[s][sig]
	out := make([]*Tile, len(found))
	copy(out, found)
	sortTiles(out)
	return out
}

// sortTiles orders a tile slice by identity.
func sortTiles(tiles []*Tile) {
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
}
