package collapse

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/tilewave/grid"
	"github.com/katalvlaran/tilewave/tileset"
)

// candidateSet is one frontier entry: the tiles still admissible for an
// unplaced cell. Entries only ever shrink.
type candidateSet map[*tileset.Tile]struct{}

// engine owns the placement state of exactly one Generate run; it is
// created fresh per run and discarded with it.
type engine struct {
	width, height int
	ts            *tileset.TileSet
	rng           *rand.Rand
	onNarrow      func(grid.Coord, int, int)

	// placed grows monotonically; entries never change once written.
	placed map[grid.Coord]*tileset.Tile
	// frontier holds every unplaced cell adjacent to a placed one.
	frontier map[grid.Coord]candidateSet
}

// Generate fills a width×height board with tiles from ts and returns the
// complete coordinate→tile assignment. See the package documentation for
// the procedure and the error contract. On error the returned map is nil —
// there is no partial result.
//
// Complexity: O(W×H × (F + k log k)); memory O(W×H).
func Generate(width, height int, ts *tileset.TileSet, opts Options) (map[grid.Coord]*tileset.Tile, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if ts == nil {
		return nil, ErrNilTileSet
	}
	if ts.Len() == 0 {
		return nil, ErrEmptyTileSet
	}

	e := &engine{
		width:    width,
		height:   height,
		ts:       ts,
		rng:      rngFromOptions(opts),
		onNarrow: opts.OnNarrow,
		placed:   make(map[grid.Coord]*tileset.Tile, width*height),
		frontier: make(map[grid.Coord]candidateSet),
	}

	seeds, err := e.resolveSeeds(opts.Seeds)
	if err != nil {
		return nil, err
	}
	for _, s := range seeds {
		if err = e.place(s.Coord, s.Tile); err != nil {
			return nil, err
		}
	}

	for len(e.placed) < width*height {
		coord := e.selectMRV()
		tile, err := e.resolve(e.frontier[coord])
		if err != nil {
			return nil, err
		}
		if err = e.place(coord, tile); err != nil {
			return nil, err
		}
	}
	return e.placed, nil
}

// resolveSeeds validates caller pins, or draws the default seed — one tile
// chosen uniformly from the canonical set, pinned to the origin.
func (e *engine) resolveSeeds(pins []Seed) ([]Seed, error) {
	if len(pins) == 0 {
		tiles := e.ts.Tiles()
		return []Seed{{Coord: grid.Coord{}, Tile: tiles[e.rng.Intn(len(tiles))]}}, nil
	}
	taken := make(map[grid.Coord]struct{}, len(pins))
	for _, s := range pins {
		if !s.Coord.InBounds(e.width, e.height) {
			return nil, fmt.Errorf("%w: %v", ErrSeedOutOfBounds, s.Coord)
		}
		if _, dup := taken[s.Coord]; dup {
			return nil, fmt.Errorf("%w: %v", ErrSeedConflict, s.Coord)
		}
		taken[s.Coord] = struct{}{}
		// Pins must be canonical members of the run's tile set; a weight
		// lookup doubles as that membership check.
		if _, err := e.ts.Weight(s.Tile); err != nil {
			return nil, fmt.Errorf("collapse: seed at %v: %w", s.Coord, err)
		}
	}
	return pins, nil
}

// place writes tile into coord and narrows every unplaced in-bounds
// neighbor to the tiles compatible across the shared edge. An emptied
// neighbor set aborts the run with ErrContradiction naming that neighbor;
// state is left as-is (last-valid) and the run must not be reused.
func (e *engine) place(coord grid.Coord, tile *tileset.Tile) error {
	e.placed[coord] = tile
	delete(e.frontier, coord)

	for _, n := range grid.Neighbors(coord, e.width, e.height) {
		if _, done := e.placed[n.Coord]; done {
			continue
		}
		matches := e.ts.MatchBorder(tile.Border(n.Side), n.Side.Opposite())
		set, exists := e.frontier[n.Coord]
		if exists {
			before := len(set)
			set = intersect(set, matches)
			e.frontier[n.Coord] = set
			if e.onNarrow != nil {
				e.onNarrow(n.Coord, before, len(set))
			}
		} else {
			set = make(candidateSet, len(matches))
			for _, m := range matches {
				set[m] = struct{}{}
			}
			e.frontier[n.Coord] = set
		}
		if len(set) == 0 {
			return fmt.Errorf("%w at %v", ErrContradiction, n.Coord)
		}
	}
	return nil
}

// selectMRV returns the frontier cell with the fewest remaining candidates,
// ties broken by natural (row, col) order. Scan-based by design at the
// intended scale; independent of map iteration order.
func (e *engine) selectMRV() grid.Coord {
	var (
		best     grid.Coord
		bestSize int
		found    bool
	)
	for coord, set := range e.frontier {
		size := len(set)
		if !found || size < bestSize || (size == bestSize && coord.Less(best)) {
			best, bestSize, found = coord, size, true
		}
	}
	return best
}

// resolve draws one tile from a candidate set via weighted random choice,
// candidates visited in identity order so the draw is reproducible.
func (e *engine) resolve(set candidateSet) (*tileset.Tile, error) {
	tiles := make([]*tileset.Tile, 0, len(set))
	for t := range set {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })

	weights := make([]float64, len(tiles))
	total := 0.0
	for i, t := range tiles {
		w, err := e.ts.Weight(t)
		if err != nil {
			return nil, err
		}
		weights[i] = w
		total += w
	}

	r := e.rng.Float64() * total
	for i, t := range tiles {
		r -= weights[i]
		if r < 0 {
			return t, nil
		}
	}
	// Float drift can leave r at exactly 0 after the last subtraction.
	return tiles[len(tiles)-1], nil
}

// intersect keeps the members of set that also appear in matches.
func intersect(set candidateSet, matches []*tileset.Tile) candidateSet {
	out := make(candidateSet, len(set))
	for _, m := range matches {
		if _, ok := set[m]; ok {
			out[m] = struct{}{}
		}
	}
	return out
}
