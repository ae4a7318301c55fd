package collapse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewave/collapse"
	"github.com/katalvlaran/tilewave/grid"
	"github.com/katalvlaran/tilewave/tileset"
)

// TestGenerate_Validation covers the input error contract.
func TestGenerate_Validation(t *testing.T) {
	ts := knotsSet(t)

	t.Run("BadDimensions", func(t *testing.T) {
		_, err := collapse.Generate(0, 5, ts, collapse.DefaultOptions())
		require.ErrorIs(t, err, collapse.ErrBadDimensions)
		_, err = collapse.Generate(5, -1, ts, collapse.DefaultOptions())
		require.ErrorIs(t, err, collapse.ErrBadDimensions)
	})

	t.Run("NilTileSet", func(t *testing.T) {
		_, err := collapse.Generate(3, 3, nil, collapse.DefaultOptions())
		require.ErrorIs(t, err, collapse.ErrNilTileSet)
	})

	t.Run("EmptyTileSet", func(t *testing.T) {
		empty, err := tileset.New(memSource{})
		require.NoError(t, err)
		_, err = collapse.Generate(3, 3, empty, collapse.DefaultOptions())
		require.ErrorIs(t, err, collapse.ErrEmptyTileSet)
	})

	t.Run("SeedOutOfBounds", func(t *testing.T) {
		cross, err := ts.Lookup("cross", false, 0)
		require.NoError(t, err)
		opts := collapse.DefaultOptions()
		opts.Seeds = []collapse.Seed{{Coord: grid.Coord{Row: 5, Col: 0}, Tile: cross}}
		_, err = collapse.Generate(3, 3, ts, opts)
		require.ErrorIs(t, err, collapse.ErrSeedOutOfBounds)
	})

	t.Run("SeedConflict", func(t *testing.T) {
		cross, err := ts.Lookup("cross", false, 0)
		require.NoError(t, err)
		opts := collapse.DefaultOptions()
		opts.Seeds = []collapse.Seed{
			{Coord: grid.Coord{Row: 1, Col: 1}, Tile: cross},
			{Coord: grid.Coord{Row: 1, Col: 1}, Tile: cross},
		}
		_, err = collapse.Generate(3, 3, ts, opts)
		require.ErrorIs(t, err, collapse.ErrSeedConflict)
	})

	t.Run("SeedForeignTile", func(t *testing.T) {
		foreign, err := tileset.NewTile("ghost", false, 0, img(t, 3, 3,
			wht, wht, wht, wht, wht, wht, wht, wht, wht))
		require.NoError(t, err)
		opts := collapse.DefaultOptions()
		opts.Seeds = []collapse.Seed{{Coord: grid.Coord{}, Tile: foreign}}
		_, err = collapse.Generate(3, 3, ts, opts)
		require.ErrorIs(t, err, tileset.ErrUnknownTile)
	})
}

// TestGenerate_TrivialBoard checks the 1×1 short-circuit: one pin, no
// propagation, the placement is exactly the pin.
func TestGenerate_TrivialBoard(t *testing.T) {
	ts := knotsSet(t)
	cross, err := ts.Lookup("cross", false, 0)
	require.NoError(t, err)

	narrowed := 0
	opts := collapse.DefaultOptions()
	opts.Seeds = []collapse.Seed{{Coord: grid.Coord{}, Tile: cross}}
	opts.OnNarrow = func(grid.Coord, int, int) { narrowed++ }

	placed, err := collapse.Generate(1, 1, ts, opts)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	require.True(t, placed[grid.Coord{}].Equal(cross))
	require.Zero(t, narrowed, "1×1 board must not propagate")
}

// TestGenerate_AdjacencyConsistency fills a board from the knots atlas and
// verifies the core invariant: every pair of grid-adjacent tiles presents
// identical signatures on the shared edge.
func TestGenerate_AdjacencyConsistency(t *testing.T) {
	const width, height = 8, 6
	ts := knotsSet(t)

	placed, err := collapse.Generate(width, height, ts, collapse.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, placed, width*height, "every cell must be assigned")

	for coord, tile := range placed {
		require.NotNil(t, tile)
		for _, n := range grid.Neighbors(coord, width, height) {
			other := placed[n.Coord]
			require.NotNil(t, other)
			require.Equal(t,
				tile.Border(n.Side), other.Border(n.Side.Opposite()),
				"edge mismatch between %v at %v and %v at %v",
				tile, coord, other, n.Coord)
		}
	}
}

// TestGenerate_SeedPins keeps caller pins in the final placement.
func TestGenerate_SeedPins(t *testing.T) {
	ts := knotsSet(t)
	cross, err := ts.Lookup("cross", false, 0)
	require.NoError(t, err)

	center := grid.Coord{Row: 2, Col: 2}
	opts := collapse.DefaultOptions()
	opts.Seeds = []collapse.Seed{{Coord: center, Tile: cross}}

	placed, err := collapse.Generate(5, 5, ts, opts)
	require.NoError(t, err)
	require.True(t, placed[center].Equal(cross), "pinned cell was reassigned")
}

// TestGenerate_Determinism requires identical runs for identical seeds.
func TestGenerate_Determinism(t *testing.T) {
	const width, height = 7, 7
	ts := knotsSet(t)

	run := func(seed int64) map[grid.Coord]*tileset.Tile {
		opts := collapse.DefaultOptions()
		opts.Seed = seed
		placed, err := collapse.Generate(width, height, ts, opts)
		require.NoError(t, err)
		return placed
	}

	first := run(42)
	second := run(42)
	require.Len(t, second, len(first))
	for coord, tile := range first {
		require.True(t, tile.Equal(second[coord]),
			"runs diverged at %v: %v vs %v", coord, tile, second[coord])
	}
}

// TestGenerate_MonotonicNarrowing asserts candidate sets never grow
// between creation and placement, observed through the OnNarrow hook.
func TestGenerate_MonotonicNarrowing(t *testing.T) {
	ts := knotsSet(t)
	opts := collapse.DefaultOptions()
	events := 0
	opts.OnNarrow = func(c grid.Coord, before, after int) {
		events++
		require.LessOrEqual(t, after, before,
			"candidate set at %v grew from %d to %d", c, before, after)
		require.Positive(t, before)
	}

	_, err := collapse.Generate(6, 6, ts, opts)
	require.NoError(t, err)
	require.Positive(t, events, "a 6×6 run must narrow at least one cell")
}

// TestGenerate_Contradiction seeds two incompatible 1×1 colors with one
// shared unplaced neighbor: propagation must fail exactly there, yield no
// placement, and name the coordinate.
func TestGenerate_Contradiction(t *testing.T) {
	ts := colorSet(t)
	red, err := ts.Lookup("red", false, 0)
	require.NoError(t, err)
	blue, err := ts.Lookup("blue", false, 0)
	require.NoError(t, err)

	opts := collapse.DefaultOptions()
	opts.Seeds = []collapse.Seed{
		{Coord: grid.Coord{Row: 0, Col: 0}, Tile: red},
		{Coord: grid.Coord{Row: 0, Col: 2}, Tile: blue},
	}

	placed, err := collapse.Generate(3, 1, ts, opts)
	require.ErrorIs(t, err, collapse.ErrContradiction)
	require.Nil(t, placed, "a failed run must not hand out a partial board")
	require.True(t, strings.Contains(err.Error(), grid.Coord{Row: 0, Col: 1}.String()),
		"contradiction must name the offending coordinate, got: %v", err)
}

// TestGenerate_WeightBias sanity-checks weighted resolution: with two
// always-compatible tiles at 50:1, the heavy one must dominate the board.
func TestGenerate_WeightBias(t *testing.T) {
	const width, height = 20, 20
	ts := dotSet(t, 50, 1)

	placed, err := collapse.Generate(width, height, ts, collapse.DefaultOptions())
	require.NoError(t, err)

	dots := 0
	for _, tile := range placed {
		if tile.Ref == "dot" {
			dots++
		}
	}
	require.Greater(t, dots, width*height*3/4,
		"expected the 50:1 tile on most cells, got %d of %d", dots, width*height)
}
