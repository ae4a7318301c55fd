// Package collapse defines the engine's options, seed pins and sentinel
// errors.
package collapse

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/tilewave/grid"
	"github.com/katalvlaran/tilewave/tileset"
)

// Sentinel errors for collapse runs.
var (
	// ErrBadDimensions indicates non-positive board width or height.
	ErrBadDimensions = errors.New("collapse: board width and height must be positive")
	// ErrNilTileSet indicates Generate was given no tile set.
	ErrNilTileSet = errors.New("collapse: tile set must not be nil")
	// ErrEmptyTileSet indicates the tile set holds no canonical tiles.
	ErrEmptyTileSet = errors.New("collapse: tile set must hold at least one tile")
	// ErrSeedOutOfBounds indicates a seed pin outside the board.
	ErrSeedOutOfBounds = errors.New("collapse: seed coordinate outside the board")
	// ErrSeedConflict indicates two seed pins targeting the same cell.
	ErrSeedConflict = errors.New("collapse: duplicate seed coordinate")
	// ErrContradiction indicates a frontier cell whose candidate set became
	// empty during propagation. The wrapped message names the coordinate;
	// the run is failed and must not be reused.
	ErrContradiction = errors.New("collapse: constraint contradiction")
)

// Seed pins one tile to one cell before the collapse loop starts. Pins are
// applied in caller order and must reference canonical tiles of the run's
// TileSet (see TileSet.Lookup).
type Seed struct {
	Coord grid.Coord
	Tile  *tileset.Tile
}

// Options configures one Generate run.
//
// Fields:
//   - Seed     — RNG seed; 0 selects the fixed default constant, so the
//     zero value stays reproducible. Ignored when Rand is set.
//   - Rand     — explicit generator; takes precedence over Seed. A
//     *rand.Rand is not goroutine-safe: one run owns it exclusively.
//   - Seeds    — ordered seed pins. Empty means "one uniformly random tile
//     at the origin".
//   - OnNarrow — observation hook fired whenever an existing frontier
//     entry is narrowed, with the cell and its candidate count before and
//     after the intersection. Nil to disable. Must not mutate engine state.
type Options struct {
	Seed     int64
	Rand     *rand.Rand
	Seeds    []Seed
	OnNarrow func(c grid.Coord, before, after int)
}

// DefaultOptions returns the reproducible zero configuration: default
// fixed seed, no pins, no hook.
func DefaultOptions() Options {
	return Options{}
}
