// Package collapse fills a rectangular board with tiles from a weighted
// TileSet so that every pair of adjacent tiles is edge-compatible — the
// frontier-driven Wave Function Collapse procedure.
//
// What:
//
//   - Generate runs one collapse pass: seed placements (caller pins or a
//     uniformly random tile at the origin), then a loop of minimum-
//     remaining-candidates selection, weighted random resolution and
//     arc-consistency propagation until the board is full.
//   - Placing a tile narrows each unplaced neighbor's candidate set to the
//     tiles whose facing edge matches the shared border; candidate sets
//     only ever shrink.
//   - An emptied candidate set is a contradiction: the run aborts at once
//     with the offending coordinate. No rollback, no backtracking.
//
// Why:
//
//   - MRV selection resolves the most constrained cell first, which keeps
//     late contradictions rare on reasonable atlases.
//   - Giving up on contradiction keeps a run linear-ish in board area; the
//     caller may retry with another seed or catalog.
//
// Determinism:
//
//   - Every random draw flows through the run's generator. Identical
//     TileSet, dimensions, seed pins and RNG seed reproduce the identical
//     placement. Ties in MRV selection break by natural (row, col) order
//     and candidates are resolved in identity order, so nothing depends on
//     map iteration.
//
// Complexity:
//
//   - O(W×H × (F + k log k)) for frontier size F and candidate count k;
//     the full-scan MRV selection is intended for small-atlas scales (swap
//     in a priority structure keyed by candidate count if that changes).
//
// Errors:
//
//   - ErrBadDimensions, ErrNilTileSet, ErrEmptyTileSet: input validation.
//   - ErrSeedOutOfBounds, ErrSeedConflict (plus tileset.ErrUnknownTile for
//     non-canonical pins): seed validation.
//   - ErrContradiction: a frontier cell ran out of candidates; the wrapped
//     message names its coordinate.
package collapse
