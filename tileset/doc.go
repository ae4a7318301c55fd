// Package tileset canonicalizes base tile images into their distinct
// symmetry variants and indexes every variant's edge signatures for
// constant-time adjacency lookups.
//
// What:
//
//   - Tile is one immutable symmetry variant of a base image, identified
//     by (Ref, Reflected, Rotation) and carrying four edge signatures.
//   - TileSet ingests (ref, weight) catalog entries through an injected
//     Source, deduplicates pixel-identical variants, conserves each base
//     weight across its survivors, and maintains a per-side index from
//     edge signature to the tiles presenting it on that side.
//   - MatchBorder answers "which tiles may sit across this edge": query
//     it with a placed tile's signature and the opposite side.
//
// Why:
//
//   - Collapse-style generators spend their entire propagation budget on
//     border lookups; precomputing the four signature indexes makes each
//     one a map access.
//   - A 4-fold symmetric tile collapses to a single variant, a fully
//     asymmetric one yields all eight — weights stay conserved either way.
//
// Complexity:
//
//   - Add: O(V×W×H) for V ≤ 8 variants of a W×H base image.
//   - MatchBorder: O(k log k) for k matching tiles (sorted copy).
//   - Weight, Lookup: O(1).
//
// Errors:
//
//   - ErrNilSource: TileSet constructed without an image source.
//   - ErrNonPositiveWeight: catalog weight ≤ 0.
//   - ErrDimensionMismatch: a variant's pixel dimensions differ from the
//     catalog's established tile size (this also rejects non-square base
//     tiles, whose quarter turns swap width and height).
//   - ErrDuplicateRef: the same base reference ingested twice.
//   - ErrUnknownTile: weight or lookup query for a tile not in the set.
package tileset
