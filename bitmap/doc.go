// Package bitmap provides fixed-size 2D pixel grids and the symmetry
// transforms the tileset canonicalizer is built on.
//
// What:
//
//   - Image wraps a rectangular row-major buffer of packed RGBA pixels.
//   - Mirror flips an image horizontally; Rotate90 turns it one quarter
//     turn counter-clockwise; Transform composes mirror-then-rotation.
//   - Equal compares two images by dimensions and pixel content.
//
// Why:
//
//   - Tile atlases: one decoded image per base tile, transformed into its
//     symmetry variants without touching any file format.
//   - Deduplication: pixel-content equality collapses variants a symmetric
//     tile cannot distinguish.
//
// Complexity:
//
//   - Mirror, Rotate90, Transform, Clone, Equal: O(W×H) time and memory.
//   - At, Set, Row, Column: O(1) / O(n) with no hidden allocations beyond
//     the documented result slice.
//
// Errors:
//
//   - ErrBadDimensions: non-positive width/height or mismatched buffer size.
//   - ErrRotationRange: rotation outside the 0..3 quarter-turn range.
package bitmap
