// Package tilewave procedurally fills rectangular grids with tiles from a
// small, weighted, hand-authored atlas using a constraint-propagation
// variant of Wave Function Collapse.
//
// 🚀 What is tilewave?
//
//	A deterministic, zero-surprise library that brings together:
//		• bitmap  — fixed-size pixel grids with mirror/rotation transforms
//		• grid    — coordinates, sides and neighbor enumeration on a board
//		• tileset — symmetry-variant canonicalization, weights & border index
//		• collapse — the frontier engine: MRV selection, weighted resolution,
//		  arc-consistency propagation, hard contradiction reporting
//		• raster  — PNG-backed tile sources and placement rendering
//
// ✨ Why choose tilewave?
//
//   - Reproducible – every random draw flows through an injected, seedable
//     generator; identical seeds yield identical grids
//   - Strict contracts – sentinel errors, errors.Is-friendly, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Small atlases welcome – a handful of hand-drawn tiles is enough
//
// Quick ASCII example:
//
//	┌─┬─┐      a 2×2 board: every shared edge carries identical
//	├─┼─┤      pixel signatures on both tiles facing it.
//	└─┴─┘
//
// Generation either completes the whole board or fails fast with the
// coordinate whose candidate set collapsed to nothing — no backtracking,
// no partial results. Dive into the package docs and examples/ for full
// walkthroughs.
//
//	go get github.com/katalvlaran/tilewave
package tilewave
