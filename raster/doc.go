// Package raster is the pixel I/O collaborator around the collapse core:
// it decodes catalog references into bitmap images and rasterizes finished
// placements back into standard library images.
//
// What:
//
//   - FileSource and MemorySource implement tileset.Source — the former
//     decodes PNG files (any registered image format, in fact), the latter
//     serves programmatic atlases and tests.
//   - Render blits every placed tile's transformed pixels into one
//     *image.NRGBA at the catalog tile size.
//   - WritePNG / SavePNG encode the result.
//
// Why:
//
//   - The core stays value-based: tileset and collapse never touch files
//     or codecs; everything format-shaped lives here.
//
// Complexity:
//
//   - Render: O(W×H×tileW×tileH) — one pass over every output pixel.
//   - Load: codec-bound, one decode per catalog entry.
//
// Errors:
//
//   - ErrUnknownRef: MemorySource has no image for the reference.
//   - ErrEmptyPlacement / ErrIncompletePlacement: Render given no tiles,
//     or a board with unassigned cells.
//   - Decode, encode and file-system failures are wrapped with their
//     reference or path.
package raster
