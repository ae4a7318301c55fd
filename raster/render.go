package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/katalvlaran/tilewave/grid"
	"github.com/katalvlaran/tilewave/tileset"
)

// Render blits a complete width×height placement into one NRGBA image,
// each tile at its catalog pixel size: cell (row, col) lands at
// (col×tileW, row×tileH). The placement must cover every board cell —
// Render is strict because the collapse engine never returns partial
// boards; a hole means caller error.
//
// Errors: ErrEmptyPlacement, ErrIncompletePlacement (naming the first
// uncovered cell in natural order).
// Complexity: O(W×H×tileW×tileH).
func Render(placed map[grid.Coord]*tileset.Tile, width, height int) (*image.NRGBA, error) {
	if len(placed) == 0 {
		return nil, ErrEmptyPlacement
	}
	var tileW, tileH int
	for _, t := range placed {
		tileW, tileH = t.Width(), t.Height()
		break
	}

	out := image.NewNRGBA(image.Rect(0, 0, width*tileW, height*tileH))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			tile, ok := placed[grid.Coord{Row: row, Col: col}]
			if !ok {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrIncompletePlacement, row, col)
			}
			blit(out, tile, col*tileW, row*tileH)
		}
	}
	return out, nil
}

// blit copies one tile's transformed pixels to (x0, y0) of dst.
func blit(dst *image.NRGBA, tile *tileset.Tile, x0, y0 int) {
	img := tile.Image()
	for r := 0; r < img.Height; r++ {
		for c := 0; c < img.Width; c++ {
			dst.SetNRGBA(x0+c, y0+r, unpackPixel(img.At(r, c)))
		}
	}
}

// WritePNG encodes img as PNG onto w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to a freshly created (or truncated) file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %q: %w", path, err)
	}
	if err = WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("raster: close %q: %w", path, err)
	}
	return nil
}
