// Package raster defines the sentinel errors and pixel conversions shared
// by its sources and the renderer.
package raster

import (
	"errors"
	"image"
	"image/color"

	"github.com/katalvlaran/tilewave/bitmap"
)

// Sentinel errors for raster operations.
var (
	// ErrUnknownRef indicates a MemorySource lookup for an absent reference.
	ErrUnknownRef = errors.New("raster: no image for reference")
	// ErrEmptyPlacement indicates Render was given no placement at all.
	ErrEmptyPlacement = errors.New("raster: placement is empty")
	// ErrIncompletePlacement indicates a board cell without an assigned tile.
	ErrIncompletePlacement = errors.New("raster: placement does not cover the board")
)

// FromImage converts any standard library image into a packed-RGBA bitmap.
// Complexity: O(W×H).
func FromImage(src image.Image) *bitmap.Image {
	b := src.Bounds()
	out := &bitmap.Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]bitmap.Pixel, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Set(y-b.Min.Y, x-b.Min.X, packPixel(c))
		}
	}
	return out
}

// packPixel packs a non-premultiplied color as 0xRRGGBBAA.
func packPixel(c color.NRGBA) bitmap.Pixel {
	return bitmap.Pixel(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
}

// unpackPixel is the inverse of packPixel.
func unpackPixel(p bitmap.Pixel) color.NRGBA {
	return color.NRGBA{
		R: uint8(p >> 24),
		G: uint8(p >> 16),
		B: uint8(p >> 8),
		A: uint8(p),
	}
}
