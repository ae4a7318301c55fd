// Package bitmap defines the pixel grid type and sentinel errors shared by
// its transform operations.
package bitmap

import "errors"

// Sentinel errors for bitmap operations.
var (
	// ErrBadDimensions indicates a non-positive width/height or a pixel
	// buffer whose length does not equal width*height.
	ErrBadDimensions = errors.New("bitmap: width and height must be positive and match the pixel buffer")
	// ErrRotationRange indicates a quarter-turn count outside 0..3.
	ErrRotationRange = errors.New("bitmap: rotation must be in 0..3 quarter turns")
)

// Pixel is one image sample packed as 0xRRGGBBAA.
type Pixel uint32

// Image is a rectangular, row-major pixel grid. The zero value is not
// usable; construct via New or FromPixels. Transform operations never
// mutate their receiver — they allocate fresh images.
type Image struct {
	Width, Height int
	Pix           []Pixel // len == Width*Height, index = row*Width + col
}
