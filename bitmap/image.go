package bitmap

// New allocates a zeroed Image of the given dimensions.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}, nil
}

// FromPixels wraps an existing row-major buffer without copying it.
// Returns ErrBadDimensions if the buffer length is not width*height.
// Complexity: O(1).
func FromPixels(width, height int, pix []Pixel) (*Image, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, ErrBadDimensions
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// At returns the pixel at (row, col). Bounds are the caller's contract;
// out-of-range indices panic via the underlying slice.
// Complexity: O(1).
func (im *Image) At(row, col int) Pixel {
	return im.Pix[row*im.Width+col]
}

// Set writes the pixel at (row, col).
// Complexity: O(1).
func (im *Image) Set(row, col int, p Pixel) {
	im.Pix[row*im.Width+col] = p
}

// Row copies row r (left→right) into a fresh slice.
// Complexity: O(W).
func (im *Image) Row(r int) []Pixel {
	out := make([]Pixel, im.Width)
	copy(out, im.Pix[r*im.Width:(r+1)*im.Width])
	return out
}

// Column copies column c (top→bottom) into a fresh slice.
// Complexity: O(H).
func (im *Image) Column(c int) []Pixel {
	out := make([]Pixel, im.Height)
	for r := 0; r < im.Height; r++ {
		out[r] = im.At(r, c)
	}
	return out
}

// Clone returns a deep copy of the image.
// Complexity: O(W×H).
func (im *Image) Clone() *Image {
	pix := make([]Pixel, len(im.Pix))
	copy(pix, im.Pix)
	return &Image{Width: im.Width, Height: im.Height, Pix: pix}
}

// Equal reports whether two images share dimensions and pixel content.
// Complexity: O(W×H).
func (im *Image) Equal(other *Image) bool {
	if im == nil || other == nil {
		return im == other
	}
	if im.Width != other.Width || im.Height != other.Height {
		return false
	}
	for i, p := range im.Pix {
		if other.Pix[i] != p {
			return false
		}
	}
	return true
}
