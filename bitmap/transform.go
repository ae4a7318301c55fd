package bitmap

// Mirror returns a horizontally flipped copy: column c maps to W-1-c.
// Complexity: O(W×H).
func (im *Image) Mirror() *Image {
	out := &Image{Width: im.Width, Height: im.Height, Pix: make([]Pixel, len(im.Pix))}
	for r := 0; r < im.Height; r++ {
		for c := 0; c < im.Width; c++ {
			out.Set(r, im.Width-1-c, im.At(r, c))
		}
	}
	return out
}

// Rotate90 returns a copy turned one quarter turn counter-clockwise:
// pixel (r, c) of a W×H image maps to (W-1-c, r) of the H×W result, so
// the rightmost column becomes the top row.
// Complexity: O(W×H).
func (im *Image) Rotate90() *Image {
	out := &Image{Width: im.Height, Height: im.Width, Pix: make([]Pixel, len(im.Pix))}
	for r := 0; r < im.Height; r++ {
		for c := 0; c < im.Width; c++ {
			out.Set(im.Width-1-c, r, im.At(r, c))
		}
	}
	return out
}

// Transform applies the canonical symmetry composition: an optional
// horizontal mirror first, then rotation counter-clockwise quarter turns.
// rotation must be in 0..3; returns ErrRotationRange otherwise.
// Complexity: O(W×H) per applied step.
func (im *Image) Transform(reflected bool, rotation int) (*Image, error) {
	if rotation < 0 || rotation > 3 {
		return nil, ErrRotationRange
	}
	cur := im
	if reflected {
		cur = cur.Mirror()
	} else {
		cur = cur.Clone()
	}
	for i := 0; i < rotation; i++ {
		cur = cur.Rotate90()
	}
	return cur, nil
}
