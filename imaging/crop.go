package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrOutOfBounds is returned by Crop for rectangles that are empty or do not
// fit inside the source image.
var ErrOutOfBounds = errors.New("crop rectangle out of bounds")

// Crop copies the pixels inside r into a new image with its origin at (0, 0).
// The result never shares memory with src.
func Crop(src *RGB, r image.Rectangle) (*RGB, error) {
	if r.Empty() {
		return nil, fmt.Errorf("rectangle %v has no area: %w", r, ErrOutOfBounds)
	}
	if !r.In(src.Rect) {
		return nil, fmt.Errorf("rectangle %v does not fit in image bounds %v: %w", r, src.Rect, ErrOutOfBounds)
	}

	dst := NewRGB(image.Rect(0, 0, r.Dx(), r.Dy()))
	n := r.Dx() * 3
	for y := 0; y < r.Dy(); y++ {
		si := src.PixOffset(r.Min.X, r.Min.Y+y)
		di := y * dst.Stride
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}

	return dst, nil
}
