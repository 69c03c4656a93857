package imaging

import (
	"image"
	"image/color"
)

var (
	black  = color.RGBA{0, 0, 0, 255}
	dark   = color.RGBA{15, 15, 15, 255}
	bright = color.RGBA{200, 180, 160, 255}
)

// newFilled returns a w by h image filled with c.
func newFilled(w, h int, c color.RGBA) *RGB {
	img := NewRGB(image.Rect(0, 0, w, h))
	fill(img, img.Rect, c)
	return img
}

func fill(img *RGB, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// newGradient returns an image where every pixel is unique enough to catch
// misplaced copies.
func newGradient(w, h int) *RGB {
	img := NewRGB(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 7), uint8(y * 13), uint8(x + y), 255})
		}
	}
	return img
}

// rowOf builds a single row from a pattern of 'b' (background) and 'c'
// (content) characters.
func rowOf(pattern string) []uint8 {
	row := make([]uint8, 0, len(pattern)*3)
	for _, p := range pattern {
		c := black
		if p == 'c' {
			c = bright
		}
		row = append(row, c.R, c.G, c.B)
	}
	return row
}
