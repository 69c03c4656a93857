package imaging

import (
	"image"
	"image/color"
)

// RGB is an in-memory image whose At method returns color.RGBA values.
type RGB struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewRGB returns a new, black RGB image with the given bounds.
func NewRGB(r image.Rectangle) *RGB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &RGB{
		Pix:    make([]uint8, w*h*3),
		Stride: w * 3,
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small cap improves performance, see https://golang.org/issue/27857
	return color.RGBA{s[0], s[1], s[2], 255}
}

// Set makes RGB a draw.Image. Alpha is dropped, the color is taken as it
// would look composited over black.
func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	r, g, b, _ := c.RGBA()
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = uint8(r >> 8)
	s[1] = uint8(g >> 8)
	s[2] = uint8(b >> 8)
}

func (p *RGB) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Row returns the channels of row y, three bytes per pixel. The slice aliases
// Pix. Rows outside the image are nil.
func (p *RGB) Row(y int) []uint8 {
	if y < p.Rect.Min.Y || y >= p.Rect.Max.Y {
		return nil
	}
	i := p.PixOffset(p.Rect.Min.X, y)
	n := p.Rect.Dx() * 3
	return p.Pix[i : i+n : i+n]
}

// Luma is the BT.601 weighted brightness of a pixel, truncated.
func Luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// BackgroundThreshold is the luma below which a pixel counts as border.
const BackgroundThreshold = 16

// IsBackground reports whether the pixel is dark enough to be cropped away.
func IsBackground(r, g, b uint8) bool {
	return Luma(r, g, b) < BackgroundThreshold
}
