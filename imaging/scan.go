package imaging

import (
	"errors"
	"image"
)

// ErrNoContent is returned by ScanBorders when every pixel is background.
var ErrNoContent = errors.New("no content found, the image is entirely background")

// span is the half-open range [left, right) of a row that holds content.
type span struct {
	left, right int
}

func background(row []uint8, x int) bool {
	i := x * 3
	return IsBackground(row[i], row[i+1], row[i+2])
}

// rowBounds finds the outermost content pixels of a row in one pass. Content
// segments may be separated by background stripes, only the extrema are
// kept. ok is false when the whole row is background.
func rowBounds(row []uint8) (s span, ok bool) {
	n := len(row) / 3

	x := 0
	for x < n && background(row, x) {
		x++
	}
	if x == n {
		return span{}, false
	}
	s.left = x

	for x < n {
		for x < n && !background(row, x) {
			x++
		}
		// End of this content segment is the best guess for the right bound.
		s.right = x

		for x < n && background(row, x) {
			x++
		}
	}

	return s, true
}

// ScanBorders returns the smallest rectangle that contains every content
// pixel of img. Bands of content separated by fully background rows are
// merged, the result spans from the top of the first band to the bottom of
// the last one.
func ScanBorders(img *RGB) (image.Rectangle, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	leftCrop, rightCrop := w, 0
	topCrop, botCrop := 0, 0

	// Every row is scanned exactly once, s and ok always describe row y.
	scan := func(y int) (span, bool) {
		return rowBounds(img.Row(b.Min.Y + y))
	}

	y := 0
	var s span
	var ok bool

	// Leading background rows.
	for ; y < h; y++ {
		if s, ok = scan(y); ok {
			break
		}
	}
	topCrop = y

	for y < h {
		// Accumulate a band of content rows.
		for ok {
			leftCrop = min(leftCrop, s.left)
			rightCrop = max(rightCrop, s.right)
			y++
			if y == h {
				break
			}
			s, ok = scan(y)
		}
		botCrop = y

		// Skip the background rows that follow it.
		for y < h && !ok {
			y++
			if y < h {
				s, ok = scan(y)
			}
		}
	}

	if rightCrop <= leftCrop || botCrop <= topCrop {
		return image.Rectangle{}, ErrNoContent
	}

	return image.Rect(leftCrop, topCrop, rightCrop, botCrop).Add(b.Min), nil
}
