package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const imageName = "snapshot"

// pxToPt converts a pixel value into a pt value (72 pts per inch) at the
// given resolution.
func pxToPt(px int, dpi int) float64 {
	return float64(px) * 72 / float64(dpi)
}

// WriteImage writes img to w as a single page PDF. The page is exactly the
// size of the image when printed at dpi.
func WriteImage(w io.Writer, img image.Image, dpi int) error {
	if dpi <= 0 {
		return fmt.Errorf("invalid resolution %d dpi", dpi)
	}

	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return fmt.Errorf("could not encode image for PDF: %w", err)
	}

	b := img.Bounds()
	width, height := pxToPt(b.Dx(), dpi), pxToPt(b.Dy(), dpi)

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, float64(0))
	doc.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})

	options := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(imageName, options, &buf)
	doc.ImageOptions(imageName, 0, 0, width, height, false, options, 0, "")

	return doc.Output(w)
}
