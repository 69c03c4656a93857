package snapshot

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klippa-app/snapprint/imaging"
	"github.com/klippa-app/snapprint/pdf"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PDFOptions controls how PDF snapshots are rasterized.
type PDFOptions struct {
	// Page is a page selector, see pdf.SelectPage.
	Page string
	DPI  int
}

// Decode reads an image in any registered format and converts it into an
// owned RGB buffer. It returns the format name reported by the decoder.
func Decode(r io.Reader) (*imaging.RGB, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return ToRGB(img), format, nil
}

// Open decodes the image at path. PDF files are rendered through pdfium
// according to opts.
func Open(path string, opts PDFOptions) (*imaging.RGB, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		img, err := pdf.RenderPage(path, opts.Page, opts.DPI)
		if err != nil {
			return nil, "", err
		}
		return ToRGB(img), "pdf", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	rgb, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return rgb, format, nil
}

// ToRGB copies img into a new RGB buffer with its origin at (0, 0).
func ToRGB(img image.Image) *imaging.RGB {
	b := img.Bounds()
	rgb := imaging.NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgb, rgb.Rect, img, b.Min, draw.Src)
	return rgb
}
