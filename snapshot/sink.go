package snapshot

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klippa-app/snapprint/pdf"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// EncodeOptions tune the output encoders.
type EncodeOptions struct {
	// JPEGQuality is used for jpeg output, 1-100.
	JPEGQuality int
	// DPI sets the page size of PDF output.
	DPI int
}

// DefaultEncodeOptions match what most printers expect.
var DefaultEncodeOptions = EncodeOptions{
	JPEGQuality: 95,
	DPI:         150,
}

// FileType normalizes an extension or format name into the name of the
// encoder that handles it. Formats we can read but not write fall back to
// png.
func FileType(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "jpeg"
	case "gif":
		return "gif"
	case "bmp":
		return "bmp"
	case "tif", "tiff":
		return "tiff"
	case "pdf":
		return "pdf"
	default:
		return "png"
	}
}

// OutputPath derives the path of the processed image from the source path:
// the same directory, the stem with suffix appended, and the same extension
// when we have an encoder for it.
func OutputPath(src string, suffix string) string {
	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(filepath.Base(src), ext)

	if FileType(ext) == "png" && !strings.EqualFold(ext, ".png") {
		ext = ".png"
	}

	return filepath.Join(filepath.Dir(src), stem+suffix+ext)
}

// Encode writes img to w in the given file type.
func Encode(w io.Writer, img image.Image, fileType string, opts EncodeOptions) error {
	switch FileType(fileType) {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.JPEGQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "pdf":
		return pdf.WriteImage(w, img, opts.DPI)
	default:
		return png.Encode(w, img)
	}
}

// Save encodes img into the file at path, picking the encoder from its
// extension.
func Save(path string, img image.Image, opts EncodeOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(f, img, filepath.Ext(path), opts)
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return f.Close()
}
