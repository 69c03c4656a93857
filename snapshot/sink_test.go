package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/klippa-app/snapprint/imaging"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		suffix string
		want   string
	}{
		{"test png", filepath.Join("snaps", "vlcsnap-1.png"), DefaultSuffix, filepath.Join("snaps", "vlcsnap-1-vlc-print-out.png")},
		{"test jpeg keeps extension", filepath.Join("snaps", "shot.JPG"), DefaultSuffix, filepath.Join("snaps", "shot-vlc-print-out.JPG")},
		{"test dotted stem", filepath.Join("snaps", "a.b.tiff"), "-out", filepath.Join("snaps", "a.b-out.tiff")},
		{"test webp falls back to png", filepath.Join("snaps", "shot.webp"), DefaultSuffix, filepath.Join("snaps", "shot-vlc-print-out.png")},
		{"test pdf", "shot.pdf", DefaultSuffix, "shot-vlc-print-out.pdf"},
		{"test no extension", "shot", "-out", "shot-out.png"},
	}

	for i := range tests {
		t.Run(tests[i].name, func(t *testing.T) {
			got := OutputPath(tests[i].src, tests[i].suffix)
			if got != tests[i].want {
				t.Errorf("expected %s but got %s", tests[i].want, got)
			}
		})
	}
}

func TestFileType(t *testing.T) {
	tests := map[string]string{
		".png":  "png",
		"JPEG":  "jpeg",
		".jpg":  "jpeg",
		".tif":  "tiff",
		"bmp":   "bmp",
		".pdf":  "pdf",
		".webp": "png",
		"":      "png",
	}
	for ext, want := range tests {
		if got := FileType(ext); got != want {
			t.Errorf("expected %s for %q but got %s", want, ext, got)
		}
	}
}

func testRGB(w, h int) *imaging.RGB {
	img := imaging.NewRGB(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 20), uint8(y * 30), uint8(x ^ y), 255})
		}
	}
	return img
}

func TestEncodeDecodeLossless(t *testing.T) {
	for _, fileType := range []string{"png", "bmp", "tiff"} {
		t.Run(fileType, func(t *testing.T) {
			src := testRGB(9, 7)

			var buf bytes.Buffer
			if err := Encode(&buf, src, fileType, DefaultEncodeOptions); err != nil {
				t.Fatalf("expected no error but got error %s", err.Error())
			}

			got, format, err := Decode(&buf)
			if err != nil {
				t.Fatalf("expected no error but got error %s", err.Error())
			}
			if format != fileType {
				t.Errorf("expected format %s but got %s", fileType, format)
			}
			if !got.Rect.Eq(src.Rect) {
				t.Fatalf("expected bounds %v but got %v", src.Rect, got.Rect)
			}
			if !bytes.Equal(got.Pix, src.Pix) {
				t.Errorf("expected decoded pixels to match the source")
			}
		})
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.jpg")
	src := testRGB(16, 16)

	if err := Save(path, src, DefaultEncodeOptions); err != nil {
		t.Fatalf("expected no error but got error %s", err.Error())
	}

	got, format, err := Open(path, PDFOptions{})
	if err != nil {
		t.Fatalf("expected no error but got error %s", err.Error())
	}
	if format != "jpeg" {
		t.Errorf("expected format jpeg but got %s", format)
	}
	if !got.Rect.Eq(src.Rect) {
		t.Errorf("expected bounds %v but got %v", src.Rect, got.Rect)
	}
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot-out.pdf")
	if err := Save(path, testRGB(30, 20), DefaultEncodeOptions); err != nil {
		t.Fatalf("expected no error but got error %s", err.Error())
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read %s: %s", path, err.Error())
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("expected a PDF file")
	}
}

func TestToRGBTranslatesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.SetRGBA(5, 5, color.RGBA{10, 20, 30, 255})

	got := ToRGB(src)
	if !got.Rect.Eq(image.Rect(0, 0, 3, 2)) {
		t.Fatalf("expected bounds at origin but got %v", got.Rect)
	}
	if c := got.RGBAAt(0, 0); c != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("expected first pixel {10 20 30 255} but got %v", c)
	}
}
