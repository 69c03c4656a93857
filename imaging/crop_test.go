package imaging

import (
	"errors"
	"image"
	"testing"
)

func TestCrop(t *testing.T) {
	src := newGradient(12, 9)

	tests := []struct {
		name    string
		rect    image.Rectangle
		wantErr error
	}{
		{"test full image", image.Rect(0, 0, 12, 9), nil},
		{"test inner rectangle", image.Rect(2, 3, 7, 8), nil},
		{"test single pixel", image.Rect(11, 8, 12, 9), nil},
		{"test zero width", image.Rect(4, 4, 4, 8), ErrOutOfBounds},
		{"test zero height", image.Rect(4, 4, 8, 4), ErrOutOfBounds},
		{"test past right edge", image.Rect(5, 0, 13, 9), ErrOutOfBounds},
		{"test past bottom edge", image.Rect(0, 5, 12, 10), ErrOutOfBounds},
		{"test negative origin", image.Rect(-1, 0, 4, 4), ErrOutOfBounds},
	}

	for i := range tests {
		t.Run(tests[i].name, func(t *testing.T) {
			rect := tests[i].rect
			got, err := Crop(src, rect)
			if tests[i].wantErr != nil {
				if !errors.Is(err, tests[i].wantErr) {
					t.Errorf("expected error %v but got %v", tests[i].wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got error %s", err.Error())
			}

			if got.Bounds() != image.Rect(0, 0, rect.Dx(), rect.Dy()) {
				t.Fatalf("expected bounds %v but got %v", image.Rect(0, 0, rect.Dx(), rect.Dy()), got.Bounds())
			}
			if len(got.Pix) != rect.Dx()*rect.Dy()*3 {
				t.Errorf("expected %d channels but got %d", rect.Dx()*rect.Dy()*3, len(got.Pix))
			}
			for y := 0; y < rect.Dy(); y++ {
				for x := 0; x < rect.Dx(); x++ {
					want := src.RGBAAt(rect.Min.X+x, rect.Min.Y+y)
					if c := got.RGBAAt(x, y); c != want {
						t.Fatalf("expected pixel (%d, %d) to be %v but got %v", x, y, want, c)
					}
				}
			}
		})
	}
}

func TestCropDoesNotAlias(t *testing.T) {
	src := newGradient(6, 6)
	want := src.RGBAAt(2, 2)

	got, err := Crop(src, image.Rect(1, 1, 5, 5))
	if err != nil {
		t.Fatalf("expected no error but got error %s", err.Error())
	}

	for i := range src.Pix {
		src.Pix[i] = 0
	}
	if c := got.RGBAAt(1, 1); c != want {
		t.Errorf("expected cropped pixel %v to survive source wipe but got %v", want, c)
	}
}

func TestScanThenCrop(t *testing.T) {
	img := newFilled(30, 20, black)
	fill(img, image.Rect(3, 5, 27, 17), bright)

	rect, err := ScanBorders(img)
	if err != nil {
		t.Fatalf("expected no error but got error %s", err.Error())
	}
	cropped, err := Crop(img, rect)
	if err != nil {
		t.Fatalf("expected no error but got error %s", err.Error())
	}
	if cropped.Bounds().Dx() != 24 || cropped.Bounds().Dy() != 12 {
		t.Errorf("expected a 24x12 image but got %v", cropped.Bounds())
	}
	for i := 0; i < len(cropped.Pix); i += 3 {
		if IsBackground(cropped.Pix[i], cropped.Pix[i+1], cropped.Pix[i+2]) {
			t.Fatalf("expected no background left at channel %d", i)
		}
	}
}
