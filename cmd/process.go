package cmd

import (
	"fmt"

	"github.com/klippa-app/snapprint/imaging"

	"github.com/spf13/cobra"
)

// progress reports pipeline stages as "[n/total] message" on stderr, stdout
// may be carrying image data.
type progress struct {
	cmd   *cobra.Command
	step  int
	total int
}

func newProgress(cmd *cobra.Command, total int) *progress {
	return &progress{cmd: cmd, total: total}
}

func (p *progress) next(message string) {
	p.step++
	p.cmd.PrintErrf("[%d/%d] %s\n", p.step, p.total, message)
}

// normalize crops the borders off img and lifts its levels by offset. Every
// error names the stage that failed.
func normalize(img *imaging.RGB, offset uint8, p *progress) (*imaging.RGB, error) {
	p.next("cropping image")
	rect, err := imaging.ScanBorders(img)
	if err != nil {
		return nil, fmt.Errorf("could not scan borders: %w", err)
	}

	cropped, err := imaging.Crop(img, rect)
	if err != nil {
		return nil, fmt.Errorf("could not crop to %v: %w", rect, err)
	}

	p.next("brightening image")
	imaging.RemapLevels(cropped, offset)

	return cropped, nil
}
