package cmd

import (
	"fmt"

	"github.com/klippa-app/snapprint/snapshot"

	"github.com/spf13/cobra"
)

var (
	// Used for flags.
	luma        uint8
	dpi         int
	page        string
	jpegQuality int
)

func addLumaOption(command *cobra.Command) {
	command.Flags().Uint8VarP(&luma, "luma", "l", 0, "How far to lift the shadows, from 0 (leave the image as is) to 255 (pure white).")
}

func addRasterOptions(command *cobra.Command) {
	command.Flags().IntVarP(&dpi, "dpi", "", snapshot.DefaultEncodeOptions.DPI, "Resolution used to render PDF snapshots and to size PDF output.")
	command.Flags().StringVarP(&page, "page", "", "first", "The page of a PDF snapshot to use. You can use the keywords first and last, or prepend a page number with r to count from the end, e.g. r1 for the second-last page.")
	command.Flags().IntVarP(&jpegQuality, "jpeg-quality", "", snapshot.DefaultEncodeOptions.JPEGQuality, "Quality to use when the output is jpeg")
}

func validateRasterOptions() error {
	if dpi < 1 {
		return fmt.Errorf("dpi should be positive, got %d", dpi)
	}
	if jpegQuality < 1 || jpegQuality > 100 {
		return fmt.Errorf("jpeg quality should be between 1 and 100, got %d", jpegQuality)
	}
	return nil
}

func pdfOptions() snapshot.PDFOptions {
	return snapshot.PDFOptions{
		Page: page,
		DPI:  dpi,
	}
}

func encodeOptions() snapshot.EncodeOptions {
	return snapshot.EncodeOptions{
		JPEGQuality: jpegQuality,
		DPI:         dpi,
	}
}
