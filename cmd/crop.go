package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klippa-app/snapprint/imaging"
	"github.com/klippa-app/snapprint/pdf"
	"github.com/klippa-app/snapprint/snapshot"

	"github.com/spf13/cobra"
)

var (
	// Used for flags.
	fileType string
)

func init() {
	cropCmd.Flags().StringVarP(&fileType, "file-type", "", "", "The file type to write: png, jpeg, gif, bmp, tiff or pdf. Defaults to the extension of the output, or png for stdout.")
	addLumaOption(cropCmd)
	addRasterOptions(cropCmd)

	rootCmd.AddCommand(cropCmd)
}

var cropCmd = &cobra.Command{
	Use:   "crop [input] [output]",
	Short: "Crop and brighten a single image",
	Long:  "Crops the borders of black pixels from an image and lightens it by the luma amount, without printing it.\n[input] can either be a file path or - for stdin. PDF input is only supported from a file.\n[output] can either be a file path or - for stdout.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if err := validateRasterOptions(); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if err := validFile(args[0]); err != nil {
			return fmt.Errorf("could not open input file %s: %w", args[0], newExitCodeError(err, ExitCodeInvalidInput))
		}

		if args[1] != stdFilename {
			folderStat, err := os.Stat(filepath.Dir(args[1]))
			if err != nil {
				return fmt.Errorf("could not open output folder %s: %w", filepath.Dir(args[1]), newExitCodeError(err, ExitCodeInvalidOutput))
			}

			if !folderStat.IsDir() {
				return newExitCodeError(fmt.Errorf("output folder %s is not a folder", filepath.Dir(args[1])), ExitCodeInvalidOutput)
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newProgress(cmd, 4)

		p.next("opening image")
		img, err := openInput(cmd, args[0])
		defer pdf.ClosePdfium()
		if err != nil {
			return openError(args[0], fmt.Errorf("failed to read %s: %w", args[0], err))
		}

		processed, err := normalize(img, luma, p)
		if err != nil {
			return stageError(err)
		}

		p.next("writing image")
		outputType := fileType
		if outputType == "" && args[1] != stdFilename {
			outputType = filepath.Ext(args[1])
		}

		if args[1] == stdFilename {
			err = snapshot.Encode(cmd.OutOrStdout(), processed, outputType, encodeOptions())
			if err != nil {
				return newExitCodeError(fmt.Errorf("failed to encode processed image: %w", err), ExitCodeEncodeError)
			}
			return nil
		}

		outFile, err := os.Create(args[1])
		if err != nil {
			return newExitCodeError(fmt.Errorf("could not create output file %s: %w", args[1], err), ExitCodeInvalidOutput)
		}
		defer outFile.Close()

		err = snapshot.Encode(outFile, processed, outputType, encodeOptions())
		if err != nil {
			return newExitCodeError(fmt.Errorf("failed to encode processed image to %s: %w", args[1], err), ExitCodeEncodeError)
		}

		cmd.Printf("Wrote %s\n", args[1])
		return nil
	},
}

func openInput(cmd *cobra.Command, filename string) (*imaging.RGB, error) {
	if filename != stdFilename {
		img, _, err := snapshot.Open(filename, pdfOptions())
		return img, err
	}

	img, _, err := snapshot.Decode(cmd.InOrStdin())
	return img, err
}
