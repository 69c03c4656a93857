package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/klippa-app/snapprint/pdf"
	"github.com/klippa-app/snapprint/snapshot"

	"github.com/spf13/cobra"
)

var (
	// Used for flags.
	snapshotDir string
	prefix      string
	suffix      string
	noPrint     bool
)

func init() {
	printCmd.Flags().StringVarP(&snapshotDir, "snapshot-dir", "d", "", "Which directory to look for snapshots in, you probably want this to be the directory VLC saves snapshots to.")
	printCmd.MarkFlagRequired("snapshot-dir")
	printCmd.Flags().StringVarP(&prefix, "prefix", "", "", "Only consider files whose name starts with this, e.g. vlcsnap-")
	printCmd.Flags().StringVarP(&suffix, "suffix", "", snapshot.DefaultSuffix, "Appended to the name of the processed image. Files carrying it are never picked up as snapshots.")
	printCmd.Flags().BoolVarP(&noPrint, "no-print", "", false, "Only write the processed image, don't send it to the printer.")
	addLumaOption(printCmd)
	addRasterOptions(printCmd)

	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Process and print the latest snapshot",
	Long:  "Reads the latest file in the snapshot directory, crops the borders of black pixels from it, lightens it by the luma amount and sends it to the default printer. The processed image is written next to the snapshot. Printing currently only works on Windows.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.NoArgs(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if snapshotDir == "" {
			return newExitCodeError(errors.New("the snapshot directory is required"), ExitCodeInvalidArguments)
		}

		if suffix == "" {
			return newExitCodeError(errors.New("suffix can't be empty, the output would overwrite the snapshot"), ExitCodeInvalidArguments)
		}

		if err := validateRasterOptions(); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		folderStat, err := os.Stat(snapshotDir)
		if err != nil {
			return fmt.Errorf("could not open snapshot directory %s: %w", snapshotDir, newExitCodeError(err, ExitCodeInvalidInput))
		}

		if !folderStat.IsDir() {
			return newExitCodeError(fmt.Errorf("snapshot directory %s is not a folder", snapshotDir), ExitCodeInvalidInput)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newProgress(cmd, 6)

		p.next("finding image")
		path, err := snapshot.Latest(snapshotDir, snapshot.Filter{Prefix: prefix, Suffix: suffix}, func(err error) {
			cmd.PrintErrf("warning: %s\n", err)
		})
		if err != nil {
			return newExitCodeError(fmt.Errorf("failed to get most recent file in %s: %w", snapshotDir, err), ExitCodeInvalidInput)
		}

		p.next("opening image")
		img, _, err := snapshot.Open(path, pdfOptions())
		defer pdf.ClosePdfium()
		if err != nil {
			return openError(path, fmt.Errorf("failed to read %s: %w", path, err))
		}

		processed, err := normalize(img, luma, p)
		if err != nil {
			return stageError(err)
		}

		p.next("writing image")
		outPath := snapshot.OutputPath(path, suffix)
		err = snapshot.Save(outPath, processed, encodeOptions())
		if err != nil {
			return saveError(fmt.Errorf("failed to save processed image to %s: %w", outPath, err))
		}

		if noPrint {
			cmd.Printf("Wrote %s\n", outPath)
			return nil
		}

		p.next("printing image")
		err = snapshot.Print(cmd.Context(), outPath)
		if err != nil {
			return printError(err)
		}

		cmd.Printf("Printed %s\n", outPath)
		return nil
	},
}
