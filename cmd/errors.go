package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klippa-app/snapprint/imaging"
	"github.com/klippa-app/snapprint/pdf"
	"github.com/klippa-app/snapprint/snapshot"
)

type ExitCodeError struct {
	originalError error
	exitCode      int
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.originalError
}

func (e *ExitCodeError) ExitCode() int {
	return e.exitCode
}

func newExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}

// openError picks the exit code for a failure to load the image at path.
func openError(path string, err error) *ExitCodeError {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, pdf.ErrInvalidPage):
		return newExitCodeError(err, ExitCodeInvalidPage)
	case strings.EqualFold(filepath.Ext(path), ".pdf"):
		return newExitCodeError(err, ExitCodePdfiumError)
	case errors.As(err, &pathErr):
		return newExitCodeError(err, ExitCodeInvalidInput)
	default:
		return newExitCodeError(err, ExitCodeDecodeError)
	}
}

// saveError picks the exit code for a failure to write the output.
func saveError(err error) *ExitCodeError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return newExitCodeError(err, ExitCodeInvalidOutput)
	}
	return newExitCodeError(err, ExitCodeEncodeError)
}

// stageError picks the exit code for a failure of one of the image stages.
func stageError(err error) *ExitCodeError {
	switch {
	case errors.Is(err, imaging.ErrNoContent):
		return newExitCodeError(err, ExitCodeNoContent)
	case errors.Is(err, imaging.ErrOutOfBounds):
		return newExitCodeError(err, ExitCodeCropError)
	default:
		return newExitCodeError(err, ExitCodeUnknownError)
	}
}

// printError picks the exit code for a failed print job.
func printError(err error) *ExitCodeError {
	if errors.Is(err, snapshot.ErrPrintUnsupported) {
		return newExitCodeError(err, ExitCodePrintUnsupported)
	}
	return newExitCodeError(err, ExitCodePrintError)
}

const stdFilename = "-"

func validFile(filename string) error {
	if filename == stdFilename {
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}

	return nil
}
