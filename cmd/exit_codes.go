package cmd

const (
	ExitCodeUnknownError     = 1
	ExitCodeInvalidArguments = 2
	ExitCodeInvalidInput     = 3
	ExitCodeInvalidOutput    = 4
	ExitCodeDecodeError      = 5
	ExitCodeEncodeError      = 6
	ExitCodeNoContent        = 7
	ExitCodeCropError        = 8
	ExitCodePrintError       = 9
	ExitCodePrintUnsupported = 10
	ExitCodePdfiumError      = 11
	ExitCodeInvalidPage      = 12
)
