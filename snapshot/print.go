package snapshot

import "errors"

// ErrPrintUnsupported is returned by Print on platforms without a print
// handler we know how to drive.
var ErrPrintUnsupported = errors.New("printing is only supported on Windows")
