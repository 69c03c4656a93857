//go:build !snapprint_use_cgo

package pdf

import (
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
)

// LoadPdfium starts the embedded webassembly build of pdfium. A snapshot is
// one document at a time, so a single worker is plenty.
func LoadPdfium() error {
	if isLoaded {
		return nil
	}

	var err error
	pool, err = webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return err
	}

	PdfiumInstance, err = pool.GetInstance(time.Second * 30)
	if err != nil {
		pool.Close()
		return err
	}

	isLoaded = true

	return nil
}
