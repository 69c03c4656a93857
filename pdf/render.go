package pdf

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/klippa-app/go-pdfium/requests"
)

// RenderPage renders a single page of the PDF at path into an image. page is
// a selector as understood by SelectPage. Pdfium is loaded on first use, the
// caller is responsible for calling ClosePdfium.
func RenderPage(path string, page string, dpi int) (image.Image, error) {
	err := LoadPdfium()
	if err != nil {
		return nil, fmt.Errorf("could not load pdfium: %w", err)
	}

	document, err := PdfiumInstance.OpenDocument(&requests.OpenDocument{
		FilePath: &path,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open PDF %s: %w", path, err)
	}
	defer PdfiumInstance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: document.Document})

	pageCount, err := PdfiumInstance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: document.Document,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get page count for PDF %s: %w", path, err)
	}

	pageNumber, err := SelectPage(pageCount.PageCount, page)
	if err != nil {
		return nil, err
	}

	// Pdfium writes the bitmap out itself, we read it back as a regular PNG.
	tmp, err := os.CreateTemp("", "snapprint-page-*.png")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	_, err = PdfiumInstance.RenderToFile(&requests.RenderToFile{
		RenderPagesInDPI: &requests.RenderPagesInDPI{
			Pages: []requests.RenderPageInDPI{
				{
					Page: requests.Page{
						ByIndex: &requests.PageByIndex{
							Document: document.Document,
							Index:    pageNumber - 1, // pdfium is 0-index based
						},
					},
					DPI: dpi,
				},
			},
		},
		OutputFormat:   requests.RenderToFileOutputFormatPNG,
		OutputTarget:   requests.RenderToFileOutputTargetFile,
		TargetFilePath: tmpPath,
	})
	if err != nil {
		return nil, fmt.Errorf("could not render page %d of PDF %s: %w", pageNumber, path, err)
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode rendered page %d: %w", pageNumber, err)
	}

	return img, nil
}
