package pdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/klippa-app/go-pdfium"
)

// Be sure to close pools/instances when you're done with them.
var pool pdfium.Pool
var PdfiumInstance pdfium.Pdfium
var isLoaded bool

// ErrInvalidPage is returned when a page selector can't be resolved.
var ErrInvalidPage = errors.New("invalid page")

func ClosePdfium() {
	if !isLoaded {
		return
	}

	PdfiumInstance.Close()
	pool.Close()
	isLoaded = false
}

// SelectPage resolves a page selector into a 1-based page number. Next to
// plain page numbers it understands the keywords first and last, and numbers
// prefixed with r count back from the last page, so r1 is the second-last page.
func SelectPage(pageCount int, page string) (int, error) {
	if pageCount < 1 {
		return 0, fmt.Errorf("the document has no pages: %w", ErrInvalidPage)
	}

	page = strings.TrimSpace(page)
	if page == "" || page == "first" {
		return 1, nil
	} else if page == "last" {
		return pageCount, nil
	}

	pageNumber := 0
	if strings.HasPrefix(page, "r") {
		parsed, err := strconv.Atoi(strings.TrimPrefix(page, "r"))
		if err != nil {
			return 0, fmt.Errorf("%s is not a valid page number: %w", strings.TrimPrefix(page, "r"), ErrInvalidPage)
		}
		pageNumber = pageCount - parsed
	} else {
		parsed, err := strconv.Atoi(page)
		if err != nil {
			return 0, fmt.Errorf("%s is not a valid page number: %w", page, ErrInvalidPage)
		}
		pageNumber = parsed
	}

	if pageNumber < 1 || pageNumber > pageCount {
		return 0, fmt.Errorf("%d is not a valid page number, the document has %d page(s): %w", pageNumber, pageCount, ErrInvalidPage)
	}

	return pageNumber, nil
}
