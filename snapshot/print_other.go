//go:build !windows

package snapshot

import "context"

func Print(ctx context.Context, path string) error {
	return ErrPrintUnsupported
}
