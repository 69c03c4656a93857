//go:build windows

package snapshot

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Print sends the file at path to the default printer. Raster images go
// through Paint, anything else through the print verb of its registered
// handler.
func Print(ctx context.Context, path string) error {
	var command *exec.Cmd
	if FileType(filepath.Ext(path)) == "pdf" {
		quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
		command = exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", "Start-Process -FilePath "+quoted+" -Verb Print -Wait")
	} else {
		command = exec.CommandContext(ctx, "mspaint", "/p", path)
	}

	out, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("couldn't print through %s: %w: %s", command.Path, err, out)
	}
	return nil
}
