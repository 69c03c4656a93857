package main

import (
	"errors"
	"os"

	"github.com/klippa-app/snapprint/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		exitCodeError := &cmd.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		} else {
			// Anything cobra rejects before our own validation runs.
			os.Exit(cmd.ExitCodeInvalidArguments)
		}
	}
}
