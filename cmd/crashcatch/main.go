package main

import (
	"errors"
	"os"

	"github.com/hugo-lorenzo-mato/crashcatch/cmd/crashcatch/cmd"
	"github.com/hugo-lorenzo-mato/crashcatch/internal/crash"
)

// Version information - set by goreleaser at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(version, commit, date)

	if err := cmd.Execute(); err != nil {
		// Process termination is the top level's job: the crash wrapper
		// only signals the unrecoverable fault.
		var fault *crash.Fault
		if errors.As(err, &fault) {
			os.Exit(fault.ExitCode())
		}
		os.Exit(1)
	}
}
