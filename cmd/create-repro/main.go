package main

import (
	"github.com/tacogips/create-repro/internal/build"
	"github.com/tacogips/create-repro/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	build.Set(version, gitCommit, buildDate)

	cli.Execute()
}
