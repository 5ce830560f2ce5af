package main

import (
	"context"
	"os"

	"github.com/jortwiebrens/portfolio/log"
	"github.com/jortwiebrens/portfolio/site"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd(buildInfo{Version: version, Commit: commit, Date: date})

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger := log.NewWith(site.ServiceName, log.Options{Format: "pretty", Out: os.Stderr})
		logger.Error("command failed", "err", err)
		return 1
	}

	return 0
}
