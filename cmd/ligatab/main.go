// ligatab is a CLI tool that derives league standings from CSV files and
// answers team and match prefix queries.
package main

import (
	"ligatab/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
