// Package main provides the entry point for the vitalsync CLI tool.
package main

import (
	"github.com/vitalsync/vitalsync/cmd/vitalsync/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
