// Package main is the entry point for the reef CLI.
//
// reef bootstraps a multi-application GitOps platform on DigitalOcean
// managed Kubernetes: it validates the platform configuration, preflights
// the ambient credentials, and declares the operator and application plan
// that the GitOps tooling deploys.
//
// Commands: init, validate, preflight, bootstrap, secrets.
//
// For detailed usage information, run:
//
//	reef --help
package main

import (
	"fmt"
	"os"

	"github.com/reefctl/reef/cmd/reef/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
