// Package main is the entry point for the acommit CLI application.
// acommit is an AI-powered command-line tool that generates a Git commit
// message from the pending changes and commits them after confirmation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/acommit/acommit/internal/cmd"
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	rootCmd := cmd.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.FormatError(err))
		os.Exit(apperrors.GetExitCode(err))
	}
}
