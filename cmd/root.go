// Package cmd implements the CLI commands for mdpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "mdpipe",
	Short: "mdpipe — convert Markdown documents into derived artifacts",
	Long: `mdpipe extracts fenced code blocks and pipe tables from Markdown
documents and renders full documents to styled HTML and PDF. Documents can
be local files or fetched from GitHub repositories.

Usage:
  mdpipe convert <file.md|dir> [flags]
  mdpipe fetch <github-url> [flags]
  mdpipe summary <file.md> [flags]`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
