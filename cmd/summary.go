// Package cmd — summary command.
// Prints a structural report for one document: line/word/heading counts
// plus code block and table inventories. --json writes the report as a
// JSON artifact instead of printing it.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdpipe/config"
	"github.com/gaurav-prasanna/mdpipe/core"
	"github.com/gaurav-prasanna/mdpipe/core/output"
	"github.com/gaurav-prasanna/mdpipe/core/render"
	"github.com/gaurav-prasanna/mdpipe/ui"
)

var flagJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary <file.md>",
	Short: "Print a structural summary of a Markdown file",
	Long: `Summary reports what the scanners see in a document: total lines and
words, heading counts by level, and inventories of fenced code blocks
(with their derived filenames) and pipe tables (with their headers).

Examples:
  mdpipe summary README.md
  mdpipe summary README.md --json --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&flagJSON, "json", false, "Write the report as JSON instead of printing it")
	summaryCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory for --json (default: ./mdpipe_output)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	status := ui.New(cmd.OutOrStdout())

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	text := string(data)
	meta := core.MetaFor(path)

	if flagJSON {
		sess, err := config.Load(".")
		if err != nil {
			return err
		}
		if flagOutputDir != "" {
			sess.OutputRoot = flagOutputDir
		}
		writer, err := output.New(sess.OutputRoot)
		if err != nil {
			return err
		}
		doc, err := writer.ForDoc(meta.Stem)
		if err != nil {
			return err
		}
		renderArtifact(render.NewJSONRenderer(), "JSON report", text, meta, doc, ui.New(cmd.ErrOrStderr()))
		return nil
	}

	printReport(status, render.Summarize(text, meta))
	return nil
}

func printReport(status *ui.Status, report core.DocReport) {
	status.Head("Summary of %s", report.Meta.Path)
	status.Info("Total lines  : %d", report.Lines)
	status.Info("Words        : %d", report.Words)
	status.Info("H1 headings  : %d", report.HeadingCount(1))
	status.Info("H2 headings  : %d", report.HeadingCount(2))
	status.Info("H3 headings  : %d", report.HeadingCount(3))
	status.Info("Code blocks  : %d", len(report.CodeBlocks))
	status.Info("Tables       : %d", len(report.Tables))
	status.Info("Links        : %d", len(report.Links))

	if len(report.CodeBlocks) > 0 {
		status.Head("Code blocks")
		for i, b := range report.CodeBlocks {
			status.Info("#%-3d line=%-5d lang=%-12s %s", i+1, b.Line, orDash(b.Lang), b.Filename)
		}
	}

	if len(report.Tables) > 0 {
		status.Head("Tables")
		for i, t := range report.Tables {
			status.Info("#%d  %d cols × %d rows  |  header: %s", i+1, t.Cols, t.Rows, strings.Join(t.Header, ", "))
		}
	}
}
