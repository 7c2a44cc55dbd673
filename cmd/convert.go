// Package cmd — convert command.
// Orchestrates the pipeline for local documents:
// load → scan → materialize code → export tables → render HTML/PDF.
//
// A failed export step warns and the remaining steps still run; in --all
// mode a failed document is counted and the batch continues.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdpipe/config"
	"github.com/gaurav-prasanna/mdpipe/core"
	"github.com/gaurav-prasanna/mdpipe/core/extract"
	"github.com/gaurav-prasanna/mdpipe/core/output"
	"github.com/gaurav-prasanna/mdpipe/core/render"
	"github.com/gaurav-prasanna/mdpipe/core/scan"
	"github.com/gaurav-prasanna/mdpipe/core/tables"
	"github.com/gaurav-prasanna/mdpipe/repo"
	"github.com/gaurav-prasanna/mdpipe/ui"
)

// Action flags, shared by convert and fetch.
var (
	flagCode bool
	flagCSV  bool
	flagXLSX bool
	flagHTML bool
	flagPDF  bool
)

var (
	flagAllDocs   bool
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.md | directory>",
	Short: "Convert a Markdown file (or a directory of them) to derived artifacts",
	Long: `Convert scans a Markdown document for fenced code blocks and pipe tables,
materializes the blocks as source files, exports the tables to CSV/XLSX,
and renders the document to styled HTML and PDF.

With no action flags every action runs. With a directory argument, --all
processes every Markdown file underneath it into per-document directories.

Examples:
  mdpipe convert README.md
  mdpipe convert README.md --code --csv
  mdpipe convert docs/ --all --html --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addActionFlags(convertCmd)
	convertCmd.Flags().BoolVar(&flagAllDocs, "all", false, "Process every Markdown file under a directory")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: ./mdpipe_output)")
}

func addActionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagCode, "code", false, "Extract fenced code blocks to files")
	cmd.Flags().BoolVar(&flagCSV, "csv", false, "Export tables to CSV, one file per table")
	cmd.Flags().BoolVar(&flagXLSX, "xlsx", false, "Export all tables to one styled XLSX workbook")
	cmd.Flags().BoolVar(&flagHTML, "html", false, "Render styled HTML")
	cmd.Flags().BoolVar(&flagPDF, "pdf", false, "Render PDF (external renderer, gofpdf fallback)")
}

// actions selects which pipeline steps run.
type actions struct {
	code, csv, xlsx, html, pdf bool
}

// selectedActions returns the flagged actions, or everything when no
// action flag was given.
func selectedActions() actions {
	a := actions{code: flagCode, csv: flagCSV, xlsx: flagXLSX, html: flagHTML, pdf: flagPDF}
	if !a.code && !a.csv && !a.xlsx && !a.html && !a.pdf {
		return actions{code: true, csv: true, xlsx: true, html: true, pdf: true}
	}
	return a
}

func runConvert(cmd *cobra.Command, args []string) error {
	status := ui.New(cmd.ErrOrStderr())

	sess, err := config.Load(".")
	if err != nil {
		return err
	}
	if flagOutputDir != "" {
		sess.OutputRoot = flagOutputDir
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	writer, err := output.New(sess.OutputRoot)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if !flagAllDocs {
			return fmt.Errorf("%s is a directory (use --all to process every Markdown file in it)", path)
		}
		return convertTree(path, sess, writer, status)
	}
	return convertOne(path, writer, selectedActions(), status)
}

// convertTree processes every Markdown file under dir. Per-document
// failures are counted and reported, never fatal mid-batch.
func convertTree(dir string, sess config.Session, writer *output.Writer, status *ui.Status) error {
	filter, err := repo.NewFilter(sess.Include, sess.Exclude)
	if err != nil {
		return err
	}

	files, err := repo.FindMarkdownFiles(dir, filter)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		status.Warn("no Markdown files found under %s", dir)
		return nil
	}
	status.Info("found %d Markdown file(s)", len(files))

	var errCount int
	for i, f := range files {
		status.Step("[%d/%d] %s", i+1, len(files), f)
		if err := convertOne(f, writer, selectedActions(), status); err != nil {
			status.Err("%v", err)
			errCount++
		}
	}
	if errCount > 0 {
		return fmt.Errorf("%d/%d documents failed", errCount, len(files))
	}
	return nil
}

// convertOne runs the selected actions for a single document. Only the
// initial read can fail it; every export step degrades to a warning.
func convertOne(path string, writer *output.Writer, act actions, status *ui.Status) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)
	meta := core.MetaFor(path)

	doc, err := writer.ForDoc(meta.Stem)
	if err != nil {
		return err
	}

	if act.code {
		extractCode(text, doc, status)
	}
	if act.csv || act.xlsx {
		exportTables(text, meta, doc, act, status)
	}
	if act.html {
		renderArtifact(render.NewHTMLRenderer(), "HTML", text, meta, doc, status)
	}
	if act.pdf {
		renderArtifact(render.NewPDFRenderer(status.Warn), "PDF", text, meta, doc, status)
	}
	return nil
}

func extractCode(text string, doc *output.DocWriter, status *ui.Status) {
	blocks := scan.CodeBlocks(text)
	if len(blocks) == 0 {
		status.Warn("no fenced code blocks found")
		return
	}

	saved, err := extract.New(doc.CodeDir()).Save(blocks)
	if err != nil {
		status.Warn("extracting code: %v", err)
		return
	}
	for _, s := range saved {
		status.Info("%-35s %-14s line %-5d %d lines", s.Name, orDash(s.Lang), s.Line, s.Lines)
	}
	status.Ok("%d file(s) saved to %s", len(saved), doc.CodeDir())
}

func exportTables(text string, meta core.DocMeta, doc *output.DocWriter, act actions, status *ui.Status) {
	grids := scan.Tables(text)
	if len(grids) == 0 {
		status.Warn("no pipe tables found")
		return
	}

	if act.csv {
		exporter := &tables.CSVExporter{Dir: doc.TablesDir()}
		paths, err := exporter.Export(meta.Stem, grids)
		if err != nil {
			status.Warn("exporting CSV: %v", err)
		} else {
			for i, p := range paths {
				g := grids[i]
				status.Info("%s (%d rows × %d cols)", p, len(g.Rows), g.Cols())
			}
			status.Ok("%d CSV file(s) saved", len(paths))
		}
	}

	if act.xlsx {
		exporter := &tables.XLSXExporter{Dir: doc.TablesDir()}
		path, err := exporter.Export(meta.Stem, grids)
		if err != nil {
			status.Warn("exporting XLSX: %v", err)
		} else {
			status.Ok("%s saved (%d sheet(s))", path, len(grids))
		}
	}
}

func renderArtifact(r core.Renderer, label, text string, meta core.DocMeta, doc *output.DocWriter, status *ui.Status) {
	data, err := r.Render(text, meta)
	if err != nil {
		status.Warn("rendering %s: %v", label, err)
		return
	}
	path, err := doc.WriteArtifact(data, r.Extension())
	if err != nil {
		status.Warn("writing %s: %v", label, err)
		return
	}
	status.Ok("%s saved → %s", label, path)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
