// Package cmd — fetch command.
// Downloads a GitHub repository into the local cache, discovers its
// Markdown files, and runs the convert pipeline over one or all of them.
// Without --file or --all the discovered files are listed so the user can
// pick one.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdpipe/config"
	"github.com/gaurav-prasanna/mdpipe/core/output"
	"github.com/gaurav-prasanna/mdpipe/repo"
	"github.com/gaurav-prasanna/mdpipe/ui"
)

var (
	flagBranch   string
	flagRefresh  bool
	flagFile     string
	flagFetchAll bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <github-url>",
	Short: "Fetch a GitHub repository and convert its Markdown files",
	Long: `Fetch downloads a repository (shallow git clone, ZIP archive fallback
across main/master/HEAD), discovers its Markdown files, and converts them.

Accepted URL forms:
  https://github.com/owner/repo
  https://github.com/owner/repo/tree/branch
  git@github.com:owner/repo.git
  owner/repo

Examples:
  mdpipe fetch owner/repo --all
  mdpipe fetch https://github.com/owner/repo --file docs/guide.md --html
  mdpipe fetch owner/repo --branch develop --refresh`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	addActionFlags(fetchCmd)
	fetchCmd.Flags().StringVar(&flagBranch, "branch", "", "Branch to fetch (default: repo default branch)")
	fetchCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Re-download even when a cached checkout exists")
	fetchCmd.Flags().StringVar(&flagFile, "file", "", "Convert only the file at this repo-relative path")
	fetchCmd.Flags().BoolVar(&flagFetchAll, "all", false, "Convert every discovered Markdown file")
	fetchCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: ./mdpipe_output)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	status := ui.New(cmd.ErrOrStderr())

	ref, err := repo.ParseURL(args[0])
	if err != nil {
		return err
	}
	if flagBranch != "" {
		ref.Branch = flagBranch
	}

	sess, err := config.Load(".")
	if err != nil {
		return err
	}
	if flagOutputDir != "" {
		sess.OutputRoot = flagOutputDir
	}

	status.Head("Fetching %s", ref)
	fetcher := &repo.Fetcher{CacheRoot: sess.CacheRoot, Branches: sess.Branches, Status: status}
	dir, err := fetcher.Fetch(cmd.Context(), ref, flagRefresh)
	if err != nil {
		return err
	}

	filter, err := repo.NewFilter(sess.Include, sess.Exclude)
	if err != nil {
		return err
	}
	files, err := repo.FindMarkdownFiles(dir, filter)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Markdown files found in %s", ref)
	}
	status.Info("found %d Markdown file(s)", len(files))

	writer, err := newRepoWriter(sess, ref)
	if err != nil {
		return err
	}

	if flagFile != "" {
		path, err := findByRelPath(files, dir, flagFile)
		if err != nil {
			return err
		}
		return convertOne(path, writer, selectedActions(), status)
	}

	if flagFetchAll || len(files) == 1 {
		var errCount int
		for i, f := range files {
			rel, _ := filepath.Rel(dir, f)
			status.Step("[%d/%d] %s", i+1, len(files), rel)
			if err := convertOne(f, writer, selectedActions(), status); err != nil {
				status.Err("%v", err)
				errCount++
			}
		}
		if errCount > 0 {
			return fmt.Errorf("%d/%d documents failed", errCount, len(files))
		}
		status.Ok("all files processed")
		return nil
	}

	// No selection: list the candidates and let the user re-run with one.
	status.Head("Markdown files in %s", ref)
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		status.Info("%s", filepath.ToSlash(rel))
	}
	status.Info("re-run with --file <path> to convert one, or --all for everything")
	return nil
}

// newRepoWriter roots output at <root>/github_output/<owner>_<repo>/ so
// repository runs never collide with local-file runs.
func newRepoWriter(sess config.Session, ref repo.Ref) (*output.Writer, error) {
	base, err := output.New(sess.OutputRoot)
	if err != nil {
		return nil, err
	}
	return base.Sub("github_output", ref.CacheKey())
}

// findByRelPath resolves a repo-relative path against the discovered files.
func findByRelPath(files []string, root, want string) (string, error) {
	want = filepath.ToSlash(filepath.Clean(want))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			continue
		}
		if filepath.ToSlash(rel) == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("no Markdown file %q in repository (did you mean one listed by a bare fetch?)", strings.TrimSpace(want))
}
