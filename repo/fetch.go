package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/gaurav-prasanna/mdpipe/ui"
)

// Fetcher downloads repositories into a local cache directory.
type Fetcher struct {
	CacheRoot string
	Branches  []string // archive fallback order when no branch is hinted
	Status    *ui.Status
}

// Fetch materializes the repository under the cache root and returns the
// checkout directory. An existing checkout is reused unless refresh is set.
// Strategy: shallow git clone first, ZIP archive fallback second.
func (f *Fetcher) Fetch(ctx context.Context, ref Ref, refresh bool) (string, error) {
	dest := filepath.Join(f.CacheRoot, ref.CacheKey())

	if _, err := os.Stat(dest); err == nil {
		if !refresh {
			f.Status.Info("reusing cached checkout: %s", dest)
			return dest, nil
		}
		f.Status.Step("removing cached checkout %s", dest)
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("removing %s: %w", dest, err)
		}
	}

	if err := os.MkdirAll(f.CacheRoot, 0755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	err := f.clone(ctx, ref, dest)
	if err == nil {
		f.Status.Ok("clone complete")
		return dest, nil
	}
	f.Status.Warn("git clone failed: %v", err)
	f.Status.Step("falling back to archive download")

	if err := f.downloadArchive(ctx, ref, dest); err != nil {
		os.RemoveAll(dest)
		return "", fmt.Errorf("downloading %s: %w", ref, err)
	}
	return dest, nil
}

// clone performs a depth-1 clone, pinned to the hinted branch when set.
func (f *Fetcher) clone(ctx context.Context, ref Ref, dest string) error {
	f.Status.Step("git clone %s%s", ref.CloneURL(), branchLabel(ref.Branch))

	opts := &git.CloneOptions{
		URL:   ref.CloneURL(),
		Depth: 1,
	}
	if ref.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref.Branch)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		os.RemoveAll(dest)
		return err
	}
	return nil
}

func branchLabel(branch string) string {
	if branch == "" {
		return ""
	}
	return " @ " + branch
}
