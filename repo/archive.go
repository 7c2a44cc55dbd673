package repo

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const archiveTimeout = 60 * time.Second

// downloadArchive tries GitHub ZIP archives for the hinted branch, or for
// each fallback branch in order, and extracts the first hit into dest.
func (f *Fetcher) downloadArchive(ctx context.Context, ref Ref, dest string) error {
	branches := f.Branches
	if ref.Branch != "" {
		branches = []string{ref.Branch}
	}
	if len(branches) == 0 {
		branches = []string{"main", "master", "HEAD"}
	}

	for _, branch := range branches {
		url := ref.ArchiveURL(branch)
		f.Status.Step("trying archive: %s", url)

		if err := f.fetchAndExtract(ctx, url, dest); err != nil {
			f.Status.Warn("branch %q: %v", branch, err)
			continue
		}
		f.Status.Ok("archive download complete (%s)", branch)
		return nil
	}
	return fmt.Errorf("no archive found (tried %s)", strings.Join(branches, ", "))
}

// fetchAndExtract downloads one ZIP archive to a temp file and unpacks it
// into dest, stripping the repo-branch top-level directory GitHub adds.
func (f *Fetcher) fetchAndExtract(ctx context.Context, url, dest string) error {
	client := &http.Client{Timeout: archiveTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "mdpipe-archive-*.zip")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("saving archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving archive: %w", err)
	}

	return extractZip(tmp.Name(), dest)
}

// extractZip unpacks an archive into dest, dropping the first path element
// of every entry (GitHub archives wrap everything in repo-branch/).
func extractZip(zipPath, dest string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	root := filepath.Clean(dest)
	for _, file := range zr.File {
		rel := stripRoot(file.Name)
		if rel == "" {
			continue
		}

		target := filepath.Join(root, filepath.FromSlash(rel))
		if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("reading archive entry %s: %w", file.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extracting %s: %w", target, err)
	}
	return out.Close()
}

// stripRoot removes the first path element of a slash-separated entry name.
func stripRoot(name string) string {
	name = strings.TrimPrefix(name, "/")
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return ""
}
