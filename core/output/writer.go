// Package output handles directory layout and file writing for mdpipe runs.
// Every document gets its own directory <root>/<stem>/ with code/ and
// tables/ subdirectories, so batch runs over many documents never collide.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultRoot = "mdpipe_output"

// Writer lays out output directories under a single root.
type Writer struct {
	Root string
}

// New creates a Writer rooted at root, defaulting to ./mdpipe_output.
func New(root string) (*Writer, error) {
	if root == "" {
		root = defaultRoot
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{Root: root}, nil
}

// Sub returns a Writer for a subdirectory of the root, creating it.
// Used for per-repository output trees in fetch mode.
func (w *Writer) Sub(parts ...string) (*Writer, error) {
	return New(filepath.Join(append([]string{w.Root}, parts...)...))
}

// DocWriter is the output directory of one document.
type DocWriter struct {
	Dir  string
	stem string
}

// ForDoc creates the per-document directory <root>/<stem> and returns
// its writer. The stem is sanitized so it stays a single path element.
func (w *Writer) ForDoc(stem string) (*DocWriter, error) {
	stem = Sanitize(stem)
	dir := filepath.Join(w.Root, stem)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return &DocWriter{Dir: dir, stem: stem}, nil
}

// CodeDir is where extracted code blocks are materialized.
func (d *DocWriter) CodeDir() string {
	return filepath.Join(d.Dir, "code")
}

// TablesDir is where CSV and XLSX exports are written.
func (d *DocWriter) TablesDir() string {
	return filepath.Join(d.Dir, "tables")
}

// WriteArtifact writes a rendered document artifact as <stem><ext> and
// returns its path.
func (d *DocWriter) WriteArtifact(data []byte, ext string) (string, error) {
	path := filepath.Join(d.Dir, d.stem+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Sanitize replaces path separators and other unsafe characters so a name
// stays a flat path element.
func Sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '.' || ch == '-' || ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
