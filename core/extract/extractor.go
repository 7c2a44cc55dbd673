// Package extract materializes fenced code blocks as individual source files.
//
// Naming rules:
//   - explicit hint  ```java:MyClass.java  → MyClass.java
//   - no hint        ```python at line 42  → code_line42.py
//
// Hints are flattened (path separators become underscores) and colliding
// names get a numeric suffix before the extension.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mdpipe/core"
)

// extMap maps lowercase language tags to file extensions.
// Unknown or empty tags fall back to the generic "txt".
var extMap = map[string]string{
	"python": "py", "py": "py", "java": "java",
	"javascript": "js", "js": "js", "typescript": "ts", "ts": "ts",
	"sql": "sql", "bash": "sh", "shell": "sh", "sh": "sh",
	"html": "html", "css": "css", "xml": "xml",
	"yaml": "yml", "yml": "yml", "json": "json",
	"kotlin": "kt", "go": "go", "cpp": "cpp", "c": "c",
	"ruby": "rb", "rust": "rs", "php": "php",
	"swift": "swift", "scala": "scala", "r": "r",
	"markdown": "md", "md": "md", "dockerfile": "dockerfile",
}

// SavedFile describes one materialized code block.
type SavedFile struct {
	Name  string // final filename after dedup
	Lang  string // language tag as written, may be empty
	Line  int    // source line of the opening fence
	Lines int    // line count of the body
}

// Materializer writes code blocks into a target directory.
type Materializer struct {
	Dir string
}

// New creates a Materializer targeting dir.
func New(dir string) *Materializer {
	return &Materializer{Dir: dir}
}

// Save writes every block to its derived filename and returns the manifest
// in block order. An empty block list writes nothing.
func (m *Materializer) Save(blocks []core.CodeBlock) ([]SavedFile, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", m.Dir, err)
	}

	saved := make([]SavedFile, 0, len(blocks))
	for _, b := range blocks {
		path := m.unique(filepath.Join(m.Dir, Filename(b)))
		if err := os.WriteFile(path, []byte(b.Body), 0644); err != nil {
			return saved, fmt.Errorf("writing %s: %w", path, err)
		}
		saved = append(saved, SavedFile{
			Name:  filepath.Base(path),
			Lang:  b.Lang,
			Line:  b.Line,
			Lines: countLines(b.Body),
		})
	}
	return saved, nil
}

// Filename derives the output name for a block: the flattened hint when
// present, otherwise code_line<N>.<ext> from the language tag.
func Filename(b core.CodeBlock) string {
	if b.FilenameHint != "" {
		return flatten(b.FilenameHint)
	}
	return fmt.Sprintf("code_line%d.%s", b.Line, Extension(b.Lang))
}

// Extension returns the file extension for a language tag.
func Extension(lang string) string {
	if ext, ok := extMap[strings.ToLower(lang)]; ok {
		return ext
	}
	return "txt"
}

// flatten replaces path separators so a hint stays a flat filename.
func flatten(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, "\\", "_")
}

// unique appends _1, _2, … before the extension until path is unused.
func (m *Materializer) unique(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// countLines counts physical lines the way an editor would: a trailing
// newline does not start a new line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
