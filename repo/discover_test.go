package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	rels := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rels[i] = filepath.ToSlash(rel)
	}
	return rels
}

func TestFindMarkdownFiles_ReadmeFirstThenSorted(t *testing.T) {
	root := writeTree(t, map[string]string{
		"docs/zeta.md":    "z",
		"docs/alpha.md":   "a",
		"README.md":       "r",
		"notes.markdown":  "n",
		"ignore.txt":      "x",
		"scripts/run.sh":  "x",
		"docs/deep/x.MD":  "x",
	})

	filter, err := NewFilter(nil, nil)
	require.NoError(t, err)

	files, err := FindMarkdownFiles(root, filter)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"README.md",
		"docs/alpha.md",
		"docs/deep/x.MD",
		"docs/zeta.md",
		"notes.markdown",
	}, relPaths(t, root, files))
}

func TestFindMarkdownFiles_SkipsVendoredDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":               "r",
		"node_modules/pkg/doc.md": "x",
		"vendor/lib/doc.md":       "x",
		".git/COMMIT.md":          "x",
		"build/out.md":            "x",
	})

	filter, err := NewFilter(nil, nil)
	require.NoError(t, err)

	files, err := FindMarkdownFiles(root, filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, relPaths(t, root, files))
}

func TestFindMarkdownFiles_IncludeExcludeGlobs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":          "r",
		"docs/guide.md":      "g",
		"docs/internal.md":   "i",
		"examples/sample.md": "s",
	})

	filter, err := NewFilter([]string{"docs/*"}, []string{"docs/internal.md"})
	require.NoError(t, err)

	files, err := FindMarkdownFiles(root, filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guide.md"}, relPaths(t, root, files))
}

func TestFindMarkdownFiles_EmptyTree(t *testing.T) {
	filter, err := NewFilter(nil, nil)
	require.NoError(t, err)

	files, err := FindMarkdownFiles(t.TempDir(), filter)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestNewFilter_RejectsBadPattern(t *testing.T) {
	_, err := NewFilter([]string{"[unclosed"}, nil)
	assert.Error(t, err)
}
