package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/mdpipe/core"
)

func TestCSVExporter_OneFilePerGrid(t *testing.T) {
	dir := t.TempDir()
	grids := []core.TableGrid{
		{Rows: [][]string{{"A", "B"}, {"1", "2"}}},
		{Rows: [][]string{{"X"}, {"9"}}},
	}

	exporter := &CSVExporter{Dir: dir}
	paths, err := exporter.Export("readme", grids)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "readme_table1.csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "readme_table2.csv"), paths[1])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "A,B\n1,2\n", string(data))
}

func TestCSVExporter_QuotesCellsWithCommas(t *testing.T) {
	dir := t.TempDir()
	grids := []core.TableGrid{{Rows: [][]string{{"name", "note"}, {"bolt", "m5, zinc"}}}}

	paths, err := (&CSVExporter{Dir: dir}).Export("parts", grids)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "name,note\nbolt,\"m5, zinc\"\n", string(data))
}

func TestCSVExporter_EmptyInputWritesNothing(t *testing.T) {
	dir := t.TempDir()

	paths, err := (&CSVExporter{Dir: dir}).Export("doc", nil)
	require.NoError(t, err)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
