package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "mdpipe_output", s.OutputRoot)
	assert.Equal(t, filepath.Join("mdpipe_output", "repos"), s.CacheRoot)
	assert.Equal(t, []string{"main", "master", "HEAD"}, s.Branches)
	assert.Empty(t, s.Include)
	assert.Empty(t, s.Exclude)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	yml := "output_root: ./out\ncache_root: ./cache\nbranches: [trunk]\ninclude: ['docs/*']\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte(yml), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "./out", s.OutputRoot)
	assert.Equal(t, "./cache", s.CacheRoot)
	assert.Equal(t, []string{"trunk"}, s.Branches)
	assert.Equal(t, []string{"docs/*"}, s.Include)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("output_root: ./out\n"), 0644))

	t.Setenv("MDPIPE_OUTPUT_DIR", "/tmp/elsewhere")
	t.Setenv("MDPIPE_CACHE_DIR", "/tmp/cache")

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", s.OutputRoot)
	assert.Equal(t, "/tmp/cache", s.CacheRoot)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("output_root: [unclosed\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EmptyBranchesFallBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("branches: []\n"), 0644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "master", "HEAD"}, s.Branches)
}
