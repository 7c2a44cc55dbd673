package repo

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// skipDirs are directories never descended into during discovery.
// They hold dependencies, build products, or VCS bookkeeping, not docs.
var skipDirs = map[string]bool{
	".git": true, ".github": true, "node_modules": true, "vendor": true,
	".tox": true, "__pycache__": true, "venv": true, ".venv": true,
	"dist": true, "build": true,
}

// Filter restricts discovery with optional include and exclude globs
// matched against slash-separated paths relative to the scan root.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles the glob patterns. Nil or empty slices mean
// "match everything" / "exclude nothing".
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range include {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", p, err)
		}
		f.include = append(f.include, g)
	}
	for _, p := range exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		f.exclude = append(f.exclude, g)
	}
	return f, nil
}

// Match reports whether a relative path passes the filter.
func (f *Filter) Match(rel string) bool {
	if f == nil {
		return true
	}
	for _, g := range f.exclude {
		if g.Match(rel) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// FindMarkdownFiles recursively finds .md and .markdown files under root,
// skipping the usual non-source directories and applying the filter.
// Results are absolute-ish (root-joined) paths sorted with README first,
// then case-insensitively by relative path.
func FindMarkdownFiles(root string, filter *Filter) ([]string, error) {
	type entry struct {
		path string
		rel  string
	}
	var found []entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".md" && ext != ".markdown" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !filter.Match(rel) {
			return nil
		}

		found = append(found, entry{path: path, rel: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Slice(found, func(i, j int) bool {
		ri, rj := sortKey(found[i].rel), sortKey(found[j].rel)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(found[i].rel) < strings.ToLower(found[j].rel)
	})

	paths := make([]string, len(found))
	for i, e := range found {
		paths[i] = e.path
	}
	return paths, nil
}

// sortKey puts README files ahead of everything else.
func sortKey(rel string) int {
	base := filepath.Base(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.EqualFold(stem, "readme") {
		return 0
	}
	return 1
}
