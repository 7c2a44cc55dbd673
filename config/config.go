// Package config loads the mdpipe session configuration.
// The session (output root, repository cache root, branch fallback order,
// discovery globs) is an explicit value threaded through commands, never
// process-wide mutable state. Values come from defaults, an optional
// .mdpipe.yml in the working directory, and MDPIPE_* environment variables
// (a .env file is honored when present).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFile = ".mdpipe.yml"

// Session holds the configuration for one mdpipe invocation.
type Session struct {
	OutputRoot string   `yaml:"output_root"`
	CacheRoot  string   `yaml:"cache_root"`
	Branches   []string `yaml:"branches"`
	Include    []string `yaml:"include"`
	Exclude    []string `yaml:"exclude"`
}

// Default returns the built-in session configuration.
func Default() Session {
	return Session{
		OutputRoot: "mdpipe_output",
		CacheRoot:  filepath.Join("mdpipe_output", "repos"),
		Branches:   []string{"main", "master", "HEAD"},
	}
}

// Load builds the session for the given working directory. A missing
// config file is not an error; a malformed one is.
func Load(dir string) (Session, error) {
	// Pick up MDPIPE_* variables from a .env file when present.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	s := Default()

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Session{}, fmt.Errorf("parsing %s: %w", configFile, err)
		}
	case !os.IsNotExist(err):
		return Session{}, fmt.Errorf("reading %s: %w", configFile, err)
	}

	if v := os.Getenv("MDPIPE_OUTPUT_DIR"); v != "" {
		s.OutputRoot = v
	}
	if v := os.Getenv("MDPIPE_CACHE_DIR"); v != "" {
		s.CacheRoot = v
	}

	if len(s.Branches) == 0 {
		s.Branches = Default().Branches
	}
	return s, nil
}
