// Package config resolves the junk pattern list for a run. The list comes
// from an optional .gitcleaner.json in the working directory; anything short
// of a well-formed file falls back to the built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the optional per-project config file.
const FileName = ".gitcleaner.json"

// DefaultPatterns are the junk targets used when no config file overrides
// them. Literal names match at any depth; entries containing a wildcard are
// matched with shell-glob semantics.
var DefaultPatterns = []string{
	"node_modules",
	"dist",
	"build",
	".DS_Store",
	"__pycache__",
	"*.log",
	"coverage",
	".nyc_output",
	"*.tmp",
	"*.temp",
	".cache",
	"tmp",
}

// Source identifies where the resolved pattern list came from.
type Source int

const (
	// SourceDefaults means the built-in list is in effect.
	SourceDefaults Source = iota
	// SourceFile means .gitcleaner.json supplied the list.
	SourceFile
)

func (s Source) String() string {
	if s == SourceFile {
		return FileName
	}
	return "defaults"
}

// file is the on-disk shape. Unknown fields are ignored.
type file struct {
	Patterns []string `json:"patterns"`
}

// Resolve returns the effective pattern list for dir. A config file that is
// absent, unreadable, malformed, or missing a patterns array degrades to
// DefaultPatterns; the returned error describes the degradation and is nil
// when the file was absent or applied cleanly. Config problems never abort
// a run.
func Resolve(dir string) ([]string, Source, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults(), SourceDefaults, nil
		}
		return defaults(), SourceDefaults, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var cfg file
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults(), SourceDefaults, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if cfg.Patterns == nil {
		return defaults(), SourceDefaults, fmt.Errorf("%s has no \"patterns\" array", FileName)
	}

	// Verbatim, no merging with defaults and no pattern-syntax validation.
	return append([]string(nil), cfg.Patterns...), SourceFile, nil
}

func defaults() []string {
	return append([]string(nil), DefaultPatterns...)
}
