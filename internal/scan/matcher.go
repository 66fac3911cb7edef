// Package scan implements junk discovery: expanding patterns into matched
// paths, computing recursive sizes, and building the sorted catalog.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"

	wildcard "github.com/IGLOU-EU/go-wildcard"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/logger"
)

// excluded directories are never descended into. Their contents are junk by
// definition (node_modules) or must never be touched (.git), and skipping
// them keeps large trees fast. The directories themselves remain matchable.
var excluded = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Matcher walks a tree and collects every path whose basename satisfies one
// of the junk patterns.
type Matcher struct {
	log     *logger.Logger
	visited atomic.Int64
}

// NewMatcher creates a Matcher reporting through log.
func NewMatcher(log *logger.Logger) *Matcher {
	return &Matcher{log: log}
}

// Visited returns the number of directory entries considered so far. Read
// concurrently by the scan spinner.
func (m *Matcher) Visited() int64 {
	return m.visited.Load()
}

// Match returns every path under root whose basename matches a pattern.
// A matched directory is recorded and not descended into, so a match nested
// inside another match never appears; this keeps catalog sizes disjoint and
// removal single-shot. Unreadable subtrees are warned about and skipped.
// Only a failure to read root itself is returned as an error.
func (m *Matcher) Match(root string, patterns []string) ([]string, error) {
	root = filepath.Clean(root)

	var matches []string
	seen := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			m.log.Warnf("cannot read %s: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}
		m.visited.Add(1)

		name := d.Name()
		if matchAny(name, patterns) {
			if !seen[path] {
				seen[path] = true
				matches = append(matches, path)
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() && excluded[name] {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// matchAny reports whether name satisfies at least one pattern. Patterns
// containing a wildcard character use glob semantics; anything else is a
// literal name comparison. Dotfiles are ordinary names here.
func matchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.ContainsAny(p, "*?") {
			if wildcard.Match(p, name) {
				return true
			}
		} else if p == name {
			return true
		}
	}
	return false
}
