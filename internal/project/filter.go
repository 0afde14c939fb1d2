package project

import (
	"path"
	"strings"

	"github.com/tacogips/create-repro/internal/debug"
)

// DefaultIgnorePatterns returns the template entries that are never copied:
// version-control metadata and installed dependencies of an on-disk template.
func DefaultIgnorePatterns() []string {
	return []string{".git", "node_modules"}
}

// shouldIgnore reports whether the template entry at p matches any pattern.
func shouldIgnore(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(p, pattern) {
			debug.Debug("[project] Ignoring %s (matched pattern: %s)", p, pattern)
			return true
		}
	}
	return false
}

// matchesPattern checks a slash-separated template path against a glob.
// Patterns without a slash are matched against the base name, so "*.log"
// matches "logs/debug.log".
func matchesPattern(p, pattern string) bool {
	if matched, err := path.Match(pattern, p); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	matched, err := path.Match(pattern, path.Base(p))
	return err == nil && matched
}
