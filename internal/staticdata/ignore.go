package staticdata

import (
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultIgnorePatterns is the compile-time default skip-path glob table,
// checked against the path with doublestar's gitignore-style ** semantics.
var defaultIgnorePatterns = []string{
	// Test files and directories
	"tests/*",
	"testdata/*",
	"*_test.rs",
	"test_*.rs",
	"test/**/*",
	"**/test/**/*",
	"**/tests/**/*",
	"**/*_test.*",
	"**/test_*.*",

	// Git objects and internal files (binary data)
	".git/objects/**",
	".git_disabled/**",
	".git/refs/**",
	".git/logs/**",
	".git/index",
	"**/.git/objects/**",
	"**/.git_disabled/**",

	// Common build and cache directories
	"node_modules/**/*",
	"target/**/*",
	"dist/**/*",
	"build/**/*",
	".cache/**/*",
	"**/.next/**/*",
	"**/node_modules/**/*",
	"**/target/**/*",

	// IDE and editor files
	".vscode/**/*",
	".idea/**/*",
	"*.swp",
	"*.swo",
	"*~",

	// Package manager locks and caches
	"package-lock.json",
	"yarn.lock",
	"Cargo.lock",
	".yarn/**/*",
	".pnpm-store/**/*",
}

// IgnorePathSet is the process-wide compiled default ignore-path set.
// doublestar.Match is pure and stateless, so there is no "GlobSet" object
// to build ahead of time; the set is just the pattern slice itself.
type IgnorePathSet struct {
	patterns []string
}

// Match reports whether path matches any pattern in the set.
func (s *IgnorePathSet) Match(path string) bool {
	for _, pattern := range s.patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns.
func (s *IgnorePathSet) Len() int { return len(s.patterns) }

var defaultIgnoreSet = sync.OnceValue(func() *IgnorePathSet {
	return &IgnorePathSet{patterns: defaultIgnorePatterns}
})

// DefaultIgnorePathSet returns the process-wide default ignore-path set.
func DefaultIgnorePathSet() *IgnorePathSet {
	return defaultIgnoreSet()
}

// WithUserPatterns builds a fresh set combining the defaults with
// caller-supplied additions, leaving the process-wide default untouched.
func WithUserPatterns(extra []string) *IgnorePathSet {
	base := DefaultIgnorePathSet()
	combined := make([]string, 0, len(base.patterns)+len(extra))
	combined = append(combined, base.patterns...)
	combined = append(combined, extra...)
	return &IgnorePathSet{patterns: combined}
}
