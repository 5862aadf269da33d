package types

import "regexp"

// CompiledPattern is one detection rule, immutable after the pattern library
// finishes construction.
type CompiledPattern struct {
	// Index is stable across sorting; the prefilter maps keyword hits back
	// to patterns via this value, not via position in any slice.
	Index       int
	Name        string
	Description string
	Regex       *regexp.Regexp
	Keywords    []string
	Priority    uint8
}

// BasePattern is the compile-time data shape for the embedded pattern table,
// before regex compilation.
type BasePattern struct {
	Name        string
	Regex       string
	Description string
	Keywords    []string
	Priority    uint8
}

// UserPattern is the shape of a pattern entry supplied via the optional user
// pattern file (TOML). Identical fields to BasePattern but kept distinct so
// the config package doesn't need to import staticdata.
type UserPattern struct {
	Name        string   `toml:"name"`
	Regex       string   `toml:"regex"`
	Description string   `toml:"description"`
	Keywords    []string `toml:"keywords"`
	Priority    uint8    `toml:"priority"`
}

// PatternLibrary is the process-wide, read-only set of detection rules:
// patterns ordered by descending priority, the deduplicated keyword
// vocabulary used to seed the Aho-Corasick automaton, and an index->pattern
// map that stays valid across the priority sort.
type PatternLibrary struct {
	patterns []CompiledPattern
	keywords []string
	byIndex  map[int]*CompiledPattern
}

// NewPatternLibrary wraps already-sorted patterns and their deduplicated
// keyword vocabulary. Callers (internal/staticdata) own the sort/dedup step.
func NewPatternLibrary(patterns []CompiledPattern, keywords []string) *PatternLibrary {
	byIndex := make(map[int]*CompiledPattern, len(patterns))
	for i := range patterns {
		byIndex[patterns[i].Index] = &patterns[i]
	}
	return &PatternLibrary{patterns: patterns, keywords: keywords, byIndex: byIndex}
}

// Patterns returns the full pattern list, ordered by descending priority.
func (l *PatternLibrary) Patterns() []CompiledPattern { return l.patterns }

// Keywords returns the deduplicated literal keyword vocabulary.
func (l *PatternLibrary) Keywords() []string { return l.keywords }

// Get returns the pattern with the given stable index, or nil if absent.
func (l *PatternLibrary) Get(index int) *CompiledPattern { return l.byIndex[index] }

// Count returns the number of patterns in the library.
func (l *PatternLibrary) Count() int { return len(l.patterns) }
