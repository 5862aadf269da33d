// Package staticdata holds the process-wide, lazily initialized singletons
// shared read-only across every scan: the compiled pattern library, the
// binary extension set, the default ignore-path set, and the system
// profile. Each is built once via sync.OnceValue, following the Go
// equivalent of the reference implementation's LazyLock statics.
package staticdata

import (
	"regexp"
	"sort"
	"sync"

	"github.com/standardbeagle/secretscan/internal/debug"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// BuildPatternLibrary compiles basePatterns plus any user-supplied patterns
// into a PatternLibrary. Index is assigned in table order before the
// descending-priority sort, so the index->pattern map and every prefilter
// keyword mapping built against it stay valid regardless of final order.
func BuildPatternLibrary(userPatterns []types.UserPattern) (*types.PatternLibrary, error) {
	total := len(basePatterns) + len(userPatterns)
	compiled := make([]types.CompiledPattern, 0, total)

	idx := 0
	for _, bp := range basePatterns {
		re, err := regexp.Compile(bp.Regex)
		if err != nil {
			return nil, &PatternCompileError{Name: bp.Name, Regex: bp.Regex, Cause: err}
		}
		compiled = append(compiled, types.CompiledPattern{
			Index:       idx,
			Name:        bp.Name,
			Description: bp.Description,
			Regex:       re,
			Keywords:    bp.Keywords,
			Priority:    bp.Priority,
		})
		idx++
	}
	for _, up := range userPatterns {
		re, err := regexp.Compile(up.Regex)
		if err != nil {
			return nil, &PatternCompileError{Name: up.Name, Regex: up.Regex, Cause: err}
		}
		compiled = append(compiled, types.CompiledPattern{
			Index:       idx,
			Name:        up.Name,
			Description: up.Description,
			Regex:       re,
			Keywords:    up.Keywords,
			Priority:    up.Priority,
		})
		idx++
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	keywordSet := make(map[string]struct{})
	for _, p := range compiled {
		for _, kw := range p.Keywords {
			keywordSet[kw] = struct{}{}
		}
	}
	keywords := make([]string, 0, len(keywordSet))
	for kw := range keywordSet {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	debug.LogScan("pattern library built: %d patterns, %d keywords", len(compiled), len(keywords))
	return types.NewPatternLibrary(compiled, keywords), nil
}

// PatternCompileError wraps a regex compilation failure with the pattern
// that caused it; only reachable if basePatterns or a user pattern file is
// malformed.
type PatternCompileError struct {
	Name  string
	Regex string
	Cause error
}

func (e *PatternCompileError) Error() string {
	return "pattern " + e.Name + ": invalid regex " + e.Regex + ": " + e.Cause.Error()
}

func (e *PatternCompileError) Unwrap() error { return e.Cause }

var defaultLibrary = sync.OnceValue(func() *types.PatternLibrary {
	lib, err := BuildPatternLibrary(nil)
	if err != nil {
		// basePatterns is a compile-time constant; a failure here means the
		// embedded table itself is broken and nothing downstream can recover.
		panic(err)
	}
	return lib
})

// PatternLibrary returns the process-wide default pattern library, built
// once on first access.
func PatternLibrary() *types.PatternLibrary {
	return defaultLibrary()
}
