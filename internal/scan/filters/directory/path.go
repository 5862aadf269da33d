package directory

import (
	"github.com/standardbeagle/secretscan/internal/staticdata"
)

// PathFilter rejects paths matching the Ignore-Path Set.
type PathFilter struct {
	ignoreSet *staticdata.IgnorePathSet
}

// NewPathFilter builds a filter over the default ignore set extended with
// any user-supplied glob patterns.
func NewPathFilter(userPatterns []string) *PathFilter {
	var set *staticdata.IgnorePathSet
	if len(userPatterns) == 0 {
		set = staticdata.DefaultIgnorePathSet()
	} else {
		set = staticdata.WithUserPatterns(userPatterns)
	}
	return &PathFilter{ignoreSet: set}
}

// Apply returns Skip("ignore-path") when relPath matches any ignore glob.
func (f *PathFilter) Apply(relPath string) Decision {
	if f.ignoreSet.Match(relPath) {
		return Skip("ignore-path")
	}
	return KeepDecision
}
