package content

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// Prefilter eliminates the vast majority of patterns for any given file in
// a single linear sweep: an Aho-Corasick automaton built once from the
// Pattern Library's keyword vocabulary maps each keyword hit back to the
// set of patterns that declare it.
//
// Patterns are added to the automaton in the order they appear in the
// library's keyword vocabulary, so the automaton's pattern index for a hit
// is also that keyword's index into keywordToPatternIndices.
type Prefilter struct {
	automaton              *ahocorasick.Automaton
	keywordToPatternIndices [][]int
	alwaysActive           []int
}

// NewPrefilter builds the automaton from lib's keyword vocabulary and the
// keyword->pattern-index fan-out it implies.
func NewPrefilter(lib *types.PatternLibrary) (*Prefilter, error) {
	keywords := lib.Keywords()
	builder := ahocorasick.NewBuilder()
	for _, kw := range keywords {
		builder.AddPattern([]byte(strings.ToLower(kw)))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}

	fanOut := make([][]int, len(keywords))
	keywordIndex := make(map[string]int, len(keywords))
	for i, kw := range keywords {
		keywordIndex[kw] = i
	}

	var alwaysActive []int
	for _, p := range lib.Patterns() {
		if len(p.Keywords) == 0 {
			alwaysActive = append(alwaysActive, p.Index)
			continue
		}
		for _, kw := range p.Keywords {
			idx, ok := keywordIndex[kw]
			if !ok {
				continue
			}
			fanOut[idx] = append(fanOut[idx], p.Index)
		}
	}

	return &Prefilter{
		automaton:               automaton,
		keywordToPatternIndices: fanOut,
		alwaysActive:            alwaysActive,
	}, nil
}

// ActivePatterns sweeps content once and returns the set of pattern indices
// that might match: the union of every keyword hit's associated patterns,
// plus any pattern that declares no keywords at all (those must always
// run). The returned slice has no duplicates but is otherwise unordered;
// the Regex Executor applies its own priority ordering.
func (p *Prefilter) ActivePatterns(content []byte) []int {
	seen := make(map[int]struct{}, len(p.alwaysActive)+8)
	for _, idx := range p.alwaysActive {
		seen[idx] = struct{}{}
	}

	lower := []byte(strings.ToLower(string(content)))
	for _, m := range p.automaton.FindAll(lower) {
		for _, patIdx := range p.keywordToPatternIndices[m.Pattern] {
			seen[patIdx] = struct{}{}
		}
	}

	result := make([]int, 0, len(seen))
	for idx := range seen {
		result = append(result, idx)
	}
	return result
}
