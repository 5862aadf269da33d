package content

import (
	"sort"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/standardbeagle/secretscan/internal/debug"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// RegexExecutor runs only the patterns the prefilter judged active and
// turns each raw regex hit into a SecretMatch with a precise Coordinate.
type RegexExecutor struct {
	lib *types.PatternLibrary
}

// NewRegexExecutor builds an executor bound to the process pattern library.
func NewRegexExecutor(lib *types.PatternLibrary) *RegexExecutor {
	return &RegexExecutor{lib: lib}
}

// dedupKey identifies a raw hit by (pattern index, byte range) so the same
// span matched twice (e.g. by overlapping keyword hits) is only emitted
// once.
func dedupKey(patternIndex, start, end int) uint64 {
	var buf [24]byte
	putInt(buf[0:8], patternIndex)
	putInt(buf[8:16], start)
	putInt(buf[16:24], end)
	return xxhash.Sum64(buf[:])
}

func putInt(b []byte, v int) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
}

// Execute runs every active pattern (in priority order, as the library
// already sorts them) against content and returns the SecretMatch values
// ordered by starting byte offset; matches that start at the same offset
// keep priority order.
func (e *RegexExecutor) Execute(filePath *string, content []byte, activePatterns []int) []types.SecretMatch {
	active := make(map[int]struct{}, len(activePatterns))
	for _, idx := range activePatterns {
		active[idx] = struct{}{}
	}

	var matches []types.SecretMatch
	seen := make(map[uint64]struct{})

	for _, pattern := range e.lib.Patterns() {
		if _, ok := active[pattern.Index]; !ok {
			continue
		}
		locs := pattern.Regex.FindAllIndex(content, -1)
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			key := dedupKey(pattern.Index, start, end)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			coord := calculateCoordinate(content, start, end)
			p := pattern
			matches = append(matches, types.NewSecretMatch(filePath, coord, string(content[start:end]), &p))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Coordinate.ByteStart < matches[j].Coordinate.ByteStart
	})
	return matches
}

// calculateCoordinate computes line, column, and byte positions for a raw
// hit at [start, end): the line number is 1 + the count of newline bytes
// before start; columns count Unicode scalar values (runes), not bytes,
// from the start of that line.
func calculateCoordinate(content []byte, start, end int) types.Coordinate {
	line := 1
	lineStart := 0
	for i := 0; i < start && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	columnStart := runeCount(content[lineStart:start])
	columnEnd := columnStart + runeCount(content[start:end])

	if start > 0xFFFFFFFF || end > 0xFFFFFFFF {
		debug.LogScan("coordinate byte offset overflow, saturating: start=%d end=%d", start, end)
	}

	return types.NewCoordinate(line, columnStart, columnEnd, start, end)
}

// runeCount counts Unicode scalar values, falling back to one byte per
// invalid sequence so a malformed byte never stalls the column count.
func runeCount(b []byte) int {
	count := 0
	for len(b) > 0 {
		_, size := utf8.DecodeRune(b)
		b = b[size:]
		count++
	}
	return count
}
