package content

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/standardbeagle/secretscan/internal/debug"
	"github.com/standardbeagle/secretscan/internal/scan/types"
)

// Recognized suppression directives. Matching is case-sensitive and
// language-agnostic: the directive text is looked for anywhere on the
// physical line, regardless of the surrounding comment syntax.
const (
	directiveIgnore     = "guardy:ignore"
	directiveIgnoreLine = "guardy:ignore-line"
	directiveAllow      = "guardy:allow"
	directiveIgnoreNext = "guardy:ignore-next"
)

// sameLineDirectives is ordered longest-first so a line carrying
// guardy:ignore-line is attributed to that directive's counter rather than
// the guardy:ignore prefix it also contains.
var sameLineDirectives = []string{directiveIgnoreLine, directiveIgnore, directiveAllow}

// nearMissMaxDistance is the Levenshtein distance under which an unmatched
// word is flagged as a likely directive typo, never as suppression.
const nearMissMaxDistance = 2

// CommentSuppressor drops matches whose line carries a recognized
// whitelist directive, or whose line immediately follows a line carrying
// guardy:ignore-next.
type CommentSuppressor struct {
	SuppressedByDirective map[string]int64
	NearMissWarnings      []string
}

// NewCommentSuppressor returns a suppressor with zeroed counters.
func NewCommentSuppressor() *CommentSuppressor {
	return &CommentSuppressor{SuppressedByDirective: make(map[string]int64)}
}

// Apply filters matches against the full file content, split into lines.
// lineAt returns the text at a 0-indexed position in lines (out-of-range
// returns "").
func (c *CommentSuppressor) Apply(matches []types.SecretMatch, lines []string) []types.SecretMatch {
	if len(matches) == 0 {
		return matches
	}

	kept := make([]types.SecretMatch, 0, len(matches))
	for _, m := range matches {
		lineIdx := int(m.Coordinate.Line) - 1
		lineText := lineAt(lines, lineIdx)
		prevText := lineAt(lines, lineIdx-1)

		if directive, ok := findDirective(lineText, sameLineDirectives); ok {
			c.SuppressedByDirective[directive]++
			c.scanNearMisses(lineText)
			continue
		}
		if strings.Contains(prevText, directiveIgnoreNext) {
			c.SuppressedByDirective[directiveIgnoreNext]++
			continue
		}

		c.scanNearMisses(lineText)
		kept = append(kept, m)
	}
	return kept
}

func lineAt(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}

func findDirective(line string, directives []string) (string, bool) {
	for _, d := range directives {
		if strings.Contains(line, d) {
			return d, true
		}
	}
	return "", false
}

// scanNearMisses flags words on the line that are a small edit distance
// from a recognized directive but don't match it exactly — these never
// suppress anything, only produce a logged warning for the developer.
func (c *CommentSuppressor) scanNearMisses(line string) {
	if !strings.Contains(line, ":") {
		return
	}
	for _, word := range strings.Fields(line) {
		word = strings.Trim(word, "*/#-: \t")
		if word == "" || !strings.Contains(word, ":") {
			continue
		}
		if strings.HasPrefix(word, "guardy:ignore") || strings.HasPrefix(word, "guardy:allow") {
			continue
		}
		for _, directive := range allDirectives {
			// StringsSimilarity with Levenshtein returns a normalized
			// similarity in [0,1] (1 = identical); recover the approximate
			// edit count against the longer of the two strings from its
			// complement.
			similarity, err := edlib.StringsSimilarity(word, directive, edlib.Levenshtein)
			if err != nil {
				continue
			}
			maxLen := len(word)
			if len(directive) > maxLen {
				maxLen = len(directive)
			}
			approxEdits := int(float32(maxLen)*(1-similarity) + 0.5)
			if approxEdits > 0 && approxEdits <= nearMissMaxDistance {
				msg := "possible misspelled ignore directive: " + word + " (did you mean " + directive + "?)"
				c.NearMissWarnings = append(c.NearMissWarnings, msg)
				debug.LogScan("%s", msg)
			}
		}
	}
}

var allDirectives = []string{directiveIgnore, directiveIgnoreLine, directiveAllow, directiveIgnoreNext}
