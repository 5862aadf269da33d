package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/secretscan/internal/scan/types"
)

func lineMatch(line int, text string) types.SecretMatch {
	return types.SecretMatch{Coordinate: types.NewCoordinate(line, 0, len(text), 0, len(text)), MatchedText: text}
}

// TestCommentSuppressorS2 is scenario S2: a same-line guardy:ignore
// directive drops the match regardless of comment syntax.
func TestCommentSuppressorS2(t *testing.T) {
	line := `password = "sk-proj-abcdef0123456789abcdef0123456789abcdef0123456789" // guardy:ignore`
	lines := []string{line}
	matches := []types.SecretMatch{lineMatch(1, "sk-proj-abcdef...")}

	s := NewCommentSuppressor()
	kept := s.Apply(matches, lines)
	assert.Empty(t, kept)
	assert.EqualValues(t, 1, s.SuppressedByDirective["guardy:ignore"])
}

// TestCommentSuppressorRemovingDirectiveRestoresMatch is invariant 9: removing
// the directive from the line yields exactly one more match.
func TestCommentSuppressorRemovingDirectiveRestoresMatch(t *testing.T) {
	withDirective := []string{"secret = 1234567890 // guardy:ignore"}
	withoutDirective := []string{"secret = 1234567890"}
	match := []types.SecretMatch{lineMatch(1, "1234567890")}

	kept := NewCommentSuppressor().Apply(match, withDirective)
	assert.Empty(t, kept)

	kept = NewCommentSuppressor().Apply(match, withoutDirective)
	assert.Len(t, kept, 1)
}

func TestCommentSuppressorIgnoreNext(t *testing.T) {
	lines := []string{"// guardy:ignore-next", "secret = 1234567890"}
	matches := []types.SecretMatch{lineMatch(2, "1234567890")}

	kept := NewCommentSuppressor().Apply(matches, lines)
	assert.Empty(t, kept)
}

func TestCommentSuppressorIgnoreNextOnlyAppliesToImmediatelyFollowingLine(t *testing.T) {
	lines := []string{"// guardy:ignore-next", "unrelated line", "secret = 1234567890"}
	matches := []types.SecretMatch{lineMatch(3, "1234567890")}

	kept := NewCommentSuppressor().Apply(matches, lines)
	assert.Len(t, kept, 1)
}

func TestCommentSuppressorAllowDirective(t *testing.T) {
	lines := []string{"token = abcdef # guardy:allow"}
	matches := []types.SecretMatch{lineMatch(1, "abcdef")}

	kept := NewCommentSuppressor().Apply(matches, lines)
	assert.Empty(t, kept)
}

func TestCommentSuppressorNearMissIsWarningOnly(t *testing.T) {
	lines := []string{"secret = abcdef // gaurdy:ignore"}
	matches := []types.SecretMatch{lineMatch(1, "abcdef")}

	s := NewCommentSuppressor()
	kept := s.Apply(matches, lines)
	assert.Len(t, kept, 1, "a misspelled directive must never suppress")
	assert.True(t, len(s.NearMissWarnings) > 0)
	assert.True(t, strings.Contains(s.NearMissWarnings[0], "gaurdy:ignore"))
}
