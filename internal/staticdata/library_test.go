package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/secretscan/internal/scan/types"
)

func TestPatternLibraryBuildsAndSortsByPriority(t *testing.T) {
	lib := PatternLibrary()
	require.Greater(t, lib.Count(), 0)

	patterns := lib.Patterns()
	for i := 1; i < len(patterns); i++ {
		assert.GreaterOrEqual(t, patterns[i-1].Priority, patterns[i].Priority)
	}
}

func TestPatternLibraryIndexSurvivesSort(t *testing.T) {
	lib := PatternLibrary()
	for _, p := range lib.Patterns() {
		got := lib.Get(p.Index)
		require.NotNil(t, got)
		assert.Equal(t, p.Name, got.Name)
	}
}

func TestPatternLibraryKeywordsDeduplicated(t *testing.T) {
	lib := PatternLibrary()
	seen := make(map[string]struct{})
	for _, kw := range lib.Keywords() {
		_, dup := seen[kw]
		assert.False(t, dup, "duplicate keyword %q", kw)
		seen[kw] = struct{}{}
	}
}

func TestBuildPatternLibraryAppendsUserPatterns(t *testing.T) {
	lib, err := BuildPatternLibrary([]types.UserPattern{
		{Name: "Custom Token", Regex: `ctk_[a-z0-9]{10}`, Keywords: []string{"ctk_"}, Priority: 9},
	})
	require.NoError(t, err)

	found := false
	for _, p := range lib.Patterns() {
		if p.Name == "Custom Token" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildPatternLibraryRejectsInvalidRegex(t *testing.T) {
	_, err := BuildPatternLibrary([]types.UserPattern{
		{Name: "Broken", Regex: `(unterminated`, Priority: 1},
	})
	require.Error(t, err)
	var compileErr *PatternCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "Broken", compileErr.Name)
}
