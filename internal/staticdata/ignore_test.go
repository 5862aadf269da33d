package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIgnorePathSetMatchesCommonPaths(t *testing.T) {
	set := DefaultIgnorePathSet()
	assert.True(t, set.Match("node_modules/lodash/index.js"))
	assert.True(t, set.Match(".git/objects/ab/cdef"))
	assert.False(t, set.Match("src/main.go"))
}

func TestWithUserPatternsExtendsWithoutMutatingDefault(t *testing.T) {
	before := DefaultIgnorePathSet().Len()
	combined := WithUserPatterns([]string{"secrets/**"})

	assert.True(t, combined.Match("secrets/prod.env"))
	assert.Equal(t, before, DefaultIgnorePathSet().Len())
	assert.Equal(t, before+1, combined.Len())
}
