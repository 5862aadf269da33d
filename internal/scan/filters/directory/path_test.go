package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathFilterRejectsDefaultIgnorePaths(t *testing.T) {
	f := NewPathFilter(nil)
	assert.False(t, f.Apply("node_modules/lodash/index.js").Keep)
	assert.True(t, f.Apply("src/main.go").Keep)
}

func TestPathFilterHonorsUserPatterns(t *testing.T) {
	f := NewPathFilter([]string{"vendor/**"})
	assert.False(t, f.Apply("vendor/foo/bar.go").Keep)
}
