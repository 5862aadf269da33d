package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownBinaryExtension(t *testing.T) {
	assert.True(t, IsKnownBinaryExtension("png"))
	assert.True(t, IsKnownBinaryExtension(".PNG"))
	assert.False(t, IsKnownBinaryExtension("go"))
	assert.False(t, IsKnownBinaryExtension("pem"), "pem must stay scannable: PEM keys are exactly what the patterns hunt for")
}

func TestWithUserExtensionsLeavesDefaultUntouched(t *testing.T) {
	before := len(BinaryExtensionSet())
	combined := WithUserExtensions([]string{"customext"})

	_, ok := combined["customext"]
	assert.True(t, ok)
	assert.Len(t, BinaryExtensionSet(), before)
}
