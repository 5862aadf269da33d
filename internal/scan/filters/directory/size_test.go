package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSizeFilterBoundary is invariant 10: a file exactly at the byte cap
// passes; one byte larger fails.
func TestSizeFilterBoundary(t *testing.T) {
	const capBytes = 50 * 1024 * 1024
	f := NewSizeFilter(capBytes)

	assert.True(t, f.Apply(capBytes).Keep)
	assert.False(t, f.Apply(capBytes+1).Keep)
}

func TestSizeFilterShouldStream(t *testing.T) {
	f := NewSizeFilter(1000)
	assert.True(t, f.ShouldStream(900))
	assert.False(t, f.ShouldStream(10))
}
