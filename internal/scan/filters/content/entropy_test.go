package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEntropyValidatorS3RejectsLowEntropyConstant is scenario S3: a
// constant whose "value" is just its own uppercased name must be rejected.
func TestEntropyValidatorS3RejectsLowEntropyConstant(t *testing.T) {
	v := NewEntropyValidator(1e-5)
	assert.False(t, v.IsLikelySecret([]byte("API_KEY_CONSTANT")))
}

// TestEntropyValidatorS4AcceptsRandomLookingValue is scenario S4: a
// high-entropy mixed-case alphanumeric string must pass.
func TestEntropyValidatorS4AcceptsRandomLookingValue(t *testing.T) {
	v := NewEntropyValidator(1e-5)
	assert.True(t, v.IsLikelySecret([]byte("AbC123XyZ789QwErTy456UiOpAs")))
}

func TestEntropyValidatorDigitlessStringsNeedStricterThreshold(t *testing.T) {
	withDigits := CalculateRandomnessProbability([]byte("Xk9Lp2Qz7RmN4vWs"))
	withoutDigits := CalculateRandomnessProbability([]byte("XkLpQzRmNvWsAbCd"))
	assert.True(t, withDigits >= 0 && withoutDigits >= 0)

	// With the threshold at half of each string's own probability, both clear
	// the base threshold, but only the string with digits also clears the
	// tenfold threshold applied to digit-free strings.
	assert.True(t, NewEntropyValidator(withDigits/2).IsLikelySecret([]byte("Xk9Lp2Qz7RmN4vWs")))
	assert.False(t, NewEntropyValidator(withoutDigits/2).IsLikelySecret([]byte("XkLpQzRmNvWsAbCd")))
}

func TestCalculateRandomnessProbabilityInfersHexAlphabet(t *testing.T) {
	// A run of 20 identical hex digits is maximally non-random and must
	// score far below any low-digit-count baseline.
	repeated := CalculateRandomnessProbability([]byte("aaaaaaaaaaaaaaaaaaaa"))
	varied := CalculateRandomnessProbability([]byte("0123456789abcdef0123"))
	assert.Less(t, repeated, varied)
}

func TestEntropyValidatorPassThroughWhenDisabled(t *testing.T) {
	// Invariant 5: the File Pipeline bypasses the validator entirely when
	// EnableEntropyAnalysis is false; the validator type itself has no
	// disabled mode, so this documents the File Pipeline's responsibility
	// instead of the validator's (see pipeline/file_test.go).
	v := NewEntropyValidator(0)
	assert.True(t, v.IsLikelySecret([]byte("anything")), "a zero threshold never rejects")
}
