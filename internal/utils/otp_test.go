package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, code, OtpLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "OTP must contain only ASCII digits, got %q", code)
		}
	}
}

func TestGenerateOTP_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		assert.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a million-value space should essentially never collapse to one value
	assert.Greater(t, len(seen), 1)
}
