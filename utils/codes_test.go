package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	code := GenerateReferralCode("CRK", 6)
	assert.True(t, strings.HasPrefix(code, "CRK-"))
	assert.Len(t, code, 10)

	// no ambiguous characters
	for _, r := range strings.TrimPrefix(code, "CRK-") {
		assert.Contains(t, codeAlphabet, string(r))
	}

	// without prefix
	bare := GenerateReferralCode("", 8)
	assert.Len(t, bare, 8)
	assert.NotContains(t, bare, "-")
}

func TestGenerateReferralCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateReferralCode("CRK", 6)
		assert.False(t, seen[code], "collision on %s", code)
		seen[code] = true
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(16)
	assert.Len(t, s, 16)
	assert.NotEqual(t, s, GenerateRandomString(16))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+919812345678"))
	assert.True(t, ValidatePhone("98123 45678"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("+0123"))
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(6))
}
