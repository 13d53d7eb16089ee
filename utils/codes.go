// utils/codes.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
	"strings"
)

// Unambiguous uppercase alphabet for shareable codes (no O/0, I/1)
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferralCode produces a shareable code like "CRK-7XQ2M9".
func GenerateReferralCode(prefix string, length int) string {
	var b strings.Builder
	if prefix != "" {
		b.WriteString(strings.ToUpper(prefix))
		b.WriteString("-")
	}
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			panic("failed to read random bytes")
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String()
}

// GenerateRandomString returns a URL-safe random string of roughly n characters.
func GenerateRandomString(n int) string {
	key := make([]byte, n)
	if _, err := rand.Read(key); err != nil {
		panic("failed to read random bytes")
	}
	return base64.RawURLEncoding.EncodeToString(key)[:n]
}
