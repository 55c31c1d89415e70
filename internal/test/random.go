package test

import (
	"math/rand"
	"strings"
)

const (
	lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"
	alnum      = lowerAlnum + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RandomASCIIString returns alphanumeric text with a length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(alnum, minLen, maxLen)
}

// RandomEmail returns a lowercase address under example.com, unique enough for fixtures.
func RandomEmail() string {
	return randomFrom(lowerAlnum, 6, 12) + "@example.com"
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)
	n := minLen + rand.Intn(maxLen-minLen+1)

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}
