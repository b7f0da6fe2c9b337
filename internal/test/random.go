package test

import "math/rand"

// RandomASCIIString returns a printable ASCII string with a length between
// minLen and maxLen inclusive.
func RandomASCIIString(minLen, maxLen int) string {
	if maxLen < minLen {
		minLen, maxLen = maxLen, minLen
	}
	length := minLen + rand.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = byte(33 + rand.Intn(94))
	}
	return string(buf)
}
