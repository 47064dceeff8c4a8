package epub

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Decode turns raw entry bytes into text. Byte sequences that are not
// valid UTF-8 become U+FFFD; Decode never fails.
func Decode(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// Preview returns the first n characters of s and whether anything was cut off.
func Preview(s string, n int) (string, bool) {
	count := 0
	for i := range s {
		if count == n {
			return s[:i], true
		}
		count++
	}
	return s, false
}
