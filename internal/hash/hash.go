// Package hash implements the content hash used to scope component styles.
package hash

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

const seed = 5381

// Hash returns a short base-36 identifier derived from content.
//
// The algorithm matches the Svelte compiler's own CSS-scoping hash
// bit-for-bit: carriage returns are stripped, then UTF-16 code units are
// mixed from the end of the string with h = (h<<5)-h ^ unit in 32-bit
// arithmetic. Scoped selectors generated here and by the compiler directly
// must agree at runtime, so the seed and mixing must not change.
//
// This is an identifier generator, not a security primitive.
func Hash(content string) string {
	content = strings.ReplaceAll(content, "\r", "")
	units := utf16.Encode([]rune(content))
	h := uint32(seed)
	for i := len(units) - 1; i >= 0; i-- {
		h = ((h << 5) - h) ^ uint32(units[i])
	}
	return strconv.FormatUint(uint64(h), 36)
}
