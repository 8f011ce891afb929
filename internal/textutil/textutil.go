// Package textutil provides the text primitives behind CSV parsing and
// fixed-width table rendering: ASCII-case-insensitive prefix matching,
// overflow-safe integer parsing, and UTF-8 code-point aware padding and
// truncation.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Parse failure modes for ParseInt32.
var (
	ErrEmptyInput = errors.New("empty input")
	ErrBadDigit   = errors.New("invalid character")
	ErrOverflow   = errors.New("value out of int32 range")
)

// Ellipsis marks a truncated cell. One code point, three UTF-8 bytes.
const Ellipsis = "…"

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// HasPrefixFold reports whether text begins with prefix, comparing bytes
// pairwise with ASCII-only case folding. Non-ASCII bytes are compared raw, so
// multi-byte UTF-8 sequences are never mutated. An empty prefix matches
// everything.
func HasPrefixFold(text, prefix string) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerASCII(text[i]) != lowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

// ParseInt32 parses an optional leading '-' followed by one or more ASCII
// digits. The magnitude is checked against the int32 range before each
// multiply, so overflow is prevented rather than detected after the fact.
// Failures are distinguished by ErrEmptyInput, ErrBadDigit and ErrOverflow.
func ParseInt32(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(s) {
		return 0, ErrBadDigit
	}
	const maxInt32 = 1<<31 - 1
	val := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrBadDigit
		}
		d := int(c - '0')
		if val > (maxInt32-d)/10 {
			return 0, ErrOverflow
		}
		val = val*10 + d
	}
	if neg {
		val = -val
	}
	return val, nil
}

// Width returns the number of Unicode code points in s. Each invalid leading
// byte counts as a one-byte unit, guaranteeing forward progress on malformed
// input.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Fit renders s at exactly width code points: shorter strings are
// right-padded with spaces, longer ones are truncated to width-1 code points
// followed by an ellipsis. Multi-byte sequences are copied whole, never
// split.
func Fit(s string, width int) string {
	vis := Width(s)
	if vis == width {
		return s
	}
	if vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	keep := width - 1
	if keep < 0 {
		keep = 0
	}
	var b strings.Builder
	b.Grow(len(s) + len(Ellipsis))
	n := 0
	for _, r := range s {
		if n >= keep {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// ClipBytes truncates s to at most max bytes, backing off so the cut never
// lands inside a multi-byte sequence.
func ClipBytes(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
