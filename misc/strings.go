// SPDX-License-Identifier: MIT

package misc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var dashSpaceRun = regexp.MustCompile(`[-\s\v]+`)

// Slugify turns value into an ASCII slug. Floats are formatted with a
// decimal point even when whole (100.0 → "100.0" → "1000"); other values
// go through fmt.Sprint.
//
// Steps: NFKD-normalize, drop non-ASCII runes, drop everything except
// letters, digits, '_', '-' and whitespace, trim, then collapse each run of
// '-' and whitespace into a single '_'.
//
// With validVariableName, a slug that does not start with a letter gets a
// "Number_" prefix so it can be used as an identifier.
func Slugify(value any, validVariableName bool) string {
	s := norm.NFKD.String(labelOf(value))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > unicode.MaxASCII {
			continue
		}
		if isWordRune(r) || r == '-' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	slug := dashSpaceRun.ReplaceAllString(strings.TrimSpace(b.String()), "_")

	if validVariableName && (slug == "" || !isASCIILetter(rune(slug[0]))) {
		slug = "Number_" + slug
	}

	return slug
}

// labelOf formats value for Slugify.
func labelOf(value any) string {
	switch f := value.(type) {
	case float64:
		return formatFloat(f, 64)
	case float32:
		return formatFloat(float64(f), 32)
	default:
		return fmt.Sprint(value)
	}
}

// formatFloat writes the shortest decimal form of f, switching to exponent
// notation outside 1e-4 <= |f| < 1e16, and always keeps a fractional part.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func isWordRune(r rune) bool {
	return r == '_' || isASCIILetter(r) || (r >= '0' && r <= '9')
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ParseQuantity splits a "name (units)" label at the bracket group closing
// the string. Nested brackets inside the units are kept:
//
//	"a (b/(c))"     → ("a", "b/(c)")
//	"a (c) (b/(c))" → ("a (c)", "b/(c)")
//
// A label that does not end with closing, or whose final group is
// unbalanced, is returned trimmed with empty units.
func ParseQuantity(quantity string, opening, closing rune) (name, units string) {
	rs := []rune(quantity)
	if len(rs) == 0 || rs[len(rs)-1] != closing {
		return strings.TrimSpace(quantity), ""
	}

	depth := 0
	for i := len(rs) - 1; i >= 0; i-- {
		switch rs[i] {
		case closing:
			depth++
		case opening:
			depth--
		}
		if depth == 0 {
			return strings.TrimSpace(string(rs[:i])), strings.TrimSpace(string(rs[i+1 : len(rs)-1]))
		}
	}

	return strings.TrimSpace(quantity), ""
}

// ParseQuantityDefault is ParseQuantity with round brackets.
func ParseQuantityDefault(quantity string) (name, units string) {
	return ParseQuantity(quantity, '(', ')')
}

// StrList2Enumeration joins items as an English enumeration:
// "", "a", "a and b", "a, b and c".
func StrList2Enumeration(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// ShortenName returns name unchanged when it has at most n runes, otherwise
// its first n-2 runes followed by "..".
func ShortenName(name string, n int) string {
	rs := []rune(name)
	if len(rs) <= n {
		return name
	}
	keep := n - 2
	if keep < 0 {
		keep = 0
	}

	return string(rs[:keep]) + ".."
}
