package misc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gguzzina/hyperspy/misc"
)

// TestSlugify follows the reference table, with and without the identifier rule.
func TestSlugify(t *testing.T) {
	cases := []struct {
		in    any
		valid bool
		want  string
	}{
		{"a", false, "a"},
		{"1a", false, "1a"},
		{"1", false, "1"},
		{"a a", false, "a_a"},
		{42, false, "42"},
		{3.14159, false, "314159"},
		{"├── Node1", false, "Node1"},
		{"a", true, "a"},
		{"1a", true, "Number_1a"},
		{"1", true, "Number_1"},
		{"Énergie - perte", false, "Energie_perte"},
		{"", true, "Number_"},
		{100.0, false, "1000"},
		{float32(2.5), false, "25"},
		{1e-5, false, "1e_05"},
		{"a\vb", false, "a_b"},
		{"a\t\v\f b", false, "a_b"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, misc.Slugify(tc.in, tc.valid), "Slugify(%v, %v)", tc.in, tc.valid)
	}
}

// TestParseQuantity covers nested brackets and custom delimiters.
func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in, name, units string
		open, close     rune
	}{
		{"a (b)", "a", "b", '(', ')'},
		{"a (b/(c))", "a", "b/(c)", '(', ')'},
		{"a (c) (b/(c))", "a (c)", "b/(c)", '(', ')'},
		{"a [b]", "a [b]", "", '(', ')'},
		{"a [b]", "a", "b", '[', ']'},
		{"a b)", "a b)", "", '(', ')'},
		{"", "", "", '(', ')'},
	}
	for _, tc := range cases {
		name, units := misc.ParseQuantity(tc.in, tc.open, tc.close)
		assert.Equal(t, tc.name, name, "name of %q", tc.in)
		assert.Equal(t, tc.units, units, "units of %q", tc.in)
	}

	name, units := misc.ParseQuantityDefault("Energy loss (eV)")
	assert.Equal(t, "Energy loss", name)
	assert.Equal(t, "eV", units)
}

// TestStrList2Enumeration checks the separators.
func TestStrList2Enumeration(t *testing.T) {
	assert.Equal(t, "", misc.StrList2Enumeration(nil))
	assert.Equal(t, "a", misc.StrList2Enumeration([]string{"a"}))
	assert.Equal(t, "a and b", misc.StrList2Enumeration([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", misc.StrList2Enumeration([]string{"a", "b", "c"}))
}

// TestShortenName truncates with "..".
func TestShortenName(t *testing.T) {
	assert.Equal(t, "And now for so..", misc.ShortenName("And now for soemthing completely different.", 16))
	assert.Equal(t, "short", misc.ShortenName("short", 16))
	assert.Equal(t, "..", misc.ShortenName("abc", 1))
}
