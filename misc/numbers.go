// SPDX-License-Identifier: MIT

package misc

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Str2Num parses whitespace-separated numbers, one row per non-blank line.
// All rows must have the same number of columns.
// Returns ErrNotNumber or ErrRagged with the offending line number.
func Str2Num(s string) ([][]float64, error) {
	var rows [][]float64
	for ln, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("misc: line %d field %d %q: %w", ln+1, i+1, f, ErrNotNumber)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("misc: line %d has %d columns, want %d: %w", ln+1, len(row), len(rows[0]), ErrRagged)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// SwapElem swaps s[i] and s[j] in place. Panics on out-of-range indices.
func SwapElem[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// ClosestPowerOfTwo returns the smallest power of two ≥ n (1 for n ≤ 1).
// Complexity: O(1).
func ClosestPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
