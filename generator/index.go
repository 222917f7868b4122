package generator

import (
	"math"
	"regexp"
	"strconv"
)

// integerLiteral matches the text of a bare integer literal. Anything else,
// including constant arithmetic such as "1 + 1", is a dynamic index.
var integerLiteral = regexp.MustCompile(`^-?\d+$`)

// normalizeIndex converts a 1-based index expression to the 0-based index
// Dart expects. Literal indices are decremented at generation time; dynamic
// ones get a run-time subtraction. The code must already be grouped at
// Additive precedence.
func normalizeIndex(code string) string {
	if integerLiteral.MatchString(code) {
		if n, err := strconv.ParseInt(code, 10, 64); err == nil && n != math.MinInt64 {
			return strconv.FormatInt(n-1, 10)
		}
	}
	return code + " - 1"
}
