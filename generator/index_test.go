package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeIndexLiteral(t *testing.T) {
	for k := 1; k <= 20; k++ {
		got := normalizeIndex(fmt.Sprint(k))
		require.Equal(t, fmt.Sprint(k-1), got)
		require.NotContains(t, got, "-")
	}
	require.Equal(t, "-1", normalizeIndex("0"))
	require.Equal(t, "-4", normalizeIndex("-3"))
	require.Equal(t, "6", normalizeIndex("007"))
}

func TestNormalizeIndexDynamic(t *testing.T) {
	tests := []string{
		"i",
		"1 + 1",
		"2 * 3",
		"xs.length",
		"1.5",
		"+2",
		" 2",
		"99999999999999999999",
		"-9223372036854775808",
	}
	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			require.Equal(t, code+" - 1", normalizeIndex(code))
		})
	}
}
