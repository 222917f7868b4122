package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariableNameStable(t *testing.T) {
	db := NewNameDB()
	require.Equal(t, "xs", db.VariableName("xs"))
	require.Equal(t, "xs", db.VariableName("xs"))
	require.Equal(t, []string{"xs"}, db.Variables())
}

func TestVariableNameSanitized(t *testing.T) {
	db := NewNameDB()
	require.Equal(t, "my_list", db.VariableName("my list"))
	require.Equal(t, "my_list2", db.VariableName("my-list"))
	require.Equal(t, "my_2nd", db.VariableName("2nd"))
	require.Equal(t, "unnamed", db.VariableName(""))
	require.Equal(t, "caf_", db.VariableName("café"))
}

func TestReservedWordsAvoided(t *testing.T) {
	db := NewNameDB("outer")
	require.Equal(t, "List2", db.VariableName("List"))
	require.Equal(t, "main2", db.DistinctName("main"))
	require.Equal(t, "outer2", db.VariableName("outer"))
	require.Equal(t, "var2", db.VariableName("var"))
}

func TestDistinctName(t *testing.T) {
	db := NewNameDB()
	require.Equal(t, "tmp", db.DistinctName("tmp"))
	require.Equal(t, "tmp2", db.DistinctName("tmp"))
	require.Equal(t, "tmp3", db.DistinctName("tmp"))
	// Helpers are not variables.
	require.Empty(t, db.Variables())
}
