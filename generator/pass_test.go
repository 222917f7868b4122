package generator

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/errors"
)

func TestPrecedenceOrdering(t *testing.T) {
	order := []Precedence{
		None, Assignment, Cascade, Conditional, LogicalOr, LogicalAnd, Equality,
		Relational, BitwiseOr, BitwiseXor, BitwiseAnd, Shift, Additive,
		Multiplicative, UnaryPrefix, UnaryPostfix, Atomic,
	}
	for i := 1; i < len(order); i++ {
		require.Less(t, order[i-1], order[i])
	}
	require.Equal(t, "unary-postfix", UnaryPostfix.String())
	require.Equal(t, "unknown", Precedence(-1).String())
}

func TestFragmentIn(t *testing.T) {
	sum := Fragment{"a + b", Additive}
	require.Equal(t, "(a + b)", sum.In(UnaryPostfix))
	require.Equal(t, "a + b", sum.In(Additive))
	require.Equal(t, "a + b", sum.In(None))

	atom := Fragment{"xs", Atomic}
	require.Equal(t, "xs", atom.In(UnaryPostfix))
}

func TestResolveParenthesizes(t *testing.T) {
	// Lower precedence inside member access is grouped.
	frag := expr(t, length(arith("ADD", variable("a"), variable("b"))))
	require.Equal(t, "(a + b).length", frag.Code)

	// Tighter expressions are left alone.
	require.Equal(t, "xs.length", expr(t, length(variable("xs"))).Code)
	require.Equal(t, "xs[0].length", expr(t, length(getIndex(variable("xs"), num("1")))).Code)
	require.Equal(t, "lists_repeat(null, 0).isEmpty",
		expr(t, block.New(block.ListsIsEmpty).SetInput("VALUE", repeat(nil, nil))).Code)

	// Negative numbers bind looser than member access.
	require.Equal(t, "(-1).length", expr(t, length(num("-1"))).Code)
}

func TestResolveFallback(t *testing.T) {
	pass := NewPass(zerolog.Nop())
	code, err := pass.resolve(block.New(block.ListsLength), "VALUE", UnaryPostfix, "[]")
	require.Nil(t, err)
	require.Equal(t, "[]", code)
}

func TestStatementFromValueBlock(t *testing.T) {
	require.Equal(t, "xs.length;\n", stmt(t, length(variable("xs"))))
}

func TestStatementInValuePosition(t *testing.T) {
	inner := setIndex(variable("xs"), num("1"), num("2")).WithID("inner")
	_, err := NewPass(zerolog.Nop()).Expression(length(inner))
	require.NotNil(t, err)
	var ge *errors.GenerateError
	require.True(t, errors.As(err, &ge))
	require.Equal(t, errors.E2002, ge.Code)
	require.Equal(t, "inner", ge.Location.BlockID)
}

func TestUnsupportedKind(t *testing.T) {
	_, err := NewPass(zerolog.Nop()).Statement(block.New(block.Invalid))
	var ge *errors.GenerateError
	require.True(t, errors.As(err, &ge))
	require.Equal(t, errors.E2004, ge.Code)
}

func TestReserveVariables(t *testing.T) {
	pass := NewPass(zerolog.Nop())
	pass.ReserveVariables(block.NewProgram(
		block.New(block.VariablesSet).SetField("VAR", "ys").SetInput("VALUE", variable("xs")),
		length(variable("ys")),
	))
	require.Equal(t, []string{"ys", "xs"}, pass.Names().Variables())
}
