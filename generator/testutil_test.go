package generator

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/blockgen/block"
)

func num(v string) *block.Block {
	return block.New(block.MathNumber).SetField("NUM", v)
}

func variable(name string) *block.Block {
	return block.New(block.VariablesGet).SetField("VAR", name)
}

func str(s string) *block.Block {
	return block.New(block.Text).SetField("TEXT", s)
}

func arith(op string, a, b *block.Block) *block.Block {
	return block.New(block.MathArithmetic).SetField("OP", op).SetInput("A", a).SetInput("B", b)
}

func getIndex(list, at *block.Block) *block.Block {
	return block.New(block.ListsGetIndex).SetInput("VALUE", list).SetInput("AT", at)
}

func setIndex(list, at, to *block.Block) *block.Block {
	return block.New(block.ListsSetIndex).SetInput("LIST", list).SetInput("AT", at).SetInput("TO", to)
}

func indexOf(end string, list, find *block.Block) *block.Block {
	return block.New(block.ListsIndexOf).SetField("END", end).SetInput("VALUE", list).SetInput("FIND", find)
}

func repeat(item, n *block.Block) *block.Block {
	return block.New(block.ListsRepeat).SetInput("ITEM", item).SetInput("NUM", n)
}

func length(list *block.Block) *block.Block {
	return block.New(block.ListsLength).SetInput("VALUE", list)
}

func expr(t *testing.T, b *block.Block) Fragment {
	t.Helper()
	frag, err := NewPass(zerolog.Nop()).Expression(b)
	require.Nil(t, err)
	return frag
}

func stmt(t *testing.T, b *block.Block) string {
	t.Helper()
	code, err := NewPass(zerolog.Nop()).Statement(b)
	require.Nil(t, err)
	return code
}
