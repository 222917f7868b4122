package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		parsed, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		require.Equal(t, k, parsed)
		require.True(t, k.Valid())
		require.NotEmpty(t, k.Category(), k.String())
	}
	_, ok := ParseKind("lists_sort")
	require.False(t, ok)
	require.Equal(t, "invalid", Kind(99).String())
	require.False(t, Invalid.Valid())
	require.Len(t, KindNames(), len(Kinds()))
}

func TestKindIsStatement(t *testing.T) {
	require.True(t, ListsSetIndex.IsStatement())
	require.True(t, VariablesSet.IsStatement())
	require.False(t, ListsGetIndex.IsStatement())
	require.False(t, ListsCreateWith.IsStatement())
}

func TestInputAndField(t *testing.T) {
	var nilBlock *Block
	require.Nil(t, nilBlock.Input("VALUE"))
	require.Equal(t, "", nilBlock.Field("END"))

	b := New(ListsIndexOf).SetField("END", "LAST")
	require.Nil(t, b.Input("VALUE"))
	require.Equal(t, "LAST", b.Field("END"))

	v := New(VariablesGet).SetField("VAR", "xs")
	b.SetInput("VALUE", v)
	require.Same(t, v, b.Input("VALUE"))
	b.SetInput("VALUE", nil)
	require.Nil(t, b.Input("VALUE"))
}

func TestSockets(t *testing.T) {
	with := New(ListsCreateWith).WithItems(3).SetInput("ADD1", New(LogicNull))
	require.Equal(t, []string{"ADD0", "ADD1", "ADD2"}, with.Sockets())

	require.Empty(t, New(ListsCreateWith).WithItems(-2).Sockets())
	negative := New(ListsCreateWith)
	negative.ItemCount = -1
	require.Empty(t, negative.Sockets())
	require.Equal(t, 0, negative.Items())

	set := New(ListsSetIndex).
		SetInput("TO", New(LogicNull)).
		SetInput("AT", New(MathNumber)).
		SetInput("LIST", New(ListsCreateEmpty))
	require.Equal(t, []string{"AT", "LIST", "TO"}, set.Sockets())
}

func TestString(t *testing.T) {
	b := New(ListsLength).SetInput("VALUE", New(VariablesGet).SetField("VAR", "xs"))
	require.Equal(t, "lists_length(VALUE: variables_get[VAR=xs])", b.String())

	with := New(ListsCreateWith).WithItems(2).SetInput("ADD1", New(LogicNull))
	require.Equal(t, "lists_create_with(ADD0: <empty>, ADD1: logic_null)", with.String())

	p := NewProgram(New(ListsCreateEmpty), New(LogicNull))
	require.Equal(t, "lists_create_empty\nlogic_null", p.String())
}
