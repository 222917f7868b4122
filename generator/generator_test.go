package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/blockgen/block"
)

func assignment(name string, value *block.Block) *block.Block {
	return block.New(block.VariablesSet).SetField("VAR", name).SetInput("VALUE", value)
}

func sampleProgram() *block.Program {
	return block.NewProgram(
		assignment("xs", repeat(str("a"), num("3"))),
		setIndex(variable("xs"), num("2"), str("b")),
		assignment("n", length(variable("xs"))),
	)
}

const sampleDart = `List lists_repeat(value, n) {
  var array = new List<dynamic>.filled(n, null);
  for (int i = 0; i < n; i++) {
    array[i] = value;
  }
  return array;
}

main() {
  var xs, n;
  xs = lists_repeat('a', 3);
  xs[1] = 'b';
  n = xs.length;
}
`

func TestGenerateProgram(t *testing.T) {
	out, err := New().Generate(context.Background(), sampleProgram())
	require.Nil(t, err)
	require.Equal(t, sampleDart, out.String())
	require.Equal(t, "xs = lists_repeat('a', 3);\nxs[1] = 'b';\nn = xs.length;\n", out.Code())
	require.Equal(t, []string{"xs", "n"}, out.Variables)
}

func TestGenerateRepeatTwice(t *testing.T) {
	program := block.NewProgram(
		repeat(str("a"), num("2")),
		repeat(num("0"), num("5")),
	)
	out, err := New().Generate(context.Background(), program)
	require.Nil(t, err)
	require.Len(t, out.Definitions, 1)

	dart := out.String()
	require.Equal(t, 1, strings.Count(dart, "List lists_repeat(value, n) {"))
	require.Equal(t, 2, strings.Count(out.Code(), "lists_repeat("))
	// The definition precedes every call site.
	require.Less(t, strings.Index(dart, "List lists_repeat"), strings.Index(dart, "lists_repeat('a', 2)"))
}

func TestGenerateHelperAvoidsVariableName(t *testing.T) {
	program := block.NewProgram(
		assignment("lists_repeat", repeat(nil, nil)),
	)
	out, err := New().Generate(context.Background(), program)
	require.Nil(t, err)
	require.Equal(t, "lists_repeat = lists_repeat2(null, 0);\n", out.Code())
	require.Equal(t, "lists_repeat2", out.Definitions[0].Name)
	require.True(t, strings.HasPrefix(out.String(), "List lists_repeat2(value, n) {"))
}

func TestGenerateFreshPassEachTime(t *testing.T) {
	g := New()
	first, err := g.Generate(context.Background(), block.NewProgram(repeat(nil, nil)))
	require.Nil(t, err)
	require.Len(t, first.Definitions, 1)

	second, err := g.Generate(context.Background(), block.NewProgram(length(variable("xs"))))
	require.Nil(t, err)
	require.Empty(t, second.Definitions)
	require.Equal(t, "main() {\n  var xs;\n  xs.length;\n}\n", second.String())
}

func TestGenerateEmptyProgram(t *testing.T) {
	out, err := New().Generate(context.Background(), block.NewProgram())
	require.Nil(t, err)
	require.Equal(t, "main() {\n}\n", out.String())
}

func TestGenerateIndentAndReserved(t *testing.T) {
	g := New(WithIndent("\t"), WithReservedNames("xs"))
	out, err := g.Generate(context.Background(), block.NewProgram(assignment("xs", nil)))
	require.Nil(t, err)
	require.Equal(t, "main() {\n\tvar xs2;\n\txs2 = null;\n}\n", out.String())
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	var blocks []*block.Block
	for i := 0; i < 40; i++ {
		blocks = append(blocks,
			assignment("xs", repeat(num("1"), num("4"))),
			setIndex(variable("xs"), variable("i"), indexOf("LAST", variable("xs"), num("1"))),
			getIndex(variable("xs"), num("2")),
		)
	}
	program := block.NewProgram(blocks...)

	seq, err := New().Generate(context.Background(), program)
	require.Nil(t, err)
	par, err := New(WithWorkers(8)).Generate(context.Background(), program)
	require.Nil(t, err)
	require.Equal(t, seq.String(), par.String())
}

func TestGenerateParallelReportsFirstError(t *testing.T) {
	program := block.NewProgram(
		length(variable("xs")),
		indexOf("NOPE", nil, nil).WithID("bad1"),
		indexOf("NOPE", nil, nil).WithID("bad2"),
	)
	_, err := New(WithWorkers(3)).Generate(context.Background(), program)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "bad1")
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Generate(ctx, sampleProgram())
	require.ErrorIs(t, err, context.Canceled)
	_, err = New(WithWorkers(2)).Generate(ctx, sampleProgram())
	require.ErrorIs(t, err, context.Canceled)
}
