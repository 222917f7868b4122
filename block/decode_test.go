package block

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/blockgen/errors"
)

func sequentialIDs() DecodeOption {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("gen%d", n)
	})
}

func TestDecodeCompactYAML(t *testing.T) {
	src := `
blocks:
  - type: lists_setIndex
    id: set
    inputs:
      LIST: {type: variables_get, fields: {VAR: xs}}
      AT: {type: math_number, fields: {NUM: 2}}
      TO: {type: text, fields: {TEXT: hi}}
  - type: lists_create_with
    items: 3
    inputs:
      ADD1: {type: logic_boolean, fields: {BOOL: true}}
`
	p, err := Decode([]byte(src), sequentialIDs())
	require.Nil(t, err)
	require.Len(t, p.Blocks, 2)

	set := p.Blocks[0]
	require.Equal(t, "set", set.ID)
	require.Equal(t, ListsSetIndex, set.Kind)
	require.Equal(t, "xs", set.Input("LIST").Field("VAR"))
	require.Equal(t, "2", set.Input("AT").Field("NUM"))
	require.Equal(t, "hi", set.Input("TO").Field("TEXT"))

	with := p.Blocks[1]
	require.Equal(t, ListsCreateWith, with.Kind)
	require.Equal(t, 3, with.ItemCount)
	require.Equal(t, "TRUE", with.Input("ADD1").Field("BOOL"))
	require.NotEmpty(t, with.ID)
	require.NotEqual(t, with.ID, with.Input("ADD1").ID)
}

func TestDecodeEditorJSON(t *testing.T) {
	src := `{
  "blocks": {
    "languageVersion": 0,
    "blocks": [
      {
        "type": "variables_set",
        "id": "a",
        "fields": {"VAR": "xs"},
        "inputs": {
          "VALUE": {
            "block": {
              "type": "lists_create_with",
              "id": "b",
              "extraState": {"itemCount": 2},
              "inputs": {
                "ADD0": {"shadow": {"type": "math_number", "id": "s", "fields": {"NUM": 1}},
                         "block": {"type": "math_number", "id": "c", "fields": {"NUM": 5}}}
              }
            }
          }
        },
        "next": {
          "block": {
            "type": "lists_setIndex",
            "id": "d",
            "inputs": {"LIST": {"block": {"type": "variables_get", "id": "e", "fields": {"VAR": "xs"}}}}
          }
        }
      }
    ]
  }
}`
	p, err := Decode([]byte(src), WithSelect("blocks.blocks"))
	require.Nil(t, err)
	require.Len(t, p.Blocks, 2)
	require.Equal(t, VariablesSet, p.Blocks[0].Kind)
	with := p.Blocks[0].Input("VALUE")
	require.Equal(t, 2, with.ItemCount)
	require.Equal(t, "c", with.Input("ADD0").ID)
	require.Equal(t, "5", with.Input("ADD0").Field("NUM"))
	require.Equal(t, "d", p.Blocks[1].ID)
	require.Equal(t, "xs", p.Blocks[1].Input("LIST").Field("VAR"))
}

func TestDecodeShapes(t *testing.T) {
	single, err := Decode([]byte(`{type: lists_create_empty, id: x}`))
	require.Nil(t, err)
	require.Len(t, single.Blocks, 1)
	require.Equal(t, "x", single.Blocks[0].ID)

	list, err := Decode([]byte("- type: logic_null\n- type: lists_create_empty\n"))
	require.Nil(t, err)
	require.Len(t, list.Blocks, 2)

	empty, err := Decode([]byte(""))
	require.Nil(t, err)
	require.Empty(t, empty.Blocks)
}

func TestDecodeItemCountFromSockets(t *testing.T) {
	p, err := Decode([]byte(`
type: lists_create_with
inputs:
  ADD0: {type: logic_null}
  ADD4: {type: logic_null}
`))
	require.Nil(t, err)
	require.Equal(t, 5, p.Blocks[0].ItemCount)
}

func TestDecodeCollectsErrors(t *testing.T) {
	src := `
- type: lists_lenght
  id: one
- id: two
- type: lists_create_with
  id: three
  items: -1
- type: logic_null
  id: one
- 42
`
	_, err := Decode([]byte(src), WithFilename("prog.yaml"))
	require.NotNil(t, err)
	errs := errors.Flatten(err)
	require.Len(t, errs, 5)

	var ge *errors.GenerateError
	require.True(t, errors.As(errs[0], &ge))
	require.Equal(t, errors.E1002, ge.Code)
	require.Equal(t, "prog.yaml", ge.Filename)
	require.Equal(t, "lists_length", ge.Suggestions[0].Value)

	codes := make([]errors.ErrorCode, len(errs))
	for i, e := range errs {
		require.True(t, errors.As(e, &ge))
		codes[i] = ge.Code
	}
	require.Equal(t, []errors.ErrorCode{
		errors.E1002, errors.E1001, errors.E1003, errors.E1005, errors.E1001,
	}, codes)
}

func TestDecodeNestedNext(t *testing.T) {
	_, err := Decode([]byte(`
type: lists_length
id: len
inputs:
  VALUE:
    block: {type: variables_get, id: v, fields: {VAR: xs}}
    next: {block: {type: logic_null}}
`))
	// "next" on the connection wrapper is ignored; only block mappings chain.
	require.Nil(t, err)

	_, err = Decode([]byte(`
type: lists_length
id: len
inputs:
  VALUE:
    type: variables_get
    id: v
    next: {block: {type: logic_null}}
`))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "nested block has a next block")
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("blocks: [unclosed"))
	require.NotNil(t, err)
	var ge *errors.GenerateError
	require.True(t, errors.As(err, &ge))
	require.Equal(t, errors.E1001, ge.Code)

	_, err = Decode([]byte("blocks: []"), WithSelect("[[["))
	require.True(t, errors.As(err, &ge))
	require.Equal(t, errors.E1004, ge.Code)

	_, err = Decode([]byte("blocks: []"), WithSelect("missing"))
	require.True(t, errors.As(err, &ge))
	require.Contains(t, ge.Message, "matched nothing")
}
