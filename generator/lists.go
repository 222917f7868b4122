package generator

import (
	"strings"

	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/errors"
)

// Editor indices are 1-based; the generated code converts them to Dart's
// 0-based indices, see normalizeIndex.

func (p *Pass) listsCreateEmpty(b *block.Block) (Fragment, error) {
	return Fragment{"[]", Atomic}, nil
}

func (p *Pass) listsCreateWith(b *block.Block) (Fragment, error) {
	items := make([]string, b.Items())
	for i := range items {
		code, err := p.resolve(b, block.ItemSocket(i), None, "null")
		if err != nil {
			return Fragment{}, err
		}
		items[i] = code
	}
	return Fragment{"[" + strings.Join(items, ", ") + "]", Atomic}, nil
}

const repeatHelperKey = "lists_repeat"

// repeatHelper returns the source of a function building a new list of n
// elements, all set to value.
func repeatHelper(name string) string {
	return strings.Join([]string{
		"List " + name + "(value, n) {",
		"  var array = new List<dynamic>.filled(n, null);",
		"  for (int i = 0; i < n; i++) {",
		"    array[i] = value;",
		"  }",
		"  return array;",
		"}",
	}, "\n")
}

func (p *Pass) listsRepeat(b *block.Block) (Fragment, error) {
	name := p.helpers.Ensure(repeatHelperKey, repeatHelper)
	item, err := p.resolve(b, "ITEM", None, "null")
	if err != nil {
		return Fragment{}, err
	}
	num, err := p.resolve(b, "NUM", None, "0")
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{name + "(" + item + ", " + num + ")", UnaryPostfix}, nil
}

func (p *Pass) listsLength(b *block.Block) (Fragment, error) {
	list, err := p.resolve(b, "VALUE", UnaryPostfix, "[]")
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{list + ".length", UnaryPostfix}, nil
}

func (p *Pass) listsIsEmpty(b *block.Block) (Fragment, error) {
	list, err := p.resolve(b, "VALUE", UnaryPostfix, "[]")
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{list + ".isEmpty", UnaryPostfix}, nil
}

var searchEnds = []string{"FIRST", "LAST"}

// searchMethod returns the Dart List method implementing the block's END
// field.
func searchMethod(b *block.Block) (string, error) {
	switch end := b.Field("END"); end {
	case "FIRST":
		return "indexOf", nil
	case "LAST":
		return "lastIndexOf", nil
	default:
		return "", errors.UnrecognizedValue(locate(b, "END"), end, searchEnds)
	}
}

// listsIndexOf returns the 1-based position of the match. Dart reports a
// missing element as -1, so "not found" is generated as 0.
func (p *Pass) listsIndexOf(b *block.Block) (Fragment, error) {
	method, err := searchMethod(b)
	if err != nil {
		return Fragment{}, err
	}
	find, err := p.resolve(b, "FIND", None, "''")
	if err != nil {
		return Fragment{}, err
	}
	list, err := p.resolve(b, "VALUE", UnaryPostfix, "[]")
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{list + "." + method + "(" + find + ") + 1", Additive}, nil
}

// index resolves the AT socket of b into a 0-based Dart index.
func (p *Pass) index(b *block.Block) (string, error) {
	at, err := p.resolve(b, "AT", Additive, "1")
	if err != nil {
		return "", err
	}
	return normalizeIndex(at), nil
}

func (p *Pass) listsGetIndex(b *block.Block) (Fragment, error) {
	at, err := p.index(b)
	if err != nil {
		return Fragment{}, err
	}
	list, err := p.resolve(b, "VALUE", UnaryPostfix, "[]")
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{list + "[" + at + "]", UnaryPostfix}, nil
}

func (p *Pass) listsSetIndex(b *block.Block) (string, error) {
	at, err := p.index(b)
	if err != nil {
		return "", err
	}
	list, err := p.resolve(b, "LIST", UnaryPostfix, "[]")
	if err != nil {
		return "", err
	}
	value, err := p.resolve(b, "TO", Assignment, "null")
	if err != nil {
		return "", err
	}
	return list + "[" + at + "] = " + value + ";\n", nil
}
