package blockgen

import (
	"encoding/json"
	"sort"

	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/errors"
)

// DocsOption configures documentation retrieval.
type DocsOption func(*docsOptions)

type docsOptions struct {
	category string
	topic    string
	all      bool
}

// DocsCategory filters documentation to one toolbox category.
// Valid categories: "lists", "math", "text", "logic", "variables"
func DocsCategory(cat string) DocsOption {
	return func(o *docsOptions) {
		o.category = cat
	}
}

// DocsTopic retrieves documentation for a single block type.
// Examples: "lists_getIndex", "math_number"
func DocsTopic(topic string) DocsOption {
	return func(o *docsOptions) {
		o.topic = topic
	}
}

// DocsAll returns the documentation of every block type.
func DocsAll() DocsOption {
	return func(o *docsOptions) {
		o.all = true
	}
}

// Documentation provides structured access to the block reference.
type Documentation struct {
	data any
}

// JSON returns the documentation as a JSON string.
func (d *Documentation) JSON() string {
	b, _ := json.MarshalIndent(d.data, "", "  ")
	return string(b)
}

// Data returns the raw documentation data.
func (d *Documentation) Data() any {
	return d.data
}

// KindDoc documents one block type.
type KindDoc struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Shape    string      `json:"shape"`
	Doc      string      `json:"doc"`
	Fields   []FieldDoc  `json:"fields,omitempty"`
	Sockets  []SocketDoc `json:"sockets,omitempty"`
	Example  string      `json:"example"`
	Emits    string      `json:"emits"`
}

// FieldDoc describes a literal field and, when restricted, its values.
type FieldDoc struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}

// SocketDoc describes an input socket and the code used when it is empty.
type SocketDoc struct {
	Name    string `json:"name"`
	Default string `json:"default"`
}

type docsQuickReference struct {
	Description string              `json:"description"`
	Pipeline    string              `json:"pipeline"`
	Categories  map[string][]string `json:"categories"`
	Next        []string            `json:"next"`
}

// Docs returns structured documentation about the supported blocks.
// Useful for tooling and editor integrations.
//
// Example:
//
//	// Quick reference
//	docs := blockgen.Docs()
//	fmt.Println(docs.JSON())
//
//	// One block type
//	docs := blockgen.Docs(blockgen.DocsTopic("lists_getIndex"))
func Docs(opts ...DocsOption) *Documentation {
	o := &docsOptions{}
	for _, opt := range opts {
		opt(o)
	}

	switch {
	case o.all:
		return &Documentation{data: kindDocsList(func(KindDoc) bool { return true })}
	case o.category != "":
		return &Documentation{data: buildCategoryDocs(o.category)}
	case o.topic != "":
		return &Documentation{data: buildTopicDocs(o.topic)}
	}
	return &Documentation{data: buildQuickReference()}
}

// LookupKindDoc returns the documentation of the named block type.
func LookupKindDoc(name string) (KindDoc, bool) {
	kind, ok := block.ParseKind(name)
	if !ok {
		return KindDoc{}, false
	}
	doc, ok := kindDocs[kind]
	return doc, ok
}

func buildQuickReference() docsQuickReference {
	categories := map[string][]string{}
	for _, k := range block.Kinds() {
		categories[k.Category()] = append(categories[k.Category()], k.String())
	}
	return docsQuickReference{
		Description: "Generates Dart code from visual list blocks",
		Pipeline:    "document → decode → validate → generate → Dart",
		Categories:  categories,
		Next: []string{
			"blockgen kinds <type>       Documentation for one block type",
			"blockgen kinds --category lists",
		},
	}
}

func kindDocsList(keep func(KindDoc) bool) []KindDoc {
	var docs []KindDoc
	for _, k := range block.Kinds() {
		if doc := kindDocs[k]; keep(doc) {
			docs = append(docs, doc)
		}
	}
	return docs
}

func buildCategoryDocs(category string) any {
	docs := kindDocsList(func(d KindDoc) bool { return d.Category == category })
	if len(docs) == 0 {
		return map[string]any{
			"error": "unknown category: " + category,
		}
	}
	return map[string]any{
		"category": category,
		"count":    len(docs),
		"kinds":    docs,
	}
}

func buildTopicDocs(topic string) any {
	if doc, ok := LookupKindDoc(topic); ok {
		return doc
	}
	result := map[string]any{
		"error": "unknown block type: " + topic,
	}
	if suggestions := errors.SuggestSimilar(topic, block.KindNames()); len(suggestions) > 0 {
		var names []string
		for _, s := range suggestions {
			names = append(names, s.Value)
		}
		sort.Strings(names)
		result["suggestions"] = names
	}
	return result
}

var listSocket = SocketDoc{Name: "VALUE", Default: "[]"}

var kindDocs = map[block.Kind]KindDoc{
	block.ListsCreateEmpty: {
		Name:     "lists_create_empty",
		Category: "lists",
		Shape:    "value",
		Doc:      "Creates an empty list.",
		Example:  `{type: lists_create_empty}`,
		Emits:    "[];\n",
	},
	block.ListsCreateWith: {
		Name:     "lists_create_with",
		Category: "lists",
		Shape:    "value",
		Doc:      "Creates a list with one element per item socket ADD0 to ADDn-1. Empty items are null.",
		Sockets:  []SocketDoc{{Name: "ADDn", Default: "null"}},
		Example:  `{type: lists_create_with, items: 3, inputs: {ADD0: {type: math_number, fields: {NUM: 1}}, ADD2: {type: text, fields: {TEXT: c}}}}`,
		Emits:    "[1, null, 'c'];\n",
	},
	block.ListsRepeat: {
		Name:     "lists_repeat",
		Category: "lists",
		Shape:    "value",
		Doc:      "Creates a list holding ITEM repeated NUM times, through a helper function defined once per program.",
		Sockets:  []SocketDoc{{Name: "ITEM", Default: "null"}, {Name: "NUM", Default: "0"}},
		Example:  `{type: lists_repeat, inputs: {ITEM: {type: text, fields: {TEXT: x}}, NUM: {type: math_number, fields: {NUM: 3}}}}`,
		Emits:    "lists_repeat('x', 3);\n",
	},
	block.ListsLength: {
		Name:     "lists_length",
		Category: "lists",
		Shape:    "value",
		Doc:      "Returns the number of elements in a list.",
		Sockets:  []SocketDoc{listSocket},
		Example:  `{type: lists_length, inputs: {VALUE: {type: variables_get, fields: {VAR: xs}}}}`,
		Emits:    "xs.length;\n",
	},
	block.ListsIsEmpty: {
		Name:     "lists_isEmpty",
		Category: "lists",
		Shape:    "value",
		Doc:      "Returns true if a list has no elements.",
		Sockets:  []SocketDoc{listSocket},
		Example:  `{type: lists_isEmpty, inputs: {VALUE: {type: variables_get, fields: {VAR: xs}}}}`,
		Emits:    "xs.isEmpty;\n",
	},
	block.ListsIndexOf: {
		Name:     "lists_indexOf",
		Category: "lists",
		Shape:    "value",
		Doc:      "Returns the 1-based position of the first or last occurrence of FIND, or 0 when it is absent.",
		Fields:   []FieldDoc{{Name: "END", Values: []string{"FIRST", "LAST"}}},
		Sockets:  []SocketDoc{listSocket, {Name: "FIND", Default: "''"}},
		Example:  `{type: lists_indexOf, fields: {END: FIRST}, inputs: {VALUE: {type: variables_get, fields: {VAR: xs}}, FIND: {type: text, fields: {TEXT: b}}}}`,
		Emits:    "xs.indexOf('b') + 1;\n",
	},
	block.ListsGetIndex: {
		Name:     "lists_getIndex",
		Category: "lists",
		Shape:    "value",
		Doc:      "Returns the element at a 1-based position.",
		Sockets:  []SocketDoc{listSocket, {Name: "AT", Default: "1"}},
		Example:  `{type: lists_getIndex, inputs: {VALUE: {type: variables_get, fields: {VAR: xs}}, AT: {type: variables_get, fields: {VAR: i}}}}`,
		Emits:    "xs[i - 1];\n",
	},
	block.ListsSetIndex: {
		Name:     "lists_setIndex",
		Category: "lists",
		Shape:    "statement",
		Doc:      "Replaces the element at a 1-based position.",
		Sockets:  []SocketDoc{{Name: "LIST", Default: "[]"}, {Name: "AT", Default: "1"}, {Name: "TO", Default: "null"}},
		Example:  `{type: lists_setIndex, inputs: {LIST: {type: variables_get, fields: {VAR: xs}}, AT: {type: math_number, fields: {NUM: 1}}, TO: {type: logic_null}}}`,
		Emits:    "xs[0] = null;\n",
	},
	block.MathNumber: {
		Name:     "math_number",
		Category: "math",
		Shape:    "value",
		Doc:      "A number literal. An empty field is 0.",
		Fields:   []FieldDoc{{Name: "NUM"}},
		Example:  `{type: math_number, fields: {NUM: -2.5}}`,
		Emits:    "-2.5;\n",
	},
	block.MathArithmetic: {
		Name:     "math_arithmetic",
		Category: "math",
		Shape:    "value",
		Doc:      "Applies a binary arithmetic operator. Operands are parenthesized only where needed.",
		Fields:   []FieldDoc{{Name: "OP", Values: []string{"ADD", "DIVIDE", "MINUS", "MULTIPLY"}}},
		Sockets:  []SocketDoc{{Name: "A", Default: "0"}, {Name: "B", Default: "0"}},
		Example:  `{type: math_arithmetic, fields: {OP: MINUS}, inputs: {A: {type: variables_get, fields: {VAR: a}}, B: {type: math_arithmetic, fields: {OP: ADD}, inputs: {A: {type: variables_get, fields: {VAR: b}}, B: {type: math_number, fields: {NUM: 1}}}}}}`,
		Emits:    "a - (b + 1);\n",
	},
	block.Text: {
		Name:     "text",
		Category: "text",
		Shape:    "value",
		Doc:      "A string literal.",
		Fields:   []FieldDoc{{Name: "TEXT"}},
		Example:  `{type: text, fields: {TEXT: "it's"}}`,
		Emits:    `'it\'s';` + "\n",
	},
	block.LogicBoolean: {
		Name:     "logic_boolean",
		Category: "logic",
		Shape:    "value",
		Doc:      "A boolean literal.",
		Fields:   []FieldDoc{{Name: "BOOL", Values: []string{"FALSE", "TRUE"}}},
		Example:  `{type: logic_boolean, fields: {BOOL: "TRUE"}}`,
		Emits:    "true;\n",
	},
	block.LogicNull: {
		Name:     "logic_null",
		Category: "logic",
		Shape:    "value",
		Doc:      "The null literal.",
		Example:  `{type: logic_null}`,
		Emits:    "null;\n",
	},
	block.VariablesGet: {
		Name:     "variables_get",
		Category: "variables",
		Shape:    "value",
		Doc:      "Reads a variable. Variables are declared at the top of main.",
		Fields:   []FieldDoc{{Name: "VAR"}},
		Example:  `{type: variables_get, fields: {VAR: count}}`,
		Emits:    "count;\n",
	},
	block.VariablesSet: {
		Name:     "variables_set",
		Category: "variables",
		Shape:    "statement",
		Doc:      "Assigns a value to a variable.",
		Fields:   []FieldDoc{{Name: "VAR"}},
		Sockets:  []SocketDoc{{Name: "VALUE", Default: "null"}},
		Example:  `{type: variables_set, fields: {VAR: xs}, inputs: {VALUE: {type: lists_create_empty}}}`,
		Emits:    "xs = [];\n",
	},
}
