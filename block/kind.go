package block

import "sort"

// Kind identifies what a block does. The set is closed: decoding rejects any
// block type not listed here, and the generator switches over every Kind.
type Kind int

const (
	Invalid Kind = iota

	// List blocks
	ListsCreateEmpty
	ListsCreateWith
	ListsRepeat
	ListsLength
	ListsIsEmpty
	ListsIndexOf
	ListsGetIndex
	ListsSetIndex

	// Value and variable blocks the list blocks are composed with
	MathNumber
	MathArithmetic
	Text
	LogicBoolean
	LogicNull
	VariablesGet
	VariablesSet

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:          "invalid",
	ListsCreateEmpty: "lists_create_empty",
	ListsCreateWith:  "lists_create_with",
	ListsRepeat:      "lists_repeat",
	ListsLength:      "lists_length",
	ListsIsEmpty:     "lists_isEmpty",
	ListsIndexOf:     "lists_indexOf",
	ListsGetIndex:    "lists_getIndex",
	ListsSetIndex:    "lists_setIndex",
	MathNumber:       "math_number",
	MathArithmetic:   "math_arithmetic",
	Text:             "text",
	LogicBoolean:     "logic_boolean",
	LogicNull:        "logic_null",
	VariablesGet:     "variables_get",
	VariablesSet:     "variables_set",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Invalid + 1; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// String returns the block type name used by the visual editor.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k > Invalid && k < kindCount
}

// IsStatement reports whether blocks of this kind produce a statement rather
// than a value. Statement blocks may only appear at the top level.
func (k Kind) IsStatement() bool {
	switch k {
	case ListsSetIndex, VariablesSet:
		return true
	}
	return false
}

// Category returns the editor toolbox category the kind belongs to.
func (k Kind) Category() string {
	switch {
	case k >= ListsCreateEmpty && k <= ListsSetIndex:
		return "lists"
	case k == MathNumber || k == MathArithmetic:
		return "math"
	case k == Text:
		return "text"
	case k == LogicBoolean || k == LogicNull:
		return "logic"
	case k == VariablesGet || k == VariablesSet:
		return "variables"
	}
	return ""
}

// ParseKind looks up a kind by its block type name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// KindNames returns the type names of all supported kinds, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kindsByName))
	for name := range kindsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Invalid + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
