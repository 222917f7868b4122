// Package block defines the block tree a visual program is made of.
//
// A Block has a Kind, named input sockets that may hold another block, and
// named fields holding literal configuration. The tree is produced by the
// visual editor (or decoded from one of its documents, see Decode) and is
// read-only as far as code generation is concerned.
package block

import (
	"fmt"
	"sort"
	"strings"
)

// Block is a node in a visual program.
type Block struct {
	ID     string
	Kind   Kind
	Fields map[string]string
	Inputs map[string]*Block

	// ItemCount is the number of ADDn sockets on a lists_create_with block.
	ItemCount int
}

// New returns an empty block of the given kind.
func New(kind Kind) *Block {
	return &Block{Kind: kind}
}

// Input returns the block connected to the named socket, or nil when the
// socket is unconnected.
func (b *Block) Input(name string) *Block {
	if b == nil || b.Inputs == nil {
		return nil
	}
	return b.Inputs[name]
}

// Field returns the literal value of the named field, or "" if unset.
func (b *Block) Field(name string) string {
	if b == nil || b.Fields == nil {
		return ""
	}
	return b.Fields[name]
}

// SetInput connects child to the named socket and returns b. A nil child
// disconnects the socket.
func (b *Block) SetInput(name string, child *Block) *Block {
	if child == nil {
		delete(b.Inputs, name)
		return b
	}
	if b.Inputs == nil {
		b.Inputs = map[string]*Block{}
	}
	b.Inputs[name] = child
	return b
}

// SetField sets the named field and returns b.
func (b *Block) SetField(name, value string) *Block {
	if b.Fields == nil {
		b.Fields = map[string]string{}
	}
	b.Fields[name] = value
	return b
}

// WithID sets the block ID and returns b.
func (b *Block) WithID(id string) *Block {
	b.ID = id
	return b
}

// WithItems sets the item count of a lists_create_with block and returns b.
// Negative counts are stored as 0.
func (b *Block) WithItems(n int) *Block {
	b.ItemCount = max(n, 0)
	return b
}

// Items returns the number of item sockets of a lists_create_with block.
// A negative ItemCount counts as 0.
func (b *Block) Items() int {
	return max(b.ItemCount, 0)
}

// ItemSocket returns the name of the i'th item socket of a
// lists_create_with block.
func ItemSocket(i int) string {
	return fmt.Sprintf("ADD%d", i)
}

// Sockets returns the names of the block's sockets in the order they are
// generated: ADD0..ADDn-1 for lists_create_with, otherwise sorted by name.
// Unconnected sockets are included only for lists_create_with.
func (b *Block) Sockets() []string {
	if b.Kind == ListsCreateWith {
		names := make([]string, b.Items())
		for i := range names {
			names[i] = ItemSocket(i)
		}
		return names
	}
	names := make([]string, 0, len(b.Inputs))
	for name := range b.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a compact, human friendly representation of the block tree,
// for example "lists_length(VALUE: variables_get[VAR=xs])".
func (b *Block) String() string {
	if b == nil {
		return "<empty>"
	}
	var out strings.Builder
	out.WriteString(b.Kind.String())
	if len(b.Fields) > 0 {
		keys := make([]string, 0, len(b.Fields))
		for k := range b.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + b.Fields[k]
		}
		out.WriteString("[")
		out.WriteString(strings.Join(parts, ", "))
		out.WriteString("]")
	}
	sockets := b.Sockets()
	if len(sockets) > 0 {
		parts := make([]string, len(sockets))
		for i, name := range sockets {
			parts[i] = name + ": " + b.Input(name).String()
		}
		out.WriteString("(")
		out.WriteString(strings.Join(parts, ", "))
		out.WriteString(")")
	}
	return out.String()
}

// Program is the ordered list of top-level blocks of a visual program.
type Program struct {
	Blocks []*Block
}

// NewProgram returns a program holding the given top-level blocks.
func NewProgram(blocks ...*Block) *Program {
	return &Program{Blocks: blocks}
}

// String returns the top-level blocks, one per line.
func (p *Program) String() string {
	lines := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
