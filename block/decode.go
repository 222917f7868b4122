package block

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"

	"github.com/deepnoodle-ai/blockgen/errors"
)

// DecodeOption configures Decode.
type DecodeOption func(*decoder)

// WithSelect applies a JMESPath expression to the document before blocks are
// read from it. Editor exports usually nest the block list, e.g. "blocks.blocks".
func WithSelect(expr string) DecodeOption {
	return func(d *decoder) {
		d.selectExpr = expr
	}
}

// WithFilename sets the document name reported in decode errors.
func WithFilename(name string) DecodeOption {
	return func(d *decoder) {
		d.filename = name
	}
}

// WithIDGenerator overrides how IDs are assigned to blocks that have none.
// The default assigns a random UUID.
func WithIDGenerator(fn func() string) DecodeOption {
	return func(d *decoder) {
		d.newID = fn
	}
}

type decoder struct {
	selectExpr string
	filename   string
	newID      func() string
	seen       map[string]bool
	err        error
}

func newUUID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Decode reads a program from a YAML or JSON document. The document may be a
// mapping with a "blocks" list, a bare list of blocks, or a single block.
//
// Each block is a mapping with "type" and optional "id", "fields", "inputs"
// and "items". Both the compact form (inputs map straight to blocks) and the
// editor's serialization format (inputs wrap blocks as {"block": ...},
// "extraState.itemCount", "next" chains of top-level statements) are
// accepted. Every problem found in the document is reported, not just the
// first.
func Decode(data []byte, opts ...DecodeOption) (*Program, error) {
	d := &decoder{newID: newUUID, seen: map[string]bool{}}
	for _, opt := range opts {
		opt(d)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, d.fail(errors.E1001, errors.BlockLocation{}, "invalid document: %v", err)
	}
	raw = normalize(raw)

	if d.selectExpr != "" {
		selected, err := jmespath.Search(d.selectExpr, raw)
		if err != nil {
			return nil, d.fail(errors.E1004, errors.BlockLocation{}, "invalid selection %q: %v", d.selectExpr, err)
		}
		if selected == nil {
			return nil, d.fail(errors.E1004, errors.BlockLocation{}, "selection %q matched nothing", d.selectExpr)
		}
		raw = selected
	}

	program := &Program{}
	for i, item := range topLevel(raw) {
		path := fmt.Sprintf("blocks[%d]", i)
		for item != nil {
			b, next := d.block(path, item, true)
			if b != nil {
				program.Blocks = append(program.Blocks, b)
			}
			item = next
			path += ".next"
		}
	}
	if d.err != nil {
		return nil, errors.Collect(d.err)
	}
	return program, nil
}

func (d *decoder) fail(code errors.ErrorCode, loc errors.BlockLocation, format string, args ...any) error {
	err := errors.Errorf(code, loc, format, args...)
	err.Filename = d.filename
	return err
}

func (d *decoder) report(err error) {
	d.err = errors.Append(d.err, err)
}

// topLevel returns the list of top-level block documents held by raw.
func topLevel(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		if _, ok := v["type"]; ok {
			return []any{v}
		}
		if blocks, ok := v["blocks"]; ok {
			return topLevel(blocks)
		}
	}
	return []any{raw}
}

// block decodes a single block document. The second result is the document
// connected to the block's "next" connection, if any.
func (d *decoder) block(path string, raw any, topLevel bool) (*Block, any) {
	m, ok := raw.(map[string]any)
	if !ok {
		d.report(d.fail(errors.E1001, errors.BlockLocation{BlockID: path}, "expected a block mapping, got %s", describe(raw)))
		return nil, nil
	}

	b := &Block{}
	if id, ok := m["id"]; ok {
		b.ID = scalar(id)
	}
	if b.ID == "" {
		b.ID = d.newID()
	} else if d.seen[b.ID] {
		d.report(d.fail(errors.E1005, errors.BlockLocation{BlockID: b.ID}, "block id %q is used more than once", b.ID))
	}
	d.seen[b.ID] = true

	typeName := scalar(m["type"])
	loc := errors.BlockLocation{BlockID: b.ID, Kind: typeName}
	switch kind, ok := ParseKind(typeName); {
	case typeName == "":
		d.report(d.fail(errors.E1001, errors.BlockLocation{BlockID: b.ID}, "block at %s has no type", path))
	case !ok:
		err := errors.Errorf(errors.E1002, loc, "unknown block type %q", typeName)
		err.Filename = d.filename
		err.Suggestions = errors.SuggestSimilar(typeName, KindNames())
		d.report(err)
	default:
		b.Kind = kind
	}

	if fields, ok := m["fields"].(map[string]any); ok {
		for name, value := range fields {
			b.SetField(name, scalar(value))
		}
	}

	if inputs, ok := m["inputs"].(map[string]any); ok {
		names := make([]string, 0, len(inputs))
		for name := range inputs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			childDoc := unwrapConnection(inputs[name])
			if childDoc == nil {
				continue
			}
			if child, _ := d.block(path+".inputs."+name, childDoc, false); child != nil {
				b.SetInput(name, child)
			}
		}
	}

	d.itemCount(b, m, loc)

	var next any
	if n, ok := m["next"]; ok {
		next = unwrapConnection(n)
		if next != nil && !topLevel {
			d.report(d.fail(errors.E1001, loc, "nested block has a next block"))
			next = nil
		}
	}
	return b, next
}

// itemCount sets ItemCount from "items" or "extraState.itemCount", falling
// back to the highest connected ADDn socket.
func (d *decoder) itemCount(b *Block, m map[string]any, loc errors.BlockLocation) {
	raw, ok := m["items"]
	if !ok {
		if extra, isMap := m["extraState"].(map[string]any); isMap {
			raw, ok = extra["itemCount"]
		}
	}
	if ok {
		n, isNum := raw.(float64)
		if !isNum || n < 0 || n != float64(int(n)) {
			d.report(d.fail(errors.E1003, loc, "item count must be a non-negative integer, got %s", describe(raw)))
			return
		}
		b.ItemCount = int(n)
		return
	}
	if b.Kind != ListsCreateWith {
		return
	}
	for name := range b.Inputs {
		if i, err := strconv.Atoi(strings.TrimPrefix(name, "ADD")); err == nil && strings.HasPrefix(name, "ADD") && i+1 > b.ItemCount {
			b.ItemCount = i + 1
		}
	}
}

// unwrapConnection accepts either a block document or the editor's
// {"block": ..., "shadow": ...} connection wrapper. A connected block wins
// over its shadow.
func unwrapConnection(raw any) any {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw
	}
	if _, isBlock := m["type"]; isBlock {
		return m
	}
	if b, ok := m["block"]; ok && b != nil {
		return b
	}
	if s, ok := m["shadow"]; ok {
		return s
	}
	return nil
}

// normalize converts a decoded YAML value into the shapes JMESPath expects:
// string keyed maps and float64 numbers.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return v
}

// scalar renders a field value as the literal string the editor would hold.
func scalar(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strings.ToUpper(strconv.FormatBool(v))
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "a mapping"
	case []any:
		return "a list"
	case string:
		return fmt.Sprintf("string %q", v)
	}
	return fmt.Sprintf("%v", v)
}
