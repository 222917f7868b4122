package generator

import (
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/errors"
)

// Pass is the state of one generation pass: the helper definitions collected
// so far and the names handed out. A Pass is created at the start of
// generation and discarded once the program is assembled.
type Pass struct {
	helpers *HelperRegistry
	names   *NameDB
	logger  zerolog.Logger
}

// NewPass returns an empty pass. Names in reserved are never handed out.
func NewPass(logger zerolog.Logger, reserved ...string) *Pass {
	names := NewNameDB(reserved...)
	return &Pass{
		helpers: NewHelperRegistry(names, logger),
		names:   names,
		logger:  logger,
	}
}

// Helpers returns the pass's helper registry.
func (p *Pass) Helpers() *HelperRegistry {
	return p.helpers
}

// Names returns the pass's name allocator.
func (p *Pass) Names() *NameDB {
	return p.names
}

// ReserveVariables gives every variable referenced in the program its name
// before any helper is named, so helpers never take a variable's name.
func (p *Pass) ReserveVariables(program *block.Program) {
	block.InspectProgram(program, func(b *block.Block) bool {
		if b.Kind == block.VariablesGet || b.Kind == block.VariablesSet {
			if name := b.Field("VAR"); name != "" {
				p.names.VariableName(name)
			}
		}
		return true
	})
}

// Expression generates the Dart expression for a value block.
func (p *Pass) Expression(b *block.Block) (Fragment, error) {
	switch b.Kind {
	case block.ListsCreateEmpty:
		return p.listsCreateEmpty(b)
	case block.ListsCreateWith:
		return p.listsCreateWith(b)
	case block.ListsRepeat:
		return p.listsRepeat(b)
	case block.ListsLength:
		return p.listsLength(b)
	case block.ListsIsEmpty:
		return p.listsIsEmpty(b)
	case block.ListsIndexOf:
		return p.listsIndexOf(b)
	case block.ListsGetIndex:
		return p.listsGetIndex(b)
	case block.MathNumber:
		return p.mathNumber(b)
	case block.MathArithmetic:
		return p.mathArithmetic(b)
	case block.Text:
		return p.text(b)
	case block.LogicBoolean:
		return p.logicBoolean(b)
	case block.LogicNull:
		return Fragment{"null", Atomic}, nil
	case block.VariablesGet:
		return p.variablesGet(b)
	case block.ListsSetIndex, block.VariablesSet:
		return Fragment{}, errors.Errorf(errors.E2002, locate(b, ""),
			"%s produces a statement and cannot be used as a value", b.Kind)
	}
	return Fragment{}, errors.Errorf(errors.E2004, locate(b, ""), "unsupported block kind %s", b.Kind)
}

// Statement generates the Dart statement for a top-level block, terminated
// by ";\n". Value blocks become expression statements.
func (p *Pass) Statement(b *block.Block) (string, error) {
	switch b.Kind {
	case block.ListsSetIndex:
		return p.listsSetIndex(b)
	case block.VariablesSet:
		return p.variablesSet(b)
	}
	frag, err := p.Expression(b)
	if err != nil {
		return "", err
	}
	return frag.Code + ";\n", nil
}

// resolve generates the block connected to socket, parenthesized when it
// binds less tightly than required. An unconnected socket yields fallback.
func (p *Pass) resolve(b *block.Block, socket string, required Precedence, fallback string) (string, error) {
	child := b.Input(socket)
	if child == nil {
		p.logger.Debug().
			Str("block", b.ID).
			Str("kind", b.Kind.String()).
			Str("socket", socket).
			Str("default", fallback).
			Msg("unconnected socket")
		return fallback, nil
	}
	frag, err := p.Expression(child)
	if err != nil {
		return "", err
	}
	return frag.In(required), nil
}

func locate(b *block.Block, field string) errors.BlockLocation {
	return errors.BlockLocation{BlockID: b.ID, Kind: b.Kind.String(), Field: field}
}
