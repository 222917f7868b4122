// Package generator turns block trees into Dart source code.
//
// # Composition
//
// Every value block generates a Fragment: its code and the Precedence of its
// outermost operator. A block resolves each input socket at the precedence
// of the position the result is placed in, and the child's code is wrapped
// in parentheses only when it binds less tightly than that position needs.
// Unconnected sockets resolve to a fixed default chosen by the consuming
// block ("null", "0", "[]", "1" or "''"), so an incomplete program still
// generates valid code.
//
// # Indices
//
// The editor numbers list elements from 1. Literal indices are decremented
// during generation ("3" becomes "2"); any other index expression gets a
// run-time "- 1".
//
// # Helpers
//
// Blocks that need a runtime support function register it with the pass's
// HelperRegistry. The definition is emitted once, before main, however many
// blocks call it.
package generator

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/blockgen/block"
)

// DefaultIndent is the indentation used for statements inside main.
const DefaultIndent = "  "

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for debug output during generation.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithWorkers sets how many top-level blocks are generated concurrently.
// Values below 2 generate sequentially.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithIndent sets the indentation used inside main.
func WithIndent(indent string) Option {
	return func(g *Generator) {
		g.indent = indent
	}
}

// WithReservedNames keeps the given identifiers from being used for
// variables or helpers, e.g. names defined by surrounding code.
func WithReservedNames(names ...string) Option {
	return func(g *Generator) {
		g.reserved = append(g.reserved, names...)
	}
}

// Generator generates Dart programs from block programs. A Generator holds
// only configuration, so one may be used for any number of programs,
// including concurrently.
type Generator struct {
	logger   zerolog.Logger
	workers  int
	indent   string
	reserved []string
}

// New returns a Generator configured with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger: zerolog.Nop(),
		indent: DefaultIndent,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate runs one generation pass over program.
func (g *Generator) Generate(ctx context.Context, program *block.Program) (*Output, error) {
	pass := NewPass(g.logger, g.reserved...)
	pass.ReserveVariables(program)

	statements := make([]string, len(program.Blocks))
	var err error
	if g.workers > 1 && len(program.Blocks) > 1 {
		err = g.generateParallel(ctx, pass, program.Blocks, statements)
	} else {
		err = g.generateSequential(ctx, pass, program.Blocks, statements)
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug().
		Int("statements", len(statements)).
		Int("helpers", pass.helpers.Len()).
		Msg("generated program")
	return &Output{
		Definitions: pass.helpers.Definitions(),
		Variables:   pass.names.Variables(),
		Statements:  statements,
		indent:      g.indent,
	}, nil
}

func (g *Generator) generateSequential(ctx context.Context, pass *Pass, blocks []*block.Block, out []string) error {
	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		stmt, err := pass.Statement(b)
		if err != nil {
			return err
		}
		out[i] = stmt
	}
	return nil
}

// generateParallel generates top-level blocks on a bounded number of
// goroutines. Statements keep program order, and when several blocks fail
// the error of the earliest block is returned.
func (g *Generator) generateParallel(ctx context.Context, pass *Pass, blocks []*block.Block, out []string) error {
	errs := make([]error, len(blocks))
	sem := make(chan struct{}, g.workers)
	var wg sync.WaitGroup
	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, b *block.Block) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i], errs[i] = pass.Statement(b)
		}(i, b)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Output is the result of a generation pass.
type Output struct {
	// Definitions are the helper functions the statements call, ordered by
	// helper key.
	Definitions []Helper

	// Variables are the identifiers of all user variables, in order of
	// first use.
	Variables []string

	// Statements holds one statement per top-level block, each ending in
	// ";\n".
	Statements []string

	indent string
}

// Code returns the statements concatenated, without helpers or main.
func (o *Output) Code() string {
	return strings.Join(o.Statements, "")
}

// Preamble returns the helper definitions separated by blank lines.
func (o *Output) Preamble() string {
	defs := make([]string, len(o.Definitions))
	for i, h := range o.Definitions {
		defs[i] = h.Source
	}
	return strings.Join(defs, "\n\n")
}

// String renders the complete Dart program: helper definitions followed by
// main, which declares the variables and runs the statements.
func (o *Output) String() string {
	indent := o.indent
	if indent == "" {
		indent = DefaultIndent
	}
	var b strings.Builder
	if len(o.Definitions) > 0 {
		b.WriteString(o.Preamble())
		b.WriteString("\n\n")
	}
	b.WriteString("main() {\n")
	if len(o.Variables) > 0 {
		b.WriteString(indent)
		b.WriteString("var ")
		b.WriteString(strings.Join(o.Variables, ", "))
		b.WriteString(";\n")
	}
	for _, stmt := range o.Statements {
		for _, line := range strings.SplitAfter(stmt, "\n") {
			if line == "" {
				continue
			}
			if line != "\n" {
				b.WriteString(indent)
			}
			b.WriteString(line)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
