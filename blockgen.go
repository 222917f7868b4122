// Package blockgen generates Dart source code from visual list blocks.
//
// A program is a list of block trees, either built in Go with the block
// package or decoded from the editor's YAML/JSON export:
//
//	out, err := blockgen.GenerateSource(ctx, data, blockgen.WithSelect("blocks.blocks"))
//	if err != nil {
//		return err
//	}
//	fmt.Print(out)
package blockgen

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/generator"
)

// Option configures a generation.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	workers  int
	indent   string
	selector string
	filename string
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) generatorOpts() []generator.Option {
	opts := []generator.Option{
		generator.WithLogger(o.logger),
		generator.WithWorkers(o.workers),
	}
	if o.indent != "" {
		opts = append(opts, generator.WithIndent(o.indent))
	}
	return opts
}

func (o *options) decodeOpts() []block.DecodeOption {
	var opts []block.DecodeOption
	if o.selector != "" {
		opts = append(opts, block.WithSelect(o.selector))
	}
	if o.filename != "" {
		opts = append(opts, block.WithFilename(o.filename))
	}
	return opts
}

// WithLogger sets the logger that receives debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithWorkers generates up to n top-level blocks concurrently. The output is
// the same as sequential generation.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithIndent sets the indentation used inside main. The default is two
// spaces.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithSelect sets a JMESPath expression that locates the blocks inside a
// source document.
func WithSelect(expr string) Option {
	return func(o *options) {
		o.selector = expr
	}
}

// WithFilename sets the document name used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// Decode reads a block program from a YAML or JSON document.
func Decode(data []byte, opts ...Option) (*block.Program, error) {
	o := collectOptions(opts...)
	return block.Decode(data, o.decodeOpts()...)
}

// Generate generates a Dart program from program.
func Generate(ctx context.Context, program *block.Program, opts ...Option) (*generator.Output, error) {
	o := collectOptions(opts...)
	return generator.New(o.generatorOpts()...).Generate(ctx, program)
}

// GenerateSource is a convenience function that decodes data and generates
// the resulting program. It is equivalent to Decode() followed by Generate().
func GenerateSource(ctx context.Context, data []byte, opts ...Option) (*generator.Output, error) {
	program, err := Decode(data, opts...)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, program, opts...)
}

// Validate reports every problem in program that would make generation fail.
func Validate(program *block.Program) error {
	return generator.Validate(program)
}

// ValidateSource decodes data and validates the resulting program.
func ValidateSource(data []byte, opts ...Option) error {
	program, err := Decode(data, opts...)
	if err != nil {
		return err
	}
	return Validate(program)
}
