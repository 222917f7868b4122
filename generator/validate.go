package generator

import (
	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/errors"
)

// Validate reports every problem in program that would make generation fail:
// unsupported kinds, unrecognized field values, missing variable names and
// statement blocks connected to value sockets. Unconnected sockets are not
// problems. All problems are returned together.
func Validate(program *block.Program) error {
	var result error
	for _, root := range program.Blocks {
		block.InspectEdges(root, func(parent *block.Block, socket string, b *block.Block) bool {
			if parent != nil && b.Kind.IsStatement() {
				err := errors.Errorf(errors.E2002, locate(parent, socket),
					"%s produces a statement and cannot be connected to %s", b.Kind, socket)
				result = errors.Append(result, err)
			}
			if err := checkFields(b); err != nil {
				result = errors.Append(result, err)
			}
			return true
		})
	}
	return errors.Collect(result)
}

// checkFields validates the literal fields of a single block, using the same
// rules the block's generator applies.
func checkFields(b *block.Block) error {
	var err error
	switch b.Kind {
	case block.ListsIndexOf:
		_, err = searchMethod(b)
	case block.MathNumber:
		_, err = numberLiteral(b)
	case block.MathArithmetic:
		_, err = arithmeticOperator(b)
	case block.LogicBoolean:
		_, err = booleanLiteral(b)
	case block.VariablesGet, block.VariablesSet:
		_, err = variableField(b)
	case block.Invalid:
		err = errors.Errorf(errors.E2004, locate(b, ""), "unsupported block kind %s", b.Kind)
	}
	return err
}
