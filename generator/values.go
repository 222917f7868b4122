package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/blockgen/block"
	"github.com/deepnoodle-ai/blockgen/errors"
)

// numberLiteral returns the Dart literal for the block's NUM field. An empty
// field generates 0.
func numberLiteral(b *block.Block) (Fragment, error) {
	raw := strings.TrimSpace(b.Field("NUM"))
	if raw == "" {
		return Fragment{"0", Atomic}, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Fragment{}, errors.Errorf(errors.E2001, locate(b, "NUM"), "%q is not a number", raw)
	}
	switch {
	case math.IsNaN(n):
		return Fragment{"double.nan", UnaryPostfix}, nil
	case math.IsInf(n, 1):
		return Fragment{"double.infinity", UnaryPostfix}, nil
	case math.IsInf(n, -1):
		return Fragment{"-double.infinity", UnaryPrefix}, nil
	}
	code := formatNumber(n)
	if n < 0 {
		return Fragment{code, UnaryPrefix}, nil
	}
	return Fragment{code, Atomic}, nil
}

// maxExactInt is the largest magnitude below which every integer is exactly
// representable as a double.
const maxExactInt = 1 << 53

// formatNumber renders n as a Dart number literal. Integral values are
// written as plain digits only while they fit an int; larger magnitudes use
// exponent form, which Dart reads as a double.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) >= maxExactInt {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func (p *Pass) mathNumber(b *block.Block) (Fragment, error) {
	return numberLiteral(b)
}

type arithmeticOp struct {
	symbol     string
	precedence Precedence
}

var arithmeticOps = map[string]arithmeticOp{
	"ADD":      {" + ", Additive},
	"MINUS":    {" - ", Additive},
	"MULTIPLY": {" * ", Multiplicative},
	"DIVIDE":   {" / ", Multiplicative},
}

var arithmeticNames = []string{"ADD", "DIVIDE", "MINUS", "MULTIPLY"}

func arithmeticOperator(b *block.Block) (arithmeticOp, error) {
	op, ok := arithmeticOps[b.Field("OP")]
	if !ok {
		return arithmeticOp{}, errors.UnrecognizedValue(locate(b, "OP"), b.Field("OP"), arithmeticNames)
	}
	return op, nil
}

// mathArithmetic groups the right operand whenever it binds no tighter than
// the operator itself, so "a - (b - c)" keeps its meaning.
func (p *Pass) mathArithmetic(b *block.Block) (Fragment, error) {
	op, err := arithmeticOperator(b)
	if err != nil {
		return Fragment{}, err
	}
	left, err := p.resolve(b, "A", op.precedence, "0")
	if err != nil {
		return Fragment{}, err
	}
	right, err := p.resolve(b, "B", op.precedence+1, "0")
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{left + op.symbol + right, op.precedence}, nil
}

var dartStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	`$`, `\$`,
	`'`, `\'`,
)

// quote returns s as a single-quoted Dart string literal.
func quote(s string) string {
	return "'" + dartStringEscaper.Replace(s) + "'"
}

func (p *Pass) text(b *block.Block) (Fragment, error) {
	return Fragment{quote(b.Field("TEXT")), Atomic}, nil
}

var booleanNames = []string{"FALSE", "TRUE"}

func booleanLiteral(b *block.Block) (string, error) {
	switch v := b.Field("BOOL"); v {
	case "TRUE":
		return "true", nil
	case "FALSE":
		return "false", nil
	default:
		return "", errors.UnrecognizedValue(locate(b, "BOOL"), v, booleanNames)
	}
}

func (p *Pass) logicBoolean(b *block.Block) (Fragment, error) {
	code, err := booleanLiteral(b)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{code, Atomic}, nil
}

func variableField(b *block.Block) (string, error) {
	name := b.Field("VAR")
	if name == "" {
		return "", errors.Errorf(errors.E2003, locate(b, "VAR"), "%s has no variable name", b.Kind)
	}
	return name, nil
}

func (p *Pass) variablesGet(b *block.Block) (Fragment, error) {
	name, err := variableField(b)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{p.names.VariableName(name), Atomic}, nil
}

func (p *Pass) variablesSet(b *block.Block) (string, error) {
	name, err := variableField(b)
	if err != nil {
		return "", err
	}
	value, err := p.resolve(b, "VALUE", Assignment, "null")
	if err != nil {
		return "", err
	}
	return p.names.VariableName(name) + " = " + value + ";\n", nil
}
