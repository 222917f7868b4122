package generator

// Precedence ranks how tightly the outermost operator of a Dart expression
// binds. Higher values bind tighter. A fragment placed into a position that
// requires a higher precedence than its own is parenthesized.
type Precedence int

const (
	None Precedence = iota // list elements, call arguments
	Assignment
	Cascade
	Conditional
	LogicalOr
	LogicalAnd
	Equality
	Relational
	BitwiseOr
	BitwiseXor
	BitwiseAnd
	Shift
	Additive
	Multiplicative
	UnaryPrefix
	UnaryPostfix // member access, index, call
	Atomic
)

var precedenceNames = [...]string{
	None:           "none",
	Assignment:     "assignment",
	Cascade:        "cascade",
	Conditional:    "conditional",
	LogicalOr:      "logical-or",
	LogicalAnd:     "logical-and",
	Equality:       "equality",
	Relational:     "relational",
	BitwiseOr:      "bitwise-or",
	BitwiseXor:     "bitwise-xor",
	BitwiseAnd:     "bitwise-and",
	Shift:          "shift",
	Additive:       "additive",
	Multiplicative: "multiplicative",
	UnaryPrefix:    "unary-prefix",
	UnaryPostfix:   "unary-postfix",
	Atomic:         "atomic",
}

func (p Precedence) String() string {
	if p < None || p > Atomic {
		return "unknown"
	}
	return precedenceNames[p]
}

// Fragment is an emitted Dart expression together with the precedence of its
// outermost operator.
type Fragment struct {
	Code       string
	Precedence Precedence
}

// In returns the fragment's code as it must appear in a position requiring
// the given precedence.
func (f Fragment) In(required Precedence) string {
	if f.Precedence < required {
		return "(" + f.Code + ")"
	}
	return f.Code
}
