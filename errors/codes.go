package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Decode errors (reading a block document)
//   - E2xxx: Generation errors (emitting code for a block tree)
type ErrorCode string

const (
	// Decode errors (E1xxx)
	E1001 ErrorCode = "E1001" // Malformed document
	E1002 ErrorCode = "E1002" // Unknown block type
	E1003 ErrorCode = "E1003" // Invalid item count
	E1004 ErrorCode = "E1004" // Invalid selection expression
	E1005 ErrorCode = "E1005" // Duplicate block id

	// Generation errors (E2xxx)
	E2001 ErrorCode = "E2001" // Unrecognized field value
	E2002 ErrorCode = "E2002" // Statement block in value position
	E2003 ErrorCode = "E2003" // Missing required field
	E2004 ErrorCode = "E2004" // Unsupported block kind
)

var codeDescriptions = map[ErrorCode]string{
	E1001: "malformed document",
	E1002: "unknown block type",
	E1003: "invalid item count",
	E1004: "invalid selection expression",
	E1005: "duplicate block id",

	E2001: "unrecognized field value",
	E2002: "statement block in value position",
	E2003: "missing required field",
	E2004: "unsupported block kind",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "decode"
	case '2':
		return "generate"
	default:
		return "unknown"
	}
}
