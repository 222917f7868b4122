package errors

import (
	"fmt"
	"strings"
)

// GenerateError is reported when a block document or block tree violates an
// invariant the generator relies on. It carries the offending block and, when
// the problem is a literal value, suggestions for the intended value.
type GenerateError struct {
	Code        ErrorCode
	Message     string
	Filename    string
	Location    BlockLocation
	Suggestions []Suggestion
	Note        string
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	var b strings.Builder
	switch e.Code.Category() {
	case "decode":
		b.WriteString("decode error: ")
	default:
		b.WriteString("generate error: ")
	}
	b.WriteString(e.Message)
	if !e.Location.IsZero() {
		b.WriteString(" (")
		if e.Filename != "" {
			b.WriteString(e.Filename)
			b.WriteString(": ")
		}
		b.WriteString(e.Location.String())
		b.WriteString(")")
	}
	return b.String()
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *GenerateError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts to the FormattedError type for display.
func (e *GenerateError) ToFormatted() *FormattedError {
	kind := "error"
	if cat := e.Code.Category(); cat != "unknown" {
		kind = cat + " error"
	}
	fe := &FormattedError{
		Code:     e.Code,
		Kind:     kind,
		Message:  e.Message,
		Filename: e.Filename,
		Location: e.Location,
		Note:     e.Note,
	}
	if len(e.Suggestions) > 0 {
		fe.Hint = FormatSuggestions(e.Suggestions)
	}
	return fe
}

// Errorf builds a GenerateError with a formatted message.
func Errorf(code ErrorCode, loc BlockLocation, format string, args ...any) *GenerateError {
	return &GenerateError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// UnrecognizedValue reports a field holding a value outside its allowed set,
// suggesting the closest allowed values.
func UnrecognizedValue(loc BlockLocation, value string, allowed []string) *GenerateError {
	err := Errorf(E2001, loc, "unrecognized value %q for field %s", value, loc.Field)
	err.Suggestions = SuggestSimilar(value, allowed)
	err.Note = "expected one of: " + strings.Join(allowed, ", ")
	return err
}
