// Package errors defines the error types reported while decoding block
// documents and generating code from them.
package errors

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// BlockLocation identifies the place in a block tree an error refers to.
type BlockLocation struct {
	BlockID string
	Kind    string
	Field   string // field or socket name, if any
}

// String returns a formatted string representation of the location.
func (l BlockLocation) String() string {
	var s string
	switch {
	case l.BlockID != "" && l.Kind != "":
		s = fmt.Sprintf("block %s (%s)", l.BlockID, l.Kind)
	case l.BlockID != "":
		s = "block " + l.BlockID
	case l.Kind != "":
		s = l.Kind
	}
	if l.Field != "" {
		if s != "" {
			s += " "
		}
		s += "field " + l.Field
	}
	return s
}

// IsZero returns true if the location has not been set.
func (l BlockLocation) IsZero() bool {
	return l.BlockID == "" && l.Kind == "" && l.Field == ""
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter.
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// Append adds errs to err, flattening nested multi-errors. A nil err starts
// a new collection.
func Append(err error, errs ...error) error {
	return multierror.Append(err, errs...)
}

// Flatten returns the individual errors held by err. A nil err yields nil
// and a plain error yields a single element slice.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}

// Collect returns nil when err holds no errors, or err otherwise. Used at the
// end of a pass that accumulated errors with Append.
func Collect(err error) error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.ErrorOrNil()
	}
	return err
}

// Friendly renders err for display. Every error with a formatted form is
// rendered with the Formatter and the rest fall back to Error().
func Friendly(err error, useColor bool) string {
	var formatted []*FormattedError
	for _, e := range Flatten(err) {
		var fe FormattableError
		if errors.As(e, &fe) {
			formatted = append(formatted, fe.ToFormatted())
			continue
		}
		formatted = append(formatted, &FormattedError{Message: e.Error()})
	}
	return NewFormatter(useColor).FormatMultiple(formatted)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
