package gobadge

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure a badge run can report.
// Use errors.Is against these; the concrete error is usually an *Error.
var (
	ErrAsset        = errors.New("gobadge: missing or unreadable asset")
	ErrPrecondition = errors.New("gobadge: invalid input")
	ErrIO           = errors.New("gobadge: output failed")
	ErrLayout       = errors.New("gobadge: badge grid does not fit the page")
	ErrFontTooSmall = errors.New("gobadge: text does not fit at the minimum font size")
)

// Error reports a failed operation together with its class (one of the
// sentinel errors above) and the underlying cause.
type Error struct {
	Op   string // operation name, e.g. "RenderFront", "LoadTemplate"
	Path string // file involved, if any
	Kind error  // ErrAsset, ErrPrecondition, ...
	Err  error  // underlying error, may be nil
}

func (e *Error) Error() string {
	msg := "gobadge." + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	case e.Kind != nil:
		return fmt.Sprintf("%s: %v", msg, e.Kind)
	}
	return msg + ": unknown error"
}

// Unwrap exposes both the class and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// AssetError wraps a failure to read a template or font file.
func AssetError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: ErrAsset, Err: err}
}

// PreconditionError wraps an input record that cannot produce a badge.
func PreconditionError(op string, err error) *Error {
	return &Error{Op: op, Kind: ErrPrecondition, Err: err}
}

// IOError wraps a failure writing output.
func IOError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: ErrIO, Err: err}
}
