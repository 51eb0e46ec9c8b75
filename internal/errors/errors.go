// Package errors defines the error taxonomy for ocr-annotate.
//
// Every failure that aborts a run is reported as an *Error carrying a Code,
// the operation that failed and, where relevant, the path involved. Callers
// use Is to branch on the code without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code string

const (
	// ModelLoadFailed covers invalid engine configuration, missing weights with
	// download disabled, download failures and engine client setup errors.
	ModelLoadFailed Code = "MODEL_LOAD_FAILED"

	// ImageNotFound is returned when the source image path does not exist.
	ImageNotFound Code = "IMAGE_NOT_FOUND"

	// ImageDecodeFailed is returned when the source image cannot be read or decoded.
	ImageDecodeFailed Code = "IMAGE_DECODE_FAILED"

	// FontLoadFailed is returned when the label font is missing or unparsable.
	FontLoadFailed Code = "FONT_LOAD_FAILED"

	// RecognitionFailed is returned when the engine fails to read an image.
	RecognitionFailed Code = "RECOGNITION_FAILED"

	// IOFailed covers output directory creation and artifact writes.
	IOFailed Code = "IO_FAILED"

	// ConfigInvalid is returned for unreadable or invalid configuration.
	ConfigInvalid Code = "CONFIG_INVALID"
)

// Error is a classified failure.
type Error struct {
	Code  Code
	Op    string
	Path  string
	Cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Op)
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a classified error.
func New(code Code, op, path string, cause error) *Error {
	return &Error{
		Code:  code,
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// Is reports whether err, or any error it wraps, is an *Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Factory functions for the common failures.

func NewModelLoadError(op string, cause error) *Error {
	return New(ModelLoadFailed, op, "", cause)
}

func NewImageNotFoundError(path string, cause error) *Error {
	return New(ImageNotFound, "open image", path, cause)
}

func NewImageDecodeError(path string, cause error) *Error {
	return New(ImageDecodeFailed, "decode image", path, cause)
}

func NewFontLoadError(path string, cause error) *Error {
	return New(FontLoadFailed, "load font", path, cause)
}

func NewRecognitionError(cause error) *Error {
	return New(RecognitionFailed, "read text", "", cause)
}

func NewIOError(op, path string, cause error) *Error {
	return New(IOFailed, op, path, cause)
}

func NewConfigError(op, path string, cause error) *Error {
	return New(ConfigInvalid, op, path, cause)
}
