package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EPARTIAL  int = 124 // batch completed, but some items failed
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EPARTIAL:
		return "partial failure"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks the error code and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints an error to stderr, in a format suited for end users.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// --- Batch errors ----------------------------------------------------------

// A BatchError collects failures of independent items of a batch run.
// It carries code EPARTIAL: the batch as a whole completed, but one or
// more items failed.
type BatchError struct {
	Failures []ItemFailure
}

// ItemFailure is one failed item of a batch, identified by name.
type ItemFailure struct {
	Item string
	Err  error
}

// Collect appends a failure for an item. Collect on a nil receiver is a no-op,
// allowing clients to collect unconditionally and check Empty() at the end.
func (b *BatchError) Collect(item string, err error) {
	if b == nil || err == nil {
		return
	}
	b.Failures = append(b.Failures, ItemFailure{Item: item, Err: err})
}

// Empty returns true if no failure has been collected.
func (b *BatchError) Empty() bool {
	return b == nil || len(b.Failures) == 0
}

func (b *BatchError) Error() string {
	return fmt.Sprintf("[%d] %d item(s) failed", EPARTIAL, len(b.Failures))
}

func (b *BatchError) ErrorCode() int {
	return EPARTIAL
}

func (b *BatchError) UserMessage() string {
	items := make([]string, len(b.Failures))
	for i, f := range b.Failures {
		items[i] = fmt.Sprintf("%s: %v", f.Item, f.Err)
	}
	return fmt.Sprintf("%d item(s) failed:\n%s", len(b.Failures), strings.Join(items, "\n"))
}

var _ AppError = &BatchError{}
