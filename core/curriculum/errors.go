package curriculum

import (
	"errors"
	"fmt"
)

var (
	// errors
	ErrCurriculumNotFound = errors.New("curriculum not found")
	ErrCurriculumExists   = errors.New("a curriculum with this code already exists")
)

// SchemaError reports a structural problem with tabular input, detected
// before any semantic validation is possible (e.g. missing columns).
type SchemaError struct {
	msg string
}

func newSchemaErrorf(format string, args ...interface{}) *SchemaError {
	return &SchemaError{msg: fmt.Sprintf(format, args...)}
}

func (err *SchemaError) Error() string { return err.msg }

// InvariantError reports a violated data-model rule. Code names the offending
// course when known.
type InvariantError struct {
	Code string
	msg  string
}

func newInvariantErrorf(code, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Code: code, msg: fmt.Sprintf(format, args...)}
}

func (err *InvariantError) Error() string {
	if err.Code != "" {
		return fmt.Sprintf("course %s: %s", err.Code, err.msg)
	}
	return err.msg
}

// NotFoundError reports a reference to a course code that is absent from the
// curriculum.
type NotFoundError struct {
	Code string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("course %s does not exist", err.Code)
}

// withCourseCode attaches the owning course's code to an InvariantError that
// was raised without one.
func withCourseCode(err error, code string) error {
	if ierr, ok := err.(*InvariantError); ok && ierr.Code == "" {
		ierr.Code = code
	}
	return err
}
