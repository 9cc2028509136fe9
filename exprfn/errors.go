package exprfn

import "fmt"

// ErrorCode classifies every failure this library can produce. The set is
// closed; dispatching engines branch on the code, never on the message.
type ErrorCode string

const (
	// CodeCustom carries a function-specific message, for conditions the
	// other codes cannot describe.
	CodeCustom ErrorCode = "custom_error"
	// CodeInvalidArgumentType marks an argument whose variant the function
	// does not accept.
	CodeInvalidArgumentType ErrorCode = "invalid_argument_type"
	// CodeInvalidInputString marks string input that is structurally
	// unusable, such as a series key with no timestamp segment.
	CodeInvalidInputString ErrorCode = "invalid_input_string"
	// CodeInvalidDateFormat marks a timestamp segment that does not parse.
	CodeInvalidDateFormat ErrorCode = "invalid_date_format"
)

// Error is the only error type returned by this package. Two errors match
// under errors.Is when their codes are equal, so the sentinels below work as
// targets regardless of message:
//
//	if errors.Is(err, exprfn.ErrInvalidDateFormat) { ... }
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

var (
	ErrInvalidArgumentType = &Error{Code: CodeInvalidArgumentType, Message: "invalid argument type"}
	ErrInvalidInputString  = &Error{Code: CodeInvalidInputString, Message: "invalid input string"}
	ErrInvalidDateFormat   = &Error{Code: CodeInvalidDateFormat, Message: "invalid date format"}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func customErrorf(format string, args ...any) *Error {
	return &Error{Code: CodeCustom, Message: fmt.Sprintf(format, args...)}
}
