package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies gateway failures.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in the gateway.
	KindUnknown Kind = iota
	// KindValidation means an argument failed a check before any I/O happened.
	KindValidation
	// KindPath means the target path has no parent directory.
	KindPath
	// KindIO means a filesystem call failed.
	KindIO
)

// String returns the machine-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPath:
		return "path"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Sentinel errors for failures detected without an underlying OS error.
var (
	ErrInvalidSuffix = errors.New("the relative path must end with " + SampleSuffix)
	ErrNoParent      = errors.New("failed to determine parent directory")
	ErrDirectoryPath = errors.New("path ends with a separator and names a directory")
)

// Error is the error type returned by every Gateway operation.
type Error struct {
	Kind Kind
	Op   string // operation name, e.g. "WriteSampleFile"
	Msg  string // failed step, empty for validation and path errors
	Err  error  // underlying cause or sentinel
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "":
		return e.Err.Error()
	case e.Err == nil:
		return e.Msg
	default:
		return fmt.Sprintf("%s: %s", e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

func validationError(op string, sentinel error) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: sentinel}
}

func pathError(op string) *Error {
	return &Error{Kind: KindPath, Op: op, Err: ErrNoParent}
}

func ioError(op, msg string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Msg: msg, Err: err}
}
