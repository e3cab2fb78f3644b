package xerror

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCategory interface {
	Name() string
}

var (
	Normal           = newErrorCategory("normal")
	InvalidOperation = newErrorCategory("invalid_operation") // The receiver is not in a state that allows the call.
	InvalidArgument  = newErrorCategory("invalid_argument")
	IO               = newErrorCategory("io")
)

type xErrorCategory struct {
	name string
}

func (e xErrorCategory) Name() string {
	return e.name
}

func newErrorCategory(name string) ErrorCategory {
	return &xErrorCategory{
		name: name,
	}
}

type errType int

const (
	xrecoverable errType = iota
	xpanic
)

func (e errType) String() string {
	switch e {
	case xrecoverable:
		return "Recoverable"
	case xpanic:
		return "Panic"
	default:
		panic("unknown error level")
	}
}

// a wrapped error with error category and type
type XError struct {
	category ErrorCategory
	errType  errType
	err      error
}

func (e *XError) Category() ErrorCategory {
	return e.category
}

func (e *XError) Type() string {
	return e.errType.String()
}

// return the innermost xerror message, skipping stacks and messages
func (e *XError) Error() string {
	var inner *XError
	if stderrors.As(e.err, &inner) {
		return inner.Error()
	}

	return fmt.Sprintf("[%s] %s", e.category.Name(), e.err.Error())
}

func (e *XError) Unwrap() error {
	return e.err
}

func (e *XError) IsRecoverable() bool {
	return e.errType == xrecoverable
}

func (e *XError) IsPanic() bool {
	return e.errType == xpanic
}

func NewWithoutStack(errCategory ErrorCategory, message string) *XError {
	return &XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      stderrors.New(message),
	}
}

func New(errCategory ErrorCategory, message string) error {
	return errors.WithStack(NewWithoutStack(errCategory, message))
}

func errorf(errCategory ErrorCategory, errtype errType, format string, args ...interface{}) *XError {
	return &XError{
		category: errCategory,
		errType:  errtype,
		err:      fmt.Errorf(format, args...),
	}
}

func Errorf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xrecoverable, format, args...))
}

// Panicf builds the error for a recovered panic.
func Panicf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xpanic, format, args...))
}

func Wrap(err error, errCategory ErrorCategory, message string) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(&XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      err,
	}, message)
}

func wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return errors.Wrapf(&XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      err,
	}, format, args...)
}

func Wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrapf(err, errCategory, format, args...)
}

func XWrapf(xerr *XError, format string, args ...interface{}) error {
	return wrapf(xerr, xerr.category, format, args...)
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}

	return errors.WithStack(&XError{
		category: Normal,
		errType:  xrecoverable,
		err:      err,
	})
}

// IsCategory reports whether any XError in err's chain has the given category.
func IsCategory(err error, errCategory ErrorCategory) bool {
	for err != nil {
		var xerr *XError
		if !stderrors.As(err, &xerr) {
			return false
		}
		if xerr.category == errCategory {
			return true
		}
		err = xerr.err
	}
	return false
}

// Root returns the innermost XError in err's chain.
func Root(err error) (*XError, bool) {
	var root *XError
	for err != nil {
		var xerr *XError
		if !stderrors.As(err, &xerr) {
			break
		}
		root = xerr
		err = xerr.err
	}
	return root, root != nil
}
