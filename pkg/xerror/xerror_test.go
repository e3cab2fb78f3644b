package xerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXCategory(t *testing.T) {
	assert.Equal(t, Normal.Name(), "normal")
	assert.Equal(t, InvalidOperation.Name(), "invalid_operation")
	assert.Equal(t, InvalidArgument.Name(), "invalid_argument")
	assert.Equal(t, IO.Name(), "io")
}

func TestXError_Error(t *testing.T) {
	errMsg := "test error"
	err := Errorf(Normal, errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))

	err = Wrap(err, IO, "wrapped error")
	assert.NotNil(t, err)

	// the outermost XError reports the innermost message
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Category(), IO)
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))
	assert.Contains(t, err.Error(), "wrapped error")
}

func TestErrorf(t *testing.T) {
	err := Errorf(InvalidArgument, "unknown kind %q", "hexagon")
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Type(), "Recoverable")
	assert.Equal(t, xerr.Category(), InvalidArgument)
	assert.Equal(t, xerr.err.Error(), `unknown kind "hexagon"`)
}

func TestWrap(t *testing.T) {
	errMsg := "short write"
	err := errors.New(errMsg)
	wrappedErr := Wrap(err, IO, "emit line")
	assert.NotNil(t, wrappedErr)

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), IO)
	assert.Equal(t, xerr.err.Error(), errMsg)
	assert.Equal(t, "emit line: [io] short write", wrappedErr.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, IO, "nothing"))
	assert.Nil(t, Wrapf(nil, IO, "nothing %d", 1))
	assert.Nil(t, WithStack(nil))
}

func TestWrapf(t *testing.T) {
	errMsg := "observer failed"
	err := errors.New(errMsg)
	wrappedErr := Wrapf(err, InvalidOperation, "notify observer %d", 2)
	assert.NotNil(t, wrappedErr)

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), InvalidOperation)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestIs(t *testing.T) {
	errNoSubject := NewWithoutStack(InvalidOperation, "observer has no subject")
	wrappedErr := XWrapf(errNoSubject, "observer: %s", "Hex")
	assert.NotNil(t, wrappedErr)

	assert.True(t, errors.Is(wrappedErr, errNoSubject))

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), InvalidOperation)
}

func TestIsCategory(t *testing.T) {
	err := Wrap(New(InvalidArgument, "nil strategy"), Normal, "set strategy")
	assert.True(t, IsCategory(err, Normal))
	assert.True(t, IsCategory(err, InvalidArgument))
	assert.False(t, IsCategory(err, IO))
	assert.False(t, IsCategory(errors.New("plain"), Normal))
	assert.False(t, IsCategory(nil, Normal))
}

func TestPanicf(t *testing.T) {
	err := Panicf(Normal, "test panicf %d", 1)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, xerr.Category(), Normal)
	assert.Equal(t, xerr.err.Error(), "test panicf 1")
}

func TestRoot(t *testing.T) {
	err := Wrapf(Wrap(New(IO, "closed pipe"), InvalidOperation, "emit"), Normal, "notify observer %d", 0)

	root, ok := Root(err)
	assert.True(t, ok)
	assert.Equal(t, IO, root.Category())

	outer, ok := Root(New(InvalidArgument, "nil"))
	assert.True(t, ok)
	assert.Equal(t, InvalidArgument, outer.Category())

	_, ok = Root(errors.New("plain"))
	assert.False(t, ok)
	_, ok = Root(nil)
	assert.False(t, ok)
}
