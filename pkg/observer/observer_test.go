package observer

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/selectdb/go_patterns/pkg/xerror"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		value  int64
		binary string
		octal  string
		hex    string
	}{
		{0, "0", "0o0", "0x0"},
		{1, "1", "0o1", "0x1"},
		{15, "1111", "0o17", "0xf"},
		{16, "10000", "0o20", "0x10"},
		{255, "11111111", "0o377", "0xff"},
		{-15, "-1111", "-0o17", "-0xf"},
		{math.MaxInt64, "111111111111111111111111111111111111111111111111111111111111111", "0o777777777777777777777", "0x7fffffffffffffff"},
		{math.MinInt64, "-1000000000000000000000000000000000000000000000000000000000000000", "-0o1000000000000000000000", "-0x8000000000000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.binary, FormatBinary(tt.value), "binary %d", tt.value)
		assert.Equal(t, tt.octal, FormatOctal(tt.value), "octal %d", tt.value)
		assert.Equal(t, tt.hex, FormatHex(tt.value), "hex %d", tt.value)
	}
}

func TestObservers_Scenario(t *testing.T) {
	var buf bytes.Buffer
	subject := NewSubject(Unset)
	NewHexaObserver(subject, &buf)
	NewOctalObserver(subject, &buf)
	NewBinaryObserver(subject, &buf)

	assert.Nil(t, subject.SetState(15))
	assert.Equal(t, "Hex String: 0xf\nOctal String: 0o17\nBinary String: 1111\n", buf.String())

	buf.Reset()
	assert.Nil(t, subject.SetState(16))
	assert.Equal(t, "Hex String: 0x10\nOctal String: 0o20\nBinary String: 10000\n", buf.String())
}

func TestObservers_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	subject := NewSubject(Unset)
	NewHexaObserver(subject, &buf)
	NewBinaryObserver(subject, &buf)

	assert.Nil(t, subject.SetState(42))
	first := buf.String()
	buf.Reset()
	assert.Nil(t, subject.SetState(42))
	assert.Equal(t, first, buf.String())
}

func TestObserver_ConstructorAttaches(t *testing.T) {
	subject := NewSubject(Unset)
	o := NewOctalObserver(subject, &bytes.Buffer{})
	assert.Equal(t, 1, subject.Observers())
	assert.Same(t, subject, o.Subject())
	assert.True(t, subject.Detach(o))
}

func TestObserver_UpdateDoesNotMutate(t *testing.T) {
	var buf bytes.Buffer
	subject := NewSubject(StateOf(5))
	o := NewBinaryObserver(subject, &buf)

	assert.Nil(t, o.Update())
	assert.Nil(t, o.Update())
	assert.Equal(t, StateOf(5), subject.State())
	assert.Equal(t, "Binary String: 101\nBinary String: 101\n", buf.String())
}

func TestObserver_NoSubject(t *testing.T) {
	var o HexaObserver
	err := o.Update()
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrNoSubject))

	var xerr *xerror.XError
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerror.InvalidOperation, xerr.Category())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestObserver_WriteFailure(t *testing.T) {
	subject := NewSubject(Unset)
	NewHexaObserver(subject, failingWriter{})

	err := subject.SetState(1)
	assert.NotNil(t, err)
	assert.True(t, xerror.IsCategory(err, xerror.IO))
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestObserver_NilSubject(t *testing.T) {
	var buf bytes.Buffer
	observers := []Observer{
		NewBinaryObserver(nil, &buf),
		NewOctalObserver(nil, &buf),
		NewHexaObserver(nil, nil),
	}
	for _, o := range observers {
		err := o.Update()
		assert.True(t, errors.Is(err, ErrNoSubject))
		assert.True(t, xerror.IsCategory(err, xerror.InvalidOperation))
	}
	assert.Empty(t, buf.String())
}
