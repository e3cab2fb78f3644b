package observer

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/selectdb/go_patterns/pkg/xerror"
	"github.com/selectdb/go_patterns/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=observer.go -destination=observer_mock.go -package=observer

// Observer is notified by a Subject after each state change.
type Observer interface {
	Update() error
}

var (
	ErrNoSubject  = xerror.NewWithoutStack(xerror.InvalidOperation, "observer has no subject")
	ErrStateUnset = xerror.NewWithoutStack(xerror.InvalidOperation, "subject state is unset")
)

// numeralObserver prints the subject state in one numeric base.
type numeralObserver struct {
	subject *Subject
	label   string
	format  func(int64) string
	out     io.Writer
}

// a nil out writes to stdout
func newNumeralObserver(subject *Subject, label string, format func(int64) string, out io.Writer) numeralObserver {
	if out == nil {
		out = os.Stdout
	}
	return numeralObserver{subject: subject, label: label, format: format, out: out}
}

func (o *numeralObserver) Update() error {
	if o.subject == nil {
		return xerror.XWrapf(ErrNoSubject, "%s observer", o.label)
	}

	state := o.subject.State()
	if !state.Set {
		return xerror.XWrapf(ErrStateUnset, "%s observer, subject %s", o.label, o.subject.ID())
	}

	line := fmt.Sprintf("%s String: %s", o.label, o.format(state.Value))
	log.Tracef("%s observer emit %q", o.label, line)
	if _, err := fmt.Fprintln(o.out, line); err != nil {
		return xerror.Wrapf(err, xerror.IO, "%s observer emit", o.label)
	}

	xmetrics.ObserverUpdated(o.label)
	return nil
}

func (o *numeralObserver) Subject() *Subject {
	return o.subject
}

type BinaryObserver struct {
	numeralObserver
}

// NewBinaryObserver creates a BinaryObserver writing to out and attaches it
// to subject.
func NewBinaryObserver(subject *Subject, out io.Writer) *BinaryObserver {
	o := &BinaryObserver{newNumeralObserver(subject, "Binary", FormatBinary, out)}
	attach(subject, o)
	return o
}

type OctalObserver struct {
	numeralObserver
}

func NewOctalObserver(subject *Subject, out io.Writer) *OctalObserver {
	o := &OctalObserver{newNumeralObserver(subject, "Octal", FormatOctal, out)}
	attach(subject, o)
	return o
}

type HexaObserver struct {
	numeralObserver
}

func NewHexaObserver(subject *Subject, out io.Writer) *HexaObserver {
	o := &HexaObserver{newNumeralObserver(subject, "Hex", FormatHex, out)}
	attach(subject, o)
	return o
}

// a nil subject leaves o detached, its Update then fails with ErrNoSubject
func attach(subject *Subject, o Observer) {
	if subject != nil {
		subject.Attach(o)
	}
}

// FormatBinary returns the base 2 digits of v, without prefix.
func FormatBinary(v int64) string {
	return formatBase(v, 2, "")
}

// FormatOctal returns v in base 8 with a 0o prefix.
func FormatOctal(v int64) string {
	return formatBase(v, 8, "0o")
}

// FormatHex returns v in lowercase base 16 with a 0x prefix.
func FormatHex(v int64) string {
	return formatBase(v, 16, "0x")
}

// the sign goes before the prefix: -15 is -0xf
func formatBase(v int64, base int, prefix string) string {
	digits := strconv.FormatInt(v, base)
	if v < 0 {
		return "-" + prefix + digits[1:]
	}
	return prefix + digits
}
