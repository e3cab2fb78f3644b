package observer

import (
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"github.com/selectdb/go_patterns/pkg/xerror"
	"github.com/selectdb/go_patterns/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// State is the value held by a Subject. The zero value is Unset.
type State struct {
	Value int64
	Set   bool
}

var Unset = State{}

func StateOf(value int64) State {
	return State{Value: value, Set: true}
}

func (s State) String() string {
	if !s.Set {
		return "unset"
	}
	return strconv.FormatInt(s.Value, 10)
}

// Subject holds an integer state and the observers to notify when it changes.
//
// Observers are notified synchronously, in attachment order, on the caller's
// goroutine. A Subject is not safe for concurrent use.
type Subject struct {
	id        string
	state     State
	observers []Observer
}

func NewSubject(initial State) *Subject {
	return &Subject{
		id:    uuid.NewString(),
		state: initial,
	}
}

func (s *Subject) ID() string {
	return s.id
}

func (s *Subject) State() State {
	return s.state
}

// SetState stores value and runs a full notification pass before returning.
func (s *Subject) SetState(value int64) error {
	s.state = StateOf(value)
	xmetrics.StateChanged(value)
	log.Debugf("subject %s state changed to %d, notify %d observers", s.id, value, len(s.observers))

	return s.Notify()
}

// Attach appends o. The same observer may be attached more than once and is
// then updated once per attachment.
func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
	xmetrics.AddObserver(len(s.observers))
	log.Tracef("subject %s attach observer %d", s.id, len(s.observers))
}

// Detach removes the first attachment of o and reports whether there was one.
// An observer whose value cannot be compared, such as a func type, can never
// be matched and is not detached.
func (s *Subject) Detach(o Observer) bool {
	if !isComparable(o) {
		log.Warnf("subject %s detach observer of incomparable type %T", s.id, o)
		return false
	}

	i := slices.IndexFunc(s.observers, func(attached Observer) bool {
		return isComparable(attached) && attached == o
	})
	if i < 0 {
		return false
	}

	s.observers = slices.Delete(s.observers, i, i+1)
	xmetrics.AddObserver(len(s.observers))
	log.Tracef("subject %s detach observer at %d", s.id, i)
	return true
}

func isComparable(o Observer) bool {
	return o != nil && reflect.ValueOf(o).Comparable()
}

func (s *Subject) Observers() int {
	return len(s.observers)
}

// Notify updates every attached observer in attachment order, stopping at the
// first one that fails.
func (s *Subject) Notify() error {
	for i, o := range s.observers {
		if err := o.Update(); err != nil {
			return xerror.Wrapf(err, xerror.Normal, "subject %s notify observer %d", s.id, i)
		}
	}
	return nil
}
