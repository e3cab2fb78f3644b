package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

const DemoField = "demo"

// DemoHook copies the goroutine local value stored under Field into every entry.
type DemoHook struct {
	Field  string
	levels []logrus.Level
}

func (hook *DemoHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *DemoHook) Fire(entry *logrus.Entry) error {
	if value := gls.Get(hook.Field); value != nil {
		entry.Data[hook.Field] = value
	}
	return nil
}

func NewDemoHook(levels ...logrus.Level) *DemoHook {
	hook := DemoHook{
		Field:  DemoField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// WithDemo runs f with name stored as the current goroutine's demo, so every
// log line emitted by f carries it.
func WithDemo(name string, f func() error) error {
	gls.ResetGls(gls.GoID(), map[interface{}]interface{}{})
	defer gls.DeleteGls(gls.GoID())

	gls.Set(DemoField, name)
	return f()
}
