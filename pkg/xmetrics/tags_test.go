package xmetrics

import (
	"errors"
	"testing"

	"github.com/selectdb/go_patterns/pkg/xerror"
	"github.com/stretchr/testify/assert"
)

func TestSubjectMetrics(t *testing.T) {
	assert.Equal(t, []string{"subject", "state"}, SubjectMetrics().State().Tag())
	assert.Equal(t, []string{"subject", "stateChanges"}, SubjectMetrics().StateChanges().Tag())
	assert.Equal(t, []string{"subject", "observers"}, SubjectMetrics().Observers().Tag())
}

func TestObserverAndDemoMetrics(t *testing.T) {
	assert.Equal(t, []string{"observer", "updates", "Hex"}, ObserverMetrics("Hex").Updates().Tag())
	assert.Equal(t, []string{"demo", "runs", "observer"}, DemoMetrics("observer").Runs().Tag())
}

func TestErrorMetrics(t *testing.T) {
	var xerr *xerror.XError

	err := xerror.New(xerror.InvalidOperation, "no subject")
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, []string{"error", "invalid_operation", "recoverable"}, ErrorMetrics(xerr).Tag())

	err = xerror.Panicf(xerror.IO, "closed %s", "pipe")
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, []string{"error", "io", "panic"}, ErrorMetrics(xerr).Tag())
}

