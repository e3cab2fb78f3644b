package xmetrics

import "github.com/selectdb/go_patterns/pkg/xerror"

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

// subject metrics, shared by every subject so the series stay bounded
type subjectMetrics struct {
	metricsTag
}

func SubjectMetrics() *subjectMetrics {
	return &subjectMetrics{
		metricsTag: metricsTag{[]string{"subject"}},
	}
}

func (s *subjectMetrics) Tag() []string {
	return s.tags
}

func (s *subjectMetrics) State() IMetricsTag {
	s.tags = append(s.tags, "state")
	return s
}

func (s *subjectMetrics) StateChanges() IMetricsTag {
	s.tags = append(s.tags, "stateChanges")
	return s
}

func (s *subjectMetrics) Observers() IMetricsTag {
	s.tags = append(s.tags, "observers")
	return s
}

// observer metrics, keyed by observer label
type observerMetrics struct {
	metricsTag
	label string
}

func ObserverMetrics(label string) *observerMetrics {
	return &observerMetrics{
		metricsTag: metricsTag{[]string{"observer"}},
		label:      label,
	}
}

func (o *observerMetrics) Tag() []string {
	o.tags = append(o.tags, o.label)
	return o.tags
}

func (o *observerMetrics) Updates() IMetricsTag {
	o.tags = append(o.tags, "updates")
	return o
}

// demo metrics
type demoMetrics struct {
	metricsTag
	name string
}

func DemoMetrics(demoName string) *demoMetrics {
	return &demoMetrics{
		metricsTag: metricsTag{[]string{"demo"}},
		name:       demoName,
	}
}

func (d *demoMetrics) Tag() []string {
	d.tags = append(d.tags, d.name)
	return d.tags
}

func (d *demoMetrics) Runs() IMetricsTag {
	d.tags = append(d.tags, "runs")
	return d
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(err *xerror.XError) IMetricsTag {
	errMetrics := &errorMetrics{
		metricsTag: metricsTag{[]string{"error", err.Category().Name()}},
	}

	if err.IsRecoverable() {
		errMetrics.tags = append(errMetrics.tags, "recoverable")
	} else if err.IsPanic() {
		errMetrics.tags = append(errMetrics.tags, "panic")
	} else {
		errMetrics.tags = append(errMetrics.tags, "unknown")
	}

	return errMetrics
}

func (e *errorMetrics) Tag() []string {
	return e.tags
}
