package xmetrics

import (
	"io"

	"github.com/hashicorp/go-metrics"
	"github.com/hashicorp/go-metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/selectdb/go_patterns/pkg/xerror"
)

// Registry holds every metric recorded since InitGlobal.
type Registry struct {
	registry *prom.Registry
}

// InitGlobal routes the global go-metrics calls into a fresh prometheus
// registry and returns it, so the process can dump it before exiting.
func InitGlobal(serviceName string) (*Registry, error) {
	registry := prom.NewRegistry()

	opts := prometheus.DefaultPrometheusOpts
	opts.Name = serviceName + "_sink"
	opts.Registerer = registry
	sink, err := prometheus.NewPrometheusSinkFrom(opts)
	if err != nil {
		return nil, xerror.Wrap(err, xerror.Normal, "init prometheus sink failed")
	}

	conf := metrics.DefaultConfig(serviceName)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	if _, err := metrics.NewGlobal(conf, sink); err != nil {
		return nil, xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return &Registry{registry: registry}, nil
}

// Write dumps the registry in the prometheus text format.
func (r *Registry) Write(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return xerror.Wrap(err, xerror.Normal, "gather metrics failed")
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return xerror.Wrapf(err, xerror.IO, "write metric %s", family.GetName())
		}
	}
	return nil
}

// Counter returns the value of the unlabelled counter called name.
func (r *Registry) Counter(name string) (float64, bool) {
	families, err := r.registry.Gather()
	if err != nil {
		return 0, false
	}

	for _, family := range families {
		if family.GetName() != name || family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range family.GetMetric() {
			if len(m.GetLabel()) == 0 {
				return m.GetCounter().GetValue(), true
			}
		}
	}
	return 0, false
}

func AddError(err *xerror.XError) {
	metrics.IncrCounter(ErrorMetrics(err).Tag(), 1)
}

func AddObserver(numObservers int) {
	metrics.SetGauge(SubjectMetrics().Observers().Tag(), float32(numObservers))
}

// StateChanged records a state change. Gauges are float32, so states beyond
// +/-2^24 are reported rounded.
func StateChanged(state int64) {
	metrics.SetGauge(SubjectMetrics().State().Tag(), float32(state))
	metrics.IncrCounter(SubjectMetrics().StateChanges().Tag(), 1)
}

func ObserverUpdated(label string) {
	metrics.IncrCounter(ObserverMetrics(label).Updates().Tag(), 1)
}

func DemoRun(demoName string) {
	metrics.IncrCounter(DemoMetrics(demoName).Runs().Tag(), 1)
}
