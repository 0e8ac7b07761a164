package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry all service metrics live in.
// Extra collectors (e.g. the pgx pool collector) are registered
// alongside the standard go and process collectors.
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		reg.MustRegister(c)
	}
	return reg
}
