package models

import "github.com/prometheus/client_golang/prometheus"

var (
	enrollmentRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "traininghub_enrollment_rejections_total",
		Help: "Enrollment attempts rejected by the capacity guard, by reason.",
	}, []string{"reason"})

	ledgerWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "traininghub_ledger_writes_total",
		Help: "Salary and fee records written, by kind and operation.",
	}, []string{"kind", "operation"})
)

// Collectors returns the domain metrics so that the router can register them.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{enrollmentRejections, ledgerWrites}
}
