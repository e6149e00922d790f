package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medislot_availability_records",
			Help: "Availability records per evaluated status",
		},
		[]string{"scope", "status"},
	)

	Doctors = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medislot_doctors",
			Help: "Doctors per availability state",
		},
		[]string{"scope", "state"},
	)

	TotalSlots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medislot_slots",
			Help: "Configured time slots",
		},
		[]string{"scope"},
	)

	Mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medislot_availability_mutations_total",
			Help: "Availability writes by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	SummaryLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medislot_summary_lookups_total",
			Help: "Dashboard summary lookups by cache result",
		},
		[]string{"result"},
	)
)

func RecordMutation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	Mutations.WithLabelValues(operation, status).Inc()
}
