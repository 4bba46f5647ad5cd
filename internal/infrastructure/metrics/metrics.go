package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "userdirectory",
			Name:      "general_counters",
			Help:      "Requests and user lifecycle operations by result.",
		},
		[]string{"result"})
}
