package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VenuesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_venues_created_total",
			Help: "Total venues created through the API",
		},
	)

	EventsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_events_created_total",
			Help: "Total events created through the API",
		},
	)

	EventsListed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_events_listed_total",
			Help: "Total event list queries served",
		},
	)
)
