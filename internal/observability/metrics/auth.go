package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_issued_total",
			Help: "Total number of bearer tokens issued",
		},
	)

	TokenStoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "token_store_size",
			Help: "Number of live tokens in the token store",
		},
	)

	LoginFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Total number of failed login attempts by reason",
		},
		[]string{"reason"},
	)

	TokenResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_resolutions_total",
			Help: "Total number of bearer token lookups by outcome",
		},
		[]string{"outcome"},
	)
)
