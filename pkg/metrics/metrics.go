package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GraphQLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "agebook", Name: "graphql_requests_total", Help: "Number of GraphQL operations by field and status."},
		[]string{"field", "status"},
	)
	GraphQLDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "agebook", Name: "graphql_request_duration_seconds", Help: "GraphQL resolver latency by field.", Buckets: prometheus.DefBuckets},
		[]string{"field"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "agebook", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "agebook", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(GraphQLRequests)
	reg.MustRegister(GraphQLDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

// ObserveGraphQL records one resolver invocation.
func ObserveGraphQL(field, status string, seconds float64) {
	GraphQLRequests.WithLabelValues(field, status).Inc()
	GraphQLDuration.WithLabelValues(field).Observe(seconds)
}
